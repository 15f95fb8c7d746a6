package item

import (
	"errors"
	"net/http"

	"craftscape-character/account"
	kproducer "craftscape-character/kafka/producer"
	"craftscape-character/rest"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	GetItem    = "get_item"
	UpdateItem = "update_item"
	DeleteItem = "delete_item"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			r := router.PathPrefix("/items").Subrouter()
			r.HandleFunc("/{uniqueId}", rest.RegisterHandler(l)(db)(si)(GetItem, handleGetItem)).Methods(http.MethodGet)
			r.HandleFunc("/{uniqueId}", rest.RegisterCreateHandler[RestModel](l)(db)(si)(UpdateItem, handleUpdateItem)).Methods(http.MethodPatch)
			r.HandleFunc("/{uniqueId}", rest.RegisterHandler(l)(db)(si)(DeleteItem, handleDeleteItem)).Methods(http.MethodDelete)
		}
	}
}

func parseUniqueId(l logrus.FieldLogger, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	uniqueId, err := uuid.Parse(mux.Vars(r)["uniqueId"])
	if err != nil {
		l.WithError(err).Errorf("Unable to properly parse uniqueId from path.")
		w.WriteHeader(http.StatusBadRequest)
		return uuid.Nil, false
	}
	return uniqueId, true
}

func allowed(d *rest.HandlerDependency, c *rest.HandlerContext, uniqueId uuid.UUID) bool {
	owner, err := ownerAccountId(d.DB(), uniqueId)
	if err != nil {
		return false
	}
	return account.Owns(c.Account(), owner)
}

func handleGetItem(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uniqueId, ok := parseUniqueId(d.Logger(), w, r)
		if !ok {
			return
		}

		m, err := GetByUniqueId(d.DB())(uniqueId, TemplateDecorator(d.Logger(), d.DB()))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting item [%s].", uniqueId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !allowed(d, c, uniqueId) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		res, err := model.Map(Transform)(model.FixedProvider(m))()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleUpdateItem(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uniqueId, ok := parseUniqueId(d.Logger(), w, r)
		if !ok {
			return
		}
		if !allowed(d, c, uniqueId) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		kp := kproducer.ProviderImpl(d.Logger())(d.Span())
		m, err := UpdateQuantity(d.Logger(), d.DB(), d.Span(), kp)(uniqueId, input.Quantity)
		var sse *StackSizeError
		if errors.As(err, &sse) {
			d.Logger().WithError(err).Debugf("Rejecting quantity update for item [%s].", uniqueId)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Updating item [%s].", uniqueId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := model.Map(Transform)(model.FixedProvider(m))()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleDeleteItem(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uniqueId, ok := parseUniqueId(d.Logger(), w, r)
		if !ok {
			return
		}

		_, err := GetByUniqueId(d.DB())(uniqueId)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting item [%s].", uniqueId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !allowed(d, c, uniqueId) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		err = DeleteByUniqueId(d.DB())(uniqueId)
		if err != nil {
			d.Logger().WithError(err).Errorf("Deleting item [%s].", uniqueId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
