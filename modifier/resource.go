package modifier

import (
	"errors"
	"net/http"
	"strconv"

	"craftscape-character/account"
	"craftscape-character/inventory/item"
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
	GetStaticModifiers   = "get_static_modifiers"
	GetStaticModifier    = "get_static_modifier"
	CreateStaticModifier = "create_static_modifier"
	GetItemModifiers     = "get_item_modifiers"
	AttachItemModifier   = "attach_item_modifier"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(db)(si)
			r := router.PathPrefix("/static/modifiers").Subrouter()
			r.HandleFunc("", registerGet(GetStaticModifiers, handleGetStaticModifiers)).Methods(http.MethodGet)
			r.HandleFunc("", rest.RegisterCreateHandler[StaticRestModel](l)(db)(si)(CreateStaticModifier, handleCreateStaticModifier)).Methods(http.MethodPost)
			r.HandleFunc("/{modifierId}", registerGet(GetStaticModifier, handleGetStaticModifier)).Methods(http.MethodGet)

			ir := router.PathPrefix("/items").Subrouter()
			ir.HandleFunc("/{uniqueId}/modifiers", registerGet(GetItemModifiers, handleGetItemModifiers)).Methods(http.MethodGet)
			ir.HandleFunc("/{uniqueId}/modifiers", rest.RegisterCreateHandler[LiveRestModel](l)(db)(si)(AttachItemModifier, handleAttachItemModifier)).Methods(http.MethodPost)
		}
	}
}

func handleGetStaticModifiers(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := GetAllStatic(d.DB())()
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting static modifiers.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		res, err := model.SliceMap(TransformStatic)(model.FixedProvider(ms))()()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[[]StaticRestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleGetStaticModifier(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		modifierId, err := strconv.Atoi(mux.Vars(r)["modifierId"])
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to properly parse modifierId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		m, err := GetStaticById(d.DB())(uint32(modifierId))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting static modifier [%d].", modifierId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		res, err := model.Map(TransformStatic)(model.FixedProvider(m))()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[StaticRestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleCreateStaticModifier(d *rest.HandlerDependency, c *rest.HandlerContext, input StaticRestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.Account().Staff {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		im, err := ExtractStatic(input)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating model.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		m, err := CreateStatic(d.Logger(), d.DB())(im)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating static modifier.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		res, err := model.Map(TransformStatic)(model.FixedProvider(m))()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[StaticRestModel](d.Logger())(w)(c.ServerInformation())(res)
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
	owner, err := item.OwnerAccountId(d.DB())(uniqueId)
	if err != nil {
		return false
	}
	return account.Owns(c.Account(), owner)
}

func handleGetItemModifiers(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uniqueId, ok := parseUniqueId(d.Logger(), w, r)
		if !ok {
			return
		}
		if _, err := item.GetByUniqueId(d.DB())(uniqueId); errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !allowed(d, c, uniqueId) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		ms, err := GetForItem(d.DB())(uniqueId)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting modifiers of item [%s].", uniqueId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		res, err := model.SliceMap(TransformLive)(model.FixedProvider(ms))()()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[[]LiveRestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleAttachItemModifier(d *rest.HandlerDependency, c *rest.HandlerContext, input LiveRestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uniqueId, ok := parseUniqueId(d.Logger(), w, r)
		if !ok {
			return
		}
		if _, err := item.GetByUniqueId(d.DB())(uniqueId); errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !allowed(d, c, uniqueId) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		m, err := Attach(d.Logger(), d.DB())(uniqueId, input.StaticModifierId)
		var ime *IncompatibleModifierError
		if errors.As(err, &ime) {
			http.Error(w, ime.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Attaching modifier to item [%s].", uniqueId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		res, err := model.Map(TransformLive)(model.FixedProvider(m))()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[LiveRestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}
