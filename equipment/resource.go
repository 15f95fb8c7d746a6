package equipment

import (
	"errors"
	"net/http"

	"craftscape-character/account"
	kproducer "craftscape-character/kafka/producer"
	"craftscape-character/position"
	"craftscape-character/rest"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	GetEquipment    = "get_equipment"
	UpdateEquipment = "update_equipment"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			r := router.PathPrefix("/equipment").Subrouter()
			r.HandleFunc("/{equipmentId}", rest.RegisterHandler(l)(db)(si)(GetEquipment, handleGetEquipment)).Methods(http.MethodGet)
			update := rest.RegisterCreateHandler[AssignmentsRestModel](l)(db)(si)(UpdateEquipment, handleUpdateEquipment)
			r.HandleFunc("/{equipmentId}", update).Methods(http.MethodPut)
			r.HandleFunc("/{equipmentId}", update).Methods(http.MethodPatch)
		}
	}
}

func allowed(d *rest.HandlerDependency, c *rest.HandlerContext, equipmentId uint32) bool {
	owner, err := ownerAccountId(d.DB(), equipmentId)
	if err != nil {
		return false
	}
	return account.Owns(c.Account(), owner)
}

func marshalEquipment(d *rest.HandlerDependency, c *rest.HandlerContext, w http.ResponseWriter, m Model) {
	res, err := model.Map(Transform)(model.FixedProvider(m))()
	if err != nil {
		d.Logger().WithError(err).Errorf("Creating REST model.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	server.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(res)
}

func handleGetEquipment(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseEquipmentId(d.Logger(), func(equipmentId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := GetById(d.DB())(equipmentId, ItemDecorator(d.Logger(), d.DB()))
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Getting equipment [%d].", equipmentId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !allowed(d, c, equipmentId) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			marshalEquipment(d, c, w, m)
		}
	})
}

func handleUpdateEquipment(d *rest.HandlerDependency, c *rest.HandlerContext, input AssignmentsRestModel) http.HandlerFunc {
	return rest.ParseEquipmentId(d.Logger(), func(equipmentId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !allowed(d, c, equipmentId) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			assignments, err := ExtractAssignments(input)
			if err != nil {
				d.Logger().WithError(err).Errorf("Parsing slot assignments for equipment [%d].", equipmentId)
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			kp := kproducer.ProviderImpl(d.Logger())(d.Span())
			m, err := UpdateSlots(d.Logger(), d.DB(), d.Span(), kp)(equipmentId, assignments)

			var ite *IncompatibleTypeError
			if errors.As(err, &ite) {
				d.Logger().WithError(err).Debugf("Rejecting slot update for equipment [%d].", equipmentId)
				http.Error(w, ite.Error(), http.StatusBadRequest)
				return
			}
			var ce *position.CapacityError
			if errors.As(err, &ce) {
				http.Error(w, ce.Error(), http.StatusBadRequest)
				return
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Updating equipment [%d].", equipmentId)
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			m = ItemDecorator(d.Logger(), d.DB())(m)
			marshalEquipment(d, c, w, m)
		}
	})
}
