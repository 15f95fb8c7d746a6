package character

import (
	"errors"
	"net/http"
	"strconv"

	"craftscape-character/account"
	kproducer "craftscape-character/kafka/producer"
	"craftscape-character/rest"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	GetCharacters   = "get_characters"
	GetCharacter    = "get_character"
	CreateCharacter = "create_character"
	DeleteCharacter = "delete_character"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(db)(si)
			r := router.PathPrefix("/characters").Subrouter()
			r.HandleFunc("", registerGet(GetCharacters, handleGetCharacters)).Methods(http.MethodGet)
			r.HandleFunc("", rest.RegisterCreateHandler[RestModel](l)(db)(si)(CreateCharacter, handleCreateCharacter)).Methods(http.MethodPost)
			r.HandleFunc("/{characterId}", registerGet(GetCharacter, handleGetCharacter)).Methods(http.MethodGet)
			r.HandleFunc("/{characterId}", registerGet(DeleteCharacter, handleDeleteCharacter)).Methods(http.MethodDelete)
		}
	}
}

func handleGetCharacters(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		findAll := r.URL.Query().Get("find_all") == "true"
		ownerId := c.Account().Id
		ownerParam := r.URL.Query().Get("account_id")
		if ownerParam != "" {
			v, err := strconv.Atoi(ownerParam)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			ownerId = uint32(v)
		}
		if !account.Allows(c.Account(), ownerId, findAll) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var ms []Model
		var err error
		if ownerParam == "" && c.Account().Staff && findAll {
			ms, err = GetAll(d.DB())()
		} else {
			ms, err = GetForAccount(d.DB())(ownerId)
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting characters.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := model.SliceMap(Transform)(model.FixedProvider(ms))()()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[[]RestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}

func handleGetCharacter(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := GetById(d.DB())(characterId, EquipmentDecorator(d.Logger(), d.DB()), InventoryDecorator(d.Logger(), d.DB()))
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Getting character [%d].", characterId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !account.Owns(c.Account(), m.AccountId()) {
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
	})
}

func handleCreateCharacter(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if input.AccountId == 0 {
			input.AccountId = c.Account().Id
		}
		if !account.Owns(c.Account(), input.AccountId) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		im, err := Extract(input)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating model.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		kp := kproducer.ProviderImpl(d.Logger())(d.Span())
		m, err := Create(d.Logger(), d.DB(), d.Span(), kp)(im)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating character.")
			w.WriteHeader(http.StatusBadRequest)
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

func handleDeleteCharacter(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			err := Delete(d.DB())(characterId)
			if errors.Is(err, ErrDeleteNotAllowed) {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}
	})
}
