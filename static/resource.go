package static

import (
	"craftscape-character/rest"
	"errors"
	"net/http"
	"strconv"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	GetStaticGameItems   = "get_static_game_items"
	GetStaticGameItem    = "get_static_game_item"
	CreateStaticGameItem = "create_static_game_item"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(db)(si)
			r := router.PathPrefix("/static/items").Subrouter()
			r.HandleFunc("", registerGet(GetStaticGameItems, handleGetStaticGameItems)).Methods(http.MethodGet)
			r.HandleFunc("", rest.RegisterCreateHandler[RestModel](l)(db)(si)(CreateStaticGameItem, handleCreateStaticGameItem)).Methods(http.MethodPost)
			r.HandleFunc("/{itemId}", registerGet(GetStaticGameItem, handleGetStaticGameItem)).Methods(http.MethodGet)
		}
	}
}

func handleGetStaticGameItems(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ms []Model
		var err error
		if typeName := r.URL.Query().Get("itemType"); typeName != "" {
			ms, err = GetByType(d.DB())(typeName)
		} else {
			ms, err = GetAll(d.DB())()
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting static game items.")
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

func handleGetStaticGameItem(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemId, err := strconv.Atoi(mux.Vars(r)["itemId"])
		if err != nil {
			d.Logger().WithError(err).Errorf("Unable to properly parse itemId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		m, err := GetById(d.DB())(uint32(itemId))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting static game item %d.", itemId)
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

func handleCreateStaticGameItem(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.Account().Staff {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		m, err := Extract(input)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		cm, err := Create(d.Logger(), d.DB())(m)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating static game item.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		res, err := model.Map(Transform)(model.FixedProvider(cm))()
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating REST model.")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		server.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(res)
	}
}
