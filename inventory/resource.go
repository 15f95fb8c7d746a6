package inventory

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"craftscape-character/account"
	"craftscape-character/inventory/item"
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
	GetInventories      = "get_inventories"
	CreateInventory     = "create_inventory"
	GetInventory        = "get_inventory"
	GetInventoryItems   = "get_inventory_items"
	CreateInventoryItem = "create_inventory_item"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(db)(si)
			r := router.PathPrefix("/inventories").Subrouter()
			r.HandleFunc("", registerGet(GetInventories, handleGetInventories)).Methods(http.MethodGet)
			r.HandleFunc("", rest.RegisterCreateHandler[RestModel](l)(db)(si)(CreateInventory, handleCreateInventory)).Methods(http.MethodPost)
			r.HandleFunc("/{inventoryId}", registerGet(GetInventory, handleGetInventory)).Methods(http.MethodGet)
			r.HandleFunc("/{inventoryId}/items", registerGet(GetInventoryItems, handleGetInventoryItems)).Methods(http.MethodGet)
			r.HandleFunc("/{inventoryId}/items", rest.RegisterCreateHandler[item.RestModel](l)(db)(si)(CreateInventoryItem, handleCreateInventoryItem)).Methods(http.MethodPost)
		}
	}
}

func marshalInventory(d *rest.HandlerDependency, c *rest.HandlerContext, w http.ResponseWriter, m Model) {
	res, err := model.Map(Transform)(model.FixedProvider(m))()
	if err != nil {
		d.Logger().WithError(err).Errorf("Creating REST model.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	server.Marshal[RestModel](d.Logger())(w)(c.ServerInformation())(res)
}

func handleGetInventories(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
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
			d.Logger().WithError(err).Errorf("Getting inventories.")
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

func handleCreateInventory(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := getCharacterInfo(d.DB(), input.CharacterId)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Locating character [%d].", input.CharacterId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !account.Owns(c.Account(), info.AccountId) {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		size, err := SizeFromName(input.Size)
		if err != nil {
			d.Logger().WithError(err).Errorf("Parsing inventory size.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		kp := kproducer.ProviderImpl(d.Logger())(d.Span())
		m, err := Create(d.Logger(), d.DB(), d.Span(), kp)(input.CharacterId, size, input.Position)
		var ce *position.CapacityError
		if errors.As(err, &ce) {
			msg := fmt.Sprintf("character [%d] cannot hold more than [%d] inventories", input.CharacterId, ce.Capacity)
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating inventory for character [%d].", input.CharacterId)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		marshalInventory(d, c, w, m)
	}
}

func withOwnedInventory(d *rest.HandlerDependency, c *rest.HandlerContext, next func(m Model) http.HandlerFunc) http.HandlerFunc {
	return rest.ParseInventoryId(d.Logger(), func(inventoryId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := GetById(d.DB())(inventoryId)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Getting inventory [%d].", inventoryId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			owner, err := ownerAccountId(d.DB(), inventoryId)
			if err != nil || !account.Owns(c.Account(), owner) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next(m)(w, r)
		}
	})
}

func handleGetInventory(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return withOwnedInventory(d, c, func(m Model) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m = ItemDecorator(d.Logger(), d.DB())(m)
			marshalInventory(d, c, w, m)
		}
	})
}

func handleGetInventoryItems(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return withOwnedInventory(d, c, func(m Model) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			items, err := item.GetByInventory(d.DB())(m.Id(), item.TemplateDecorator(d.Logger(), d.DB()))
			if err != nil {
				d.Logger().WithError(err).Errorf("Getting items of inventory [%d].", m.Id())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			res, err := model.SliceMap(item.Transform)(model.FixedProvider(items))()()
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[[]item.RestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}

func handleCreateInventoryItem(d *rest.HandlerDependency, c *rest.HandlerContext, input item.RestModel) http.HandlerFunc {
	return withOwnedInventory(d, c, func(m Model) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			in, err := item.Extract(input)
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating model.")
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			kp := kproducer.ProviderImpl(d.Logger())(d.Span())
			im, err := AddItem(d.Logger(), d.DB(), d.Span(), kp)(m.Id())(in.StaticItemId(), in.Quantity(), in.Position(), in.CreatedBy())

			var sse *item.StackSizeError
			if errors.As(err, &sse) {
				http.Error(w, sse.Error(), http.StatusBadRequest)
				return
			}
			var ce *position.CapacityError
			if errors.As(err, &ce) {
				msg := fmt.Sprintf("inventory [%d] has no free position among [%d]", m.Id(), ce.Capacity)
				http.Error(w, msg, http.StatusBadRequest)
				return
			}
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating item in inventory [%d].", m.Id())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			res, err := model.Map(item.Transform)(model.FixedProvider(im))()
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[item.RestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}
