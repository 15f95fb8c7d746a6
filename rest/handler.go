package rest

import (
	"craftscape-character/account"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HandlerDependency struct {
	l    logrus.FieldLogger
	db   *gorm.DB
	span opentracing.Span
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) DB() *gorm.DB {
	return h.db
}

func (h HandlerDependency) Span() opentracing.Span {
	return h.span
}

type HandlerContext struct {
	si jsonapi.ServerInformation
	a  account.Model
}

func (h HandlerContext) ServerInformation() jsonapi.ServerInformation {
	return h.si
}

func (h HandlerContext) Account() account.Model {
	return h.a
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type CreateHandler[M any] func(d *HandlerDependency, c *HandlerContext, model M) http.HandlerFunc

func ParseInput[M any](d *HandlerDependency, c *HandlerContext, next CreateHandler[M]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var model M

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		err = jsonapi.Unmarshal(body, &model)
		if err != nil {
			d.l.WithError(err).Errorln("Deserializing input", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(d, c, model)(w, r)
	}
}

func RegisterHandler(l logrus.FieldLogger) func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(si jsonapi.ServerInformation) func(handlerName string, handler GetHandler) http.HandlerFunc {
			return func(handlerName string, handler GetHandler) http.HandlerFunc {
				return RetrieveSpan(l, handlerName, func(sl logrus.FieldLogger, span opentracing.Span) http.HandlerFunc {
					fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
					return ParseAccount(fl, func(a account.Model) http.HandlerFunc {
						return handler(&HandlerDependency{l: fl, db: db, span: span}, &HandlerContext{si: si, a: a})
					})
				})
			}
		}
	}
}

func RegisterCreateHandler[M any](l logrus.FieldLogger) func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler CreateHandler[M]) http.HandlerFunc {
	return func(db *gorm.DB) func(si jsonapi.ServerInformation) func(handlerName string, handler CreateHandler[M]) http.HandlerFunc {
		return func(si jsonapi.ServerInformation) func(handlerName string, handler CreateHandler[M]) http.HandlerFunc {
			return func(handlerName string, handler CreateHandler[M]) http.HandlerFunc {
				return RetrieveSpan(l, handlerName, func(sl logrus.FieldLogger, span opentracing.Span) http.HandlerFunc {
					fl := sl.WithFields(logrus.Fields{"originator": handlerName, "type": "rest_handler"})
					return ParseAccount(fl, func(a account.Model) http.HandlerFunc {
						d := &HandlerDependency{l: fl, db: db, span: span}
						c := &HandlerContext{si: si, a: a}
						return ParseInput[M](d, c, handler)
					})
				})
			}
		}
	}
}

type CharacterIdHandler func(characterId uint32) http.HandlerFunc

func ParseCharacterId(l logrus.FieldLogger, next CharacterIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterId, err := strconv.Atoi(mux.Vars(r)["characterId"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse characterId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(characterId))(w, r)
	}
}

type InventoryIdHandler func(inventoryId uint32) http.HandlerFunc

func ParseInventoryId(l logrus.FieldLogger, next InventoryIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inventoryId, err := strconv.Atoi(mux.Vars(r)["inventoryId"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse inventoryId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(inventoryId))(w, r)
	}
}

type EquipmentIdHandler func(equipmentId uint32) http.HandlerFunc

func ParseEquipmentId(l logrus.FieldLogger, next EquipmentIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		equipmentId, err := strconv.Atoi(mux.Vars(r)["equipmentId"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse equipmentId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(equipmentId))(w, r)
	}
}

type SkillIdHandler func(skillId uint32) http.HandlerFunc

func ParseSkillId(l logrus.FieldLogger, next SkillIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillId, err := strconv.Atoi(mux.Vars(r)["skillId"])
		if err != nil {
			l.WithError(err).Errorf("Unable to properly parse skillId from path.")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		next(uint32(skillId))(w, r)
	}
}
