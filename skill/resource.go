package skill

import (
	"errors"
	"net/http"

	"craftscape-character/account"
	"craftscape-character/rest"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/gorilla/mux"
	"github.com/manyminds/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	GetSkills             = "get_skills"
	GetSkill              = "get_skill"
	CreateSkill           = "create_skill"
	GetSkillDependencies  = "get_skill_dependencies"
	CreateSkillDependency = "create_skill_dependency"
	GetCharacterSkills    = "get_character_skills"
	GrantCharacterSkill   = "grant_character_skill"
)

func InitResource(si jsonapi.ServerInformation) func(db *gorm.DB) server.RouteInitializer {
	return func(db *gorm.DB) server.RouteInitializer {
		return func(router *mux.Router, l logrus.FieldLogger) {
			registerGet := rest.RegisterHandler(l)(db)(si)
			r := router.PathPrefix("/skills").Subrouter()
			r.HandleFunc("", registerGet(GetSkills, handleGetSkills)).Methods(http.MethodGet)
			r.HandleFunc("", rest.RegisterCreateHandler[RestModel](l)(db)(si)(CreateSkill, handleCreateSkill)).Methods(http.MethodPost)
			r.HandleFunc("/{skillId}", registerGet(GetSkill, handleGetSkill)).Methods(http.MethodGet)
			r.HandleFunc("/{skillId}/dependencies", registerGet(GetSkillDependencies, handleGetSkillDependencies)).Methods(http.MethodGet)
			r.HandleFunc("/{skillId}/dependencies", rest.RegisterCreateHandler[DependencyRestModel](l)(db)(si)(CreateSkillDependency, handleCreateSkillDependency)).Methods(http.MethodPost)

			cr := router.PathPrefix("/characters").Subrouter()
			cr.HandleFunc("/{characterId}/skills", registerGet(GetCharacterSkills, handleGetCharacterSkills)).Methods(http.MethodGet)
			cr.HandleFunc("/{characterId}/skills", rest.RegisterCreateHandler[CharacterSkillRestModel](l)(db)(si)(GrantCharacterSkill, handleGrantCharacterSkill)).Methods(http.MethodPost)
		}
	}
}

func handleGetSkills(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ms, err := GetAll(d.DB())()
		if err != nil {
			d.Logger().WithError(err).Errorf("Getting skills.")
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

func handleGetSkill(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseSkillId(d.Logger(), func(skillId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := GetById(d.DB())(skillId)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Getting skill [%d].", skillId)
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
	})
}

func handleCreateSkill(d *rest.HandlerDependency, c *rest.HandlerContext, input RestModel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.Account().Staff {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		m, err := Create(d.Logger(), d.DB())(input.Name, input.Type, input.Value)
		if err != nil {
			d.Logger().WithError(err).Errorf("Creating skill.")
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

func handleGetSkillDependencies(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return rest.ParseSkillId(d.Logger(), func(skillId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ms, err := GetDependencies(d.DB())(skillId)
			if err != nil {
				d.Logger().WithError(err).Errorf("Getting dependencies of skill [%d].", skillId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			res, err := model.SliceMap(TransformDependency)(model.FixedProvider(ms))()()
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[[]DependencyRestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}

func handleCreateSkillDependency(d *rest.HandlerDependency, c *rest.HandlerContext, input DependencyRestModel) http.HandlerFunc {
	return rest.ParseSkillId(d.Logger(), func(skillId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !c.Account().Staff {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			dt, err := DependencyTypeFrom(input.DependencyType)
			if err != nil {
				d.Logger().WithError(err).Errorf("Parsing dependency type.")
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			m, err := AddDependency(d.Logger(), d.DB())(skillId, input.ParentSkillId, dt)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating dependency of skill [%d].", skillId)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			res, err := model.Map(TransformDependency)(model.FixedProvider(m))()
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[DependencyRestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}

func withOwnedCharacter(d *rest.HandlerDependency, c *rest.HandlerContext, next func(characterId uint32) http.HandlerFunc) http.HandlerFunc {
	return rest.ParseCharacterId(d.Logger(), func(characterId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			owner, err := ownerAccountId(d.DB(), characterId)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Locating character [%d].", characterId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if !account.Owns(c.Account(), owner) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next(characterId)(w, r)
		}
	})
}

func handleGetCharacterSkills(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
	return withOwnedCharacter(d, c, func(characterId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ms, err := GetForCharacter(d.DB())(characterId)
			if err != nil {
				d.Logger().WithError(err).Errorf("Getting skills of character [%d].", characterId)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			res, err := model.SliceMap(TransformCharacterSkill)(model.FixedProvider(ms))()()
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[[]CharacterSkillRestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}

func handleGrantCharacterSkill(d *rest.HandlerDependency, c *rest.HandlerContext, input CharacterSkillRestModel) http.HandlerFunc {
	return withOwnedCharacter(d, c, func(characterId uint32) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			m, err := Grant(d.Logger(), d.DB())(characterId, input.SkillId, input.Experience)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if err != nil {
				d.Logger().WithError(err).Errorf("Granting skill [%d] to character [%d].", input.SkillId, characterId)
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			res, err := model.Map(TransformCharacterSkill)(model.FixedProvider(m))()
			if err != nil {
				d.Logger().WithError(err).Errorf("Creating REST model.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			server.Marshal[CharacterSkillRestModel](d.Logger())(w)(c.ServerInformation())(res)
		}
	})
}
