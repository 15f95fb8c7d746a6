package skill

import (
	"craftscape-character/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(skillId uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{ID: skillId})
	}
}

func getAll() database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.Order("id").Find(&results).Error
			return results, err
		}
	}
}

func getDependencies(skillId uint32) database.EntitySliceProvider[dependencyEntity] {
	return func(db *gorm.DB) model.Provider[[]dependencyEntity] {
		return database.SliceQuery[dependencyEntity](db, &dependencyEntity{SkillId: skillId})
	}
}

func getForCharacter(characterId uint32) database.EntitySliceProvider[characterSkillEntity] {
	return func(db *gorm.DB) model.Provider[[]characterSkillEntity] {
		return database.SliceQuery[characterSkillEntity](db, &characterSkillEntity{CharacterId: characterId})
	}
}

func makeModel(e entity) (Model, error) {
	return Model{
		id:    e.ID,
		name:  e.Name,
		kind:  e.Type,
		value: e.Value,
	}, nil
}

func makeDependency(e dependencyEntity) (DependencyModel, error) {
	return DependencyModel{
		id:             e.ID,
		skillId:        e.SkillId,
		parentSkillId:  e.ParentSkillId,
		dependencyType: DependencyType(e.DependencyType),
	}, nil
}

func makeCharacterSkill(e characterSkillEntity) (CharacterSkillModel, error) {
	return CharacterSkillModel{
		id:          e.ID,
		characterId: e.CharacterId,
		skillId:     e.SkillId,
		experience:  e.Experience,
	}, nil
}
