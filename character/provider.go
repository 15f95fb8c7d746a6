package character

import (
	"craftscape-character/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(characterId uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{ID: characterId})
	}
}

func getForAccount(accountId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return database.SliceQuery[entity](db, &entity{AccountId: accountId})
	}
}

func getAll() database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.Find(&results).Error
			return results, err
		}
	}
}

func makeCharacter(e entity) (Model, error) {
	return Model{
		id:             e.ID,
		accountId:      e.AccountId,
		name:           e.Name,
		health:         e.Health,
		maxHealth:      e.MaxHealth,
		currency:       e.Currency,
		walkSpeed:      e.WalkSpeed,
		maxInventories: e.MaxInventories,
	}, nil
}
