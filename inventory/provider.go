package inventory

import (
	"craftscape-character/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(id uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{ID: id})
	}
}

func getByCharacter(characterId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.Where("character_id = ?", characterId).Order("position").Find(&results).Error
			return results, err
		}
	}
}

func getForAccount(accountId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.
				Joins("JOIN characters ON characters.id = inventory.character_id").
				Where("characters.account_id = ?", accountId).
				Order("inventory.character_id, inventory.position").
				Find(&results).Error
			return results, err
		}
	}
}

func getAll() database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.Order("character_id, position").Find(&results).Error
			return results, err
		}
	}
}

// characterInfo reads owner and cap without importing the character package.
type characterInfo struct {
	AccountId      uint32
	MaxInventories uint32
}

func getCharacterInfo(db *gorm.DB, characterId uint32) (characterInfo, error) {
	var info characterInfo
	err := db.Table("characters").
		Select("account_id, max_inventories").
		Where("id = ?", characterId).
		Scan(&info).Error
	if err != nil {
		return characterInfo{}, err
	}
	if info.AccountId == 0 {
		return characterInfo{}, gorm.ErrRecordNotFound
	}
	return info, nil
}

func ownerAccountId(db *gorm.DB, id uint32) (uint32, error) {
	var accountId uint32
	err := db.Table("inventory").
		Select("characters.account_id").
		Joins("JOIN characters ON characters.id = inventory.character_id").
		Where("inventory.id = ?", id).
		Scan(&accountId).Error
	if err != nil {
		return 0, err
	}
	if accountId == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return accountId, nil
}

func makeModel(e entity) (Model, error) {
	return Model{
		id:          e.ID,
		characterId: e.CharacterId,
		position:    e.Position,
		size:        Size(e.Size),
	}, nil
}
