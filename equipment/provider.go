package equipment

import (
	"craftscape-character/database"
	"craftscape-character/equipment/slot"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(id uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{ID: id})
	}
}

func getByCharacter(characterId uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{CharacterId: characterId})
	}
}

func ownerAccountId(db *gorm.DB, id uint32) (uint32, error) {
	var accountId uint32
	err := db.Table("equipment").
		Select("characters.account_id").
		Joins("JOIN characters ON characters.id = equipment.character_id").
		Where("equipment.id = ?", id).
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
	slots := make(map[string]uint32)
	for _, st := range slot.Types() {
		if id := e.itemIdIn(st); id != nil {
			slots[st] = *id
		}
	}
	return Model{
		id:          e.ID,
		characterId: e.CharacterId,
		slots:       slots,
	}, nil
}
