package item

import (
	"craftscape-character/database"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func getById(id uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{ID: id})
	}
}

func getByUniqueId(uniqueId uuid.UUID) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return database.Query[entity](db, &entity{UniqueId: uniqueId})
	}
}

func getByInventory(inventoryId uint32) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.Where("inventory_id = ?", inventoryId).Order("position").Find(&results).Error
			return results, err
		}
	}
}

// ownerAccountId walks item -> inventory -> character for stored items, and
// item -> equipment -> character for equipped ones.
func ownerAccountId(db *gorm.DB, uniqueId uuid.UUID) (uint32, error) {
	var accountId uint32
	err := db.Table("game_items").
		Select("characters.account_id").
		Joins("JOIN inventory ON inventory.id = game_items.inventory_id").
		Joins("JOIN characters ON characters.id = inventory.character_id").
		Where("game_items.unique_id = ?", uniqueId).
		Scan(&accountId).Error
	if err == nil && accountId != 0 {
		return accountId, nil
	}
	err = db.Table("game_items").
		Select("characters.account_id").
		Joins("JOIN equipment ON game_items.id IN (equipment.ring_item_id, equipment.neck_item_id, equipment.head_item_id, equipment.shoulders_item_id, equipment.chest_item_id, equipment.main_hand_item_id, equipment.back_item_id, equipment.hands_item_id, equipment.feet_item_id, equipment.legs_item_id)").
		Joins("JOIN characters ON characters.id = equipment.character_id").
		Where("game_items.unique_id = ?", uniqueId).
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
		id:           e.ID,
		uniqueId:     e.UniqueId,
		inventoryId:  e.InventoryId,
		staticItemId: e.StaticItemId,
		quantity:     e.Quantity,
		position:     e.Position,
		createdBy:    e.CreatedBy,
	}, nil
}
