package item

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func create(db *gorm.DB, inventoryId uint32, staticItemId uint32, quantity uint32, position int16, createdBy *uint32) (Model, error) {
	e := &entity{
		UniqueId:     uuid.New(),
		InventoryId:  &inventoryId,
		StaticItemId: staticItemId,
		Quantity:     quantity,
		Position:     position,
		CreatedBy:    createdBy,
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}

func updateQuantity(db *gorm.DB, id uint32, quantity uint32) error {
	return db.Model(&entity{ID: id}).Select("Quantity").Updates(&entity{Quantity: quantity}).Error
}

func detach(db *gorm.DB, id uint32) error {
	return db.Model(&entity{ID: id}).Select("InventoryId", "Position").
		Updates(map[string]interface{}{"inventory_id": nil, "position": int16(0)}).Error
}

func attach(db *gorm.DB, id uint32, inventoryId uint32, position int16) error {
	return db.Model(&entity{ID: id}).Select("InventoryId", "Position").
		Updates(map[string]interface{}{"inventory_id": inventoryId, "position": position}).Error
}

func deleteById(db *gorm.DB, id uint32) error {
	return db.Delete(&entity{ID: id}).Error
}
