package item

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

// InventoryId is nullable. An item with no inventory is held by an equipment
// slot and referenced there by UniqueId.
type entity struct {
	ID           uint32    `gorm:"primaryKey;autoIncrement;not null"`
	UniqueId     uuid.UUID `gorm:"not null;uniqueIndex"`
	InventoryId  *uint32   `gorm:"index"`
	StaticItemId uint32    `gorm:"not null;index"`
	Quantity     uint32    `gorm:"not null;default:1"`
	Position     int16     `gorm:"not null"`
	CreatedBy    *uint32
}

func (e entity) TableName() string {
	return "game_items"
}
