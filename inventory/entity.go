package inventory

import (
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID          uint32 `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId uint32 `gorm:"not null;index"`
	Position    int16  `gorm:"not null"`
	Size        string `gorm:"not null;default:DE;size:2"`
}

func (e entity) TableName() string {
	return "inventory"
}
