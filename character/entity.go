package character

import (
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

type entity struct {
	ID             uint32  `gorm:"primaryKey;autoIncrement;not null"`
	AccountId      uint32  `gorm:"not null;index"`
	Name           string  `gorm:"not null"`
	Health         float64 `gorm:"not null;default:100"`
	MaxHealth      float64 `gorm:"not null;default:100"`
	Currency       float64 `gorm:"not null;default:0"`
	WalkSpeed      float64 `gorm:"not null;default:1"`
	MaxInventories uint32  `gorm:"not null;default:5"`
}

func (e entity) TableName() string {
	return "characters"
}
