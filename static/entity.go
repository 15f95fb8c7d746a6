package static

import (
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&typeEntity{}, &entity{})
}

type entity struct {
	ID             uint32  `gorm:"primaryKey;autoIncrement;not null"`
	Name           string  `gorm:"not null;uniqueIndex"`
	SpriteName     string  `gorm:"not null"`
	Description    string  `gorm:"not null"`
	MaxStack       uint32  `gorm:"not null;default:1"`
	Value          float64 `gorm:"not null;default:0"`
	Rarity         int8    `gorm:"not null;default:1"`
	MinLevel       uint32  `gorm:"not null;default:0"`
	BaseDurability uint32  `gorm:"not null;default:0"`
	Soulbound      bool    `gorm:"not null;default:false"`
	Equipable      bool    `gorm:"not null;default:false"`
	Power          uint32  `gorm:"not null;default:0"`
	Defense        uint32  `gorm:"not null;default:0"`
	Vitality       uint32  `gorm:"not null;default:0"`
	HealAmount     float64 `gorm:"not null;default:0"`
	Types          []typeEntity `gorm:"many2many:static_game_item_types;"`
}

func (e entity) TableName() string {
	return "static_game_items"
}

type typeEntity struct {
	ID   uint32 `gorm:"primaryKey;autoIncrement;not null"`
	Name string `gorm:"not null;uniqueIndex"`
}

func (e typeEntity) TableName() string {
	return "static_item_types"
}
