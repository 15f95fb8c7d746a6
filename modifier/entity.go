package modifier

import (
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&staticEntity{}, &compatibilityEntity{}, &liveEntity{}, &linkEntity{})
}

type staticEntity struct {
	ID          uint32  `gorm:"primaryKey;autoIncrement;not null"`
	Name        string  `gorm:"not null"`
	Description string  `gorm:"not null;default:''"`
	Modifier    float64 `gorm:"not null;default:0"`
	Duration    uint32  `gorm:"not null;default:0"`
}

func (e staticEntity) TableName() string {
	return "static_game_modifiers"
}

// compatibilityEntity indexes which item type tags a modifier can affect.
type compatibilityEntity struct {
	ID               uint32 `gorm:"primaryKey;autoIncrement;not null"`
	StaticModifierId uint32 `gorm:"not null;index:idx_modifier_type,unique"`
	ItemType         string `gorm:"not null;index:idx_modifier_type,unique"`
}

func (e compatibilityEntity) TableName() string {
	return "modifier_compatibilities"
}

type liveEntity struct {
	ID                uint32  `gorm:"primaryKey;autoIncrement;not null"`
	StaticModifierId  uint32  `gorm:"not null;index"`
	Remainder         float64 `gorm:"not null;default:0"`
	DurationRemaining uint32  `gorm:"not null;default:0"`
}

func (e liveEntity) TableName() string {
	return "game_modifiers"
}

type linkEntity struct {
	ID             uint32 `gorm:"primaryKey;autoIncrement;not null"`
	GameItemId     uint32 `gorm:"not null;index"`
	GameModifierId uint32 `gorm:"not null;index"`
}

func (e linkEntity) TableName() string {
	return "game_item_modifiers"
}
