package equipment

import (
	"craftscape-character/equipment/slot"

	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{})
}

// One row per character. Each slot column holds a game item id or null.
type entity struct {
	ID              uint32 `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId     uint32 `gorm:"not null;uniqueIndex"`
	RingItemId      *uint32
	NeckItemId      *uint32
	HeadItemId      *uint32
	ShouldersItemId *uint32
	ChestItemId     *uint32
	MainHandItemId  *uint32
	BackItemId      *uint32
	HandsItemId     *uint32
	FeetItemId      *uint32
	LegsItemId      *uint32
}

func (e entity) TableName() string {
	return "equipment"
}

var slotColumns = map[string]string{
	slot.TypeRing:      "ring_item_id",
	slot.TypeNeck:      "neck_item_id",
	slot.TypeHead:      "head_item_id",
	slot.TypeShoulders: "shoulders_item_id",
	slot.TypeChest:     "chest_item_id",
	slot.TypeMainHand:  "main_hand_item_id",
	slot.TypeBack:      "back_item_id",
	slot.TypeHands:     "hands_item_id",
	slot.TypeFeet:      "feet_item_id",
	slot.TypeLegs:      "legs_item_id",
}

func (e entity) itemIdIn(slotType string) *uint32 {
	switch slotType {
	case slot.TypeRing:
		return e.RingItemId
	case slot.TypeNeck:
		return e.NeckItemId
	case slot.TypeHead:
		return e.HeadItemId
	case slot.TypeShoulders:
		return e.ShouldersItemId
	case slot.TypeChest:
		return e.ChestItemId
	case slot.TypeMainHand:
		return e.MainHandItemId
	case slot.TypeBack:
		return e.BackItemId
	case slot.TypeHands:
		return e.HandsItemId
	case slot.TypeFeet:
		return e.FeetItemId
	case slot.TypeLegs:
		return e.LegsItemId
	}
	return nil
}
