package static

import (
	"gorm.io/gorm"
)

type attributes struct {
	name           string
	spriteName     string
	description    string
	maxStack       uint32
	value          float64
	rarity         Rarity
	minLevel       uint32
	baseDurability uint32
	soulbound      bool
	equipable      bool
	power          uint32
	defense        uint32
	vitality       uint32
	healAmount     float64
	types          []string
}

func create(db *gorm.DB, a attributes) (Model, error) {
	var e *entity
	txErr := db.Transaction(func(tx *gorm.DB) error {
		types := make([]typeEntity, 0, len(a.types))
		for _, name := range a.types {
			var te typeEntity
			err := tx.Where(&typeEntity{Name: name}).FirstOrCreate(&te, typeEntity{Name: name}).Error
			if err != nil {
				return err
			}
			types = append(types, te)
		}

		e = &entity{
			Name:           a.name,
			SpriteName:     a.spriteName,
			Description:    a.description,
			MaxStack:       a.maxStack,
			Value:          a.value,
			Rarity:         int8(a.rarity),
			MinLevel:       a.minLevel,
			BaseDurability: a.baseDurability,
			Soulbound:      a.soulbound,
			Equipable:      a.equipable,
			Power:          a.power,
			Defense:        a.defense,
			Vitality:       a.vitality,
			HealAmount:     a.healAmount,
			Types:          types,
		}
		return tx.Create(e).Error
	})
	if txErr != nil {
		return Model{}, txErr
	}
	return makeModel(*e)
}
