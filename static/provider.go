package static

import (
	"craftscape-character/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getById(id uint32) database.EntityProvider[entity] {
	return func(db *gorm.DB) model.Provider[entity] {
		return func() (entity, error) {
			var result entity
			err := db.Preload("Types").First(&result, id).Error
			return result, err
		}
	}
}

func getAll() database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.Preload("Types").Find(&results).Error
			return results, err
		}
	}
}

func getByType(typeName string) database.EntitySliceProvider[entity] {
	return func(db *gorm.DB) model.Provider[[]entity] {
		return func() ([]entity, error) {
			var results []entity
			err := db.Preload("Types").
				Joins("join static_game_item_types sgit on sgit.entity_id = static_game_items.id").
				Joins("join static_item_types sit on sit.id = sgit.type_entity_id").
				Where("sit.name = ?", typeName).
				Find(&results).Error
			return results, err
		}
	}
}

func makeModel(e entity) (Model, error) {
	types := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		types = append(types, t.Name)
	}
	return Model{
		id:             e.ID,
		name:           e.Name,
		spriteName:     e.SpriteName,
		description:    e.Description,
		maxStack:       e.MaxStack,
		value:          e.Value,
		rarity:         Rarity(e.Rarity),
		minLevel:       e.MinLevel,
		baseDurability: e.BaseDurability,
		soulbound:      e.Soulbound,
		equipable:      e.Equipable,
		power:          e.Power,
		defense:        e.Defense,
		vitality:       e.Vitality,
		healAmount:     e.HealAmount,
		types:          types,
	}, nil
}
