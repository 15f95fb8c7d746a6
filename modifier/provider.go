package modifier

import (
	"craftscape-character/database"

	"github.com/Chronicle20/atlas-model/model"
	"gorm.io/gorm"
)

func getStaticById(id uint32) database.EntityProvider[staticEntity] {
	return func(db *gorm.DB) model.Provider[staticEntity] {
		return database.Query[staticEntity](db, &staticEntity{ID: id})
	}
}

func getAllStatic() database.EntitySliceProvider[staticEntity] {
	return func(db *gorm.DB) model.Provider[[]staticEntity] {
		return func() ([]staticEntity, error) {
			var results []staticEntity
			err := db.Order("id").Find(&results).Error
			return results, err
		}
	}
}

func getCompatibilities(db *gorm.DB, staticModifierId uint32) ([]string, error) {
	var tags []string
	err := db.Model(&compatibilityEntity{}).
		Where("static_modifier_id = ?", staticModifierId).
		Order("item_type").
		Pluck("item_type", &tags).Error
	return tags, err
}

func getLiveForItem(db *gorm.DB, gameItemId uint32) ([]liveEntity, error) {
	var results []liveEntity
	err := db.
		Joins("JOIN game_item_modifiers ON game_item_modifiers.game_modifier_id = game_modifiers.id").
		Where("game_item_modifiers.game_item_id = ?", gameItemId).
		Find(&results).Error
	return results, err
}

func makeStaticModel(db *gorm.DB) func(e staticEntity) (StaticModel, error) {
	return func(e staticEntity) (StaticModel, error) {
		tags, err := getCompatibilities(db, e.ID)
		if err != nil {
			return StaticModel{}, err
		}
		return StaticModel{
			id:          e.ID,
			name:        e.Name,
			description: e.Description,
			modifier:    e.Modifier,
			duration:    e.Duration,
			itemTypes:   tags,
		}, nil
	}
}

func makeLiveModel(e liveEntity) (LiveModel, error) {
	return LiveModel{
		id:                e.ID,
		staticModifierId:  e.StaticModifierId,
		remainder:         e.Remainder,
		durationRemaining: e.DurationRemaining,
	}, nil
}
