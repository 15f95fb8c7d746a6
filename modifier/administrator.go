package modifier

import (
	"gorm.io/gorm"
)

type staticAttributes struct {
	name        string
	description string
	modifier    float64
	duration    uint32
	itemTypes   []string
}

func createStatic(db *gorm.DB, attributes staticAttributes) (StaticModel, error) {
	var m StaticModel
	txError := db.Transaction(func(tx *gorm.DB) error {
		e := &staticEntity{
			Name:        attributes.name,
			Description: attributes.description,
			Modifier:    attributes.modifier,
			Duration:    attributes.duration,
		}
		err := tx.Create(e).Error
		if err != nil {
			return err
		}
		for _, tag := range attributes.itemTypes {
			err = tx.Create(&compatibilityEntity{StaticModifierId: e.ID, ItemType: tag}).Error
			if err != nil {
				return err
			}
		}
		m, err = makeStaticModel(tx)(*e)
		return err
	})
	return m, txError
}

func createLive(db *gorm.DB, staticModifierId uint32, remainder float64, durationRemaining uint32) (LiveModel, error) {
	e := &liveEntity{
		StaticModifierId:  staticModifierId,
		Remainder:         remainder,
		DurationRemaining: durationRemaining,
	}
	err := db.Create(e).Error
	if err != nil {
		return LiveModel{}, err
	}
	return makeLiveModel(*e)
}

func createLink(db *gorm.DB, gameItemId uint32, gameModifierId uint32) error {
	return db.Create(&linkEntity{GameItemId: gameItemId, GameModifierId: gameModifierId}).Error
}
