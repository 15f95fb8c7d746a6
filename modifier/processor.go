package modifier

import (
	"craftscape-character/inventory/item"
	"craftscape-character/static"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func GetStaticById(db *gorm.DB) func(id uint32) (StaticModel, error) {
	return func(id uint32) (StaticModel, error) {
		e, err := getStaticById(id)(db)()
		if err != nil {
			return StaticModel{}, err
		}
		return makeStaticModel(db)(e)
	}
}

func GetAllStatic(db *gorm.DB) func() ([]StaticModel, error) {
	return func() ([]StaticModel, error) {
		es, err := getAllStatic()(db)()
		if err != nil {
			return nil, err
		}
		ms := make([]StaticModel, 0, len(es))
		for _, e := range es {
			m, err := makeStaticModel(db)(e)
			if err != nil {
				return nil, err
			}
			ms = append(ms, m)
		}
		return ms, nil
	}
}

func CreateStatic(l logrus.FieldLogger, db *gorm.DB) func(input StaticModel) (StaticModel, error) {
	return func(input StaticModel) (StaticModel, error) {
		m, err := createStatic(db, staticAttributes{
			name:        input.name,
			description: input.description,
			modifier:    input.modifier,
			duration:    input.duration,
			itemTypes:   input.itemTypes,
		})
		if err != nil {
			l.WithError(err).Errorf("Unable to create static modifier [%s].", input.name)
			return StaticModel{}, err
		}
		return m, nil
	}
}

// NewStaticModel assembles a static modifier from raw attributes.
func NewStaticModel(name string, description string, modifier float64, duration uint32, itemTypes []string) StaticModel {
	return StaticModel{
		name:        name,
		description: description,
		modifier:    modifier,
		duration:    duration,
		itemTypes:   itemTypes,
	}
}

// CanAffect consults the compatibility table for one modifier and tag.
func CanAffect(db *gorm.DB) func(staticModifierId uint32, typeTag string) (bool, error) {
	return func(staticModifierId uint32, typeTag string) (bool, error) {
		m, err := GetStaticById(db)(staticModifierId)
		if err != nil {
			return false, err
		}
		return m.CanAffect(typeTag), nil
	}
}

func GetForItem(db *gorm.DB) func(itemUniqueId uuid.UUID) ([]LiveModel, error) {
	return func(itemUniqueId uuid.UUID) ([]LiveModel, error) {
		im, err := item.GetByUniqueId(db)(itemUniqueId)
		if err != nil {
			return nil, err
		}
		es, err := getLiveForItem(db, im.Id())
		if err != nil {
			return nil, err
		}
		ms := make([]LiveModel, 0, len(es))
		for _, e := range es {
			m, err := makeLiveModel(e)
			if err != nil {
				return nil, err
			}
			ms = append(ms, m)
		}
		return ms, nil
	}
}

// Attach instantiates a live modifier on the item after checking the
// modifier can affect at least one of the item's type tags.
func Attach(l logrus.FieldLogger, db *gorm.DB) func(itemUniqueId uuid.UUID, staticModifierId uint32) (LiveModel, error) {
	return func(itemUniqueId uuid.UUID, staticModifierId uint32) (LiveModel, error) {
		im, err := item.GetByUniqueId(db)(itemUniqueId)
		if err != nil {
			return LiveModel{}, err
		}
		template, err := static.GetById(db)(im.StaticItemId())
		if err != nil {
			return LiveModel{}, err
		}
		sm, err := GetStaticById(db)(staticModifierId)
		if err != nil {
			return LiveModel{}, err
		}

		compatible := false
		for _, tag := range template.Types() {
			if sm.CanAffect(tag) {
				compatible = true
				break
			}
		}
		if !compatible {
			return LiveModel{}, &IncompatibleModifierError{ModifierName: sm.Name(), ItemName: template.Name()}
		}

		var lm LiveModel
		txError := db.Transaction(func(tx *gorm.DB) error {
			var err error
			lm, err = createLive(tx, sm.Id(), sm.Modifier(), sm.Duration())
			if err != nil {
				return err
			}
			return createLink(tx, im.Id(), lm.Id())
		})
		if txError != nil {
			l.WithError(txError).Errorf("Unable to attach modifier [%d] to item [%s].", staticModifierId, itemUniqueId)
			return LiveModel{}, txError
		}
		return lm, nil
	}
}
