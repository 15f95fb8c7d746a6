package static

import (
	"craftscape-character/database"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func ByIdProvider(db *gorm.DB) func(id uint32) model.Provider[Model] {
	return func(id uint32) model.Provider[Model] {
		return database.ModelProvider[Model, entity](db)(getById(id), makeModel)
	}
}

func GetById(db *gorm.DB) func(id uint32) (Model, error) {
	return func(id uint32) (Model, error) {
		return ByIdProvider(db)(id)()
	}
}

func GetAll(db *gorm.DB) func() ([]Model, error) {
	return func() ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getAll(), makeModel)()
	}
}

func GetByType(db *gorm.DB) func(typeName string) ([]Model, error) {
	return func(typeName string) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getByType(typeName), makeModel)()
	}
}

func Create(l logrus.FieldLogger, db *gorm.DB) func(input Model) (Model, error) {
	return func(input Model) (Model, error) {
		m, err := create(db, attributes{
			name:           input.name,
			spriteName:     input.spriteName,
			description:    input.description,
			maxStack:       input.maxStack,
			value:          input.value,
			rarity:         input.rarity,
			minLevel:       input.minLevel,
			baseDurability: input.baseDurability,
			soulbound:      input.soulbound,
			equipable:      input.equipable,
			power:          input.power,
			defense:        input.defense,
			vitality:       input.vitality,
			healAmount:     input.healAmount,
			types:          input.types,
		})
		if err != nil {
			l.WithError(err).Errorf("Unable to create static game item [%s].", input.name)
			return Model{}, err
		}
		return m, nil
	}
}

// NewModel assembles a catalog template from raw attributes. Used by the
// create handler and by tests seeding the catalog.
func NewModel(name string, spriteName string, description string, maxStack uint32, value float64, rarity Rarity, minLevel uint32, baseDurability uint32, soulbound bool, equipable bool, power uint32, defense uint32, vitality uint32, healAmount float64, types []string) Model {
	return Model{
		name:           name,
		spriteName:     spriteName,
		description:    description,
		maxStack:       maxStack,
		value:          value,
		rarity:         rarity,
		minLevel:       minLevel,
		baseDurability: baseDurability,
		soulbound:      soulbound,
		equipable:      equipable,
		power:          power,
		defense:        defense,
		vitality:       vitality,
		healAmount:     healAmount,
		types:          types,
	}
}
