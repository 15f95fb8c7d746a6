package character

import (
	"errors"

	"craftscape-character/database"
	"craftscape-character/equipment"
	"craftscape-character/inventory"
	kproducer "craftscape-character/kafka/producer"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func ByIdProvider(db *gorm.DB) func(characterId uint32) model.Provider[Model] {
	return func(characterId uint32) model.Provider[Model] {
		return database.ModelProvider[Model, entity](db)(getById(characterId), makeCharacter)
	}
}

func GetById(db *gorm.DB) func(characterId uint32, decorators ...model.Decorator[Model]) (Model, error) {
	return func(characterId uint32, decorators ...model.Decorator[Model]) (Model, error) {
		return model.Map(model.Decorate(decorators))(ByIdProvider(db)(characterId))()
	}
}

func GetForAccount(db *gorm.DB) func(accountId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
	return func(accountId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
		return model.SliceMap(model.Decorate(decorators))(database.ModelSliceProvider[Model, entity](db)(getForAccount(accountId), makeCharacter))()()
	}
}

func GetAll(db *gorm.DB) func(decorators ...model.Decorator[Model]) ([]Model, error) {
	return func(decorators ...model.Decorator[Model]) ([]Model, error) {
		return model.SliceMap(model.Decorate(decorators))(database.ModelSliceProvider[Model, entity](db)(getAll(), makeCharacter))()()
	}
}

// EquipmentDecorator attaches the character's equipment with hydrated slots.
func EquipmentDecorator(l logrus.FieldLogger, db *gorm.DB) model.Decorator[Model] {
	return func(m Model) Model {
		em, err := equipment.GetByCharacter(db)(m.Id(), equipment.ItemDecorator(l, db))
		if err != nil {
			l.WithError(err).Errorf("Unable to hydrate equipment of character [%d].", m.Id())
			return m
		}
		m.equipment = &em
		return m
	}
}

// InventoryDecorator attaches the character's inventories with their items.
func InventoryDecorator(l logrus.FieldLogger, db *gorm.DB) model.Decorator[Model] {
	return func(m Model) Model {
		invs, err := inventory.GetByCharacter(db)(m.Id(), inventory.ItemDecorator(l, db))
		if err != nil {
			l.WithError(err).Errorf("Unable to hydrate inventories of character [%d].", m.Id())
			return m
		}
		m.inventories = invs
		return m
	}
}

// Create is the character factory. The character row, its equipment record
// and a default inventory are all written in one transaction so none of them
// can exist without the others.
func Create(l logrus.FieldLogger, db *gorm.DB, span opentracing.Span, kp kproducer.Provider) func(input Model) (Model, error) {
	return func(input Model) (Model, error) {
		if input.name == "" {
			return Model{}, errors.New("character name must not be empty")
		}

		var m Model
		txError := db.Transaction(func(tx *gorm.DB) error {
			var err error
			m, err = create(tx, input)
			if err != nil {
				return err
			}
			_, err = equipment.CreateForCharacter(tx)(m.Id())
			if err != nil {
				return err
			}
			_, err = inventory.CreateDefault(tx)(m.Id())
			return err
		})
		if txError != nil {
			l.WithError(txError).Errorf("Unable to create character [%s] for account [%d].", input.name, input.accountId)
			return Model{}, txError
		}

		err := kp(EnvEventTopicCharacterStatus)(createdStatusEventProvider(m))
		if err != nil {
			l.WithError(err).Errorf("Unable to announce character [%d] was created.", m.Id())
		}
		return m, nil
	}
}

// Delete always refuses. Exposed so the route and any future callers share
// the same outcome.
func Delete(_ *gorm.DB) func(characterId uint32) error {
	return func(characterId uint32) error {
		return ErrDeleteNotAllowed
	}
}
