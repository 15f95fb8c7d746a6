package inventory

import (
	"craftscape-character/database"
	"craftscape-character/inventory/item"
	kproducer "craftscape-character/kafka/producer"
	"craftscape-character/position"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func ByIdProvider(db *gorm.DB) func(inventoryId uint32) model.Provider[Model] {
	return func(inventoryId uint32) model.Provider[Model] {
		return database.ModelProvider[Model, entity](db)(getById(inventoryId), makeModel)
	}
}

func GetById(db *gorm.DB) func(inventoryId uint32, decorators ...model.Decorator[Model]) (Model, error) {
	return func(inventoryId uint32, decorators ...model.Decorator[Model]) (Model, error) {
		return model.Map(model.Decorate(decorators))(ByIdProvider(db)(inventoryId))()
	}
}

func ByCharacterProvider(db *gorm.DB) func(characterId uint32) model.Provider[[]Model] {
	return func(characterId uint32) model.Provider[[]Model] {
		return database.ModelSliceProvider[Model, entity](db)(getByCharacter(characterId), makeModel)
	}
}

func GetByCharacter(db *gorm.DB) func(characterId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
	return func(characterId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
		return model.SliceMap(model.Decorate(decorators))(ByCharacterProvider(db)(characterId))()()
	}
}

func GetForAccount(db *gorm.DB) func(accountId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
	return func(accountId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
		return model.SliceMap(model.Decorate(decorators))(database.ModelSliceProvider[Model, entity](db)(getForAccount(accountId), makeModel))()()
	}
}

func GetAll(db *gorm.DB) func(decorators ...model.Decorator[Model]) ([]Model, error) {
	return func(decorators ...model.Decorator[Model]) ([]Model, error) {
		return model.SliceMap(model.Decorate(decorators))(database.ModelSliceProvider[Model, entity](db)(getAll(), makeModel))()()
	}
}

// ItemDecorator attaches the stored items, each with its catalog template.
func ItemDecorator(l logrus.FieldLogger, db *gorm.DB) model.Decorator[Model] {
	return func(m Model) Model {
		items, err := item.GetByInventory(db)(m.Id(), item.TemplateDecorator(l, db))
		if err != nil {
			l.WithError(err).Errorf("Unable to hydrate items of inventory [%d].", m.Id())
			return m
		}
		m.items = items
		return m
	}
}

func holdersFor(db *gorm.DB, characterId uint32) ([]position.Holder, error) {
	ms, err := GetByCharacter(db)(characterId)
	if err != nil {
		return nil, err
	}
	hs := make([]position.Holder, 0, len(ms))
	for _, m := range ms {
		hs = append(hs, m)
	}
	return hs, nil
}

// Create saves a new inventory for the character. The character's
// max_inventories caps the number of positions; a requested position that is
// free passes through, anything else takes the lowest free one.
func Create(l logrus.FieldLogger, db *gorm.DB, span opentracing.Span, kp kproducer.Provider) func(characterId uint32, size Size, requestedPosition int16) (Model, error) {
	return func(characterId uint32, size Size, requestedPosition int16) (Model, error) {
		info, err := getCharacterInfo(db, characterId)
		if err != nil {
			return Model{}, err
		}

		lock := GetLockRegistry().GetById(characterId)
		lock.Lock()
		defer lock.Unlock()

		var m Model
		txError := db.Transaction(func(tx *gorm.DB) error {
			holders, err := holdersFor(tx, characterId)
			if err != nil {
				return err
			}
			p, err := position.Allocate(holders, info.MaxInventories, requestedPosition)
			if err != nil {
				return err
			}
			m, err = create(tx, characterId, size, p)
			return err
		})
		if txError != nil {
			return Model{}, txError
		}

		err = kp(EnvEventTopicInventoryStatus)(createdStatusEventProvider(m))
		if err != nil {
			l.WithError(err).Errorf("Unable to announce inventory [%d] was created.", m.Id())
		}
		return m, nil
	}
}

// CreateDefault runs within the character factory transaction, before any
// sibling exists.
func CreateDefault(db *gorm.DB) func(characterId uint32) (Model, error) {
	return func(characterId uint32) (Model, error) {
		return create(db, characterId, SizeDefault, 1)
	}
}

// AddItem places a new item into the inventory under the inventory lock.
func AddItem(l logrus.FieldLogger, db *gorm.DB, span opentracing.Span, kp kproducer.Provider) func(inventoryId uint32) func(staticItemId uint32, quantity uint32, requestedPosition int16, createdBy *uint32) (item.Model, error) {
	return func(inventoryId uint32) func(staticItemId uint32, quantity uint32, requestedPosition int16, createdBy *uint32) (item.Model, error) {
		return func(staticItemId uint32, quantity uint32, requestedPosition int16, createdBy *uint32) (item.Model, error) {
			m, err := GetById(db)(inventoryId)
			if err != nil {
				return item.Model{}, err
			}

			lock := GetLockRegistry().GetByInventory(inventoryId)
			lock.Lock()
			defer lock.Unlock()

			return item.Create(l, db, span, kp)(inventoryId, m.Capacity())(staticItemId, quantity, requestedPosition, createdBy)
		}
	}
}

// OwnerAccountId resolves the account owning the inventory's character.
func OwnerAccountId(db *gorm.DB) func(inventoryId uint32) (uint32, error) {
	return func(inventoryId uint32) (uint32, error) {
		return ownerAccountId(db, inventoryId)
	}
}
