package item

import (
	"errors"

	"craftscape-character/database"
	kproducer "craftscape-character/kafka/producer"
	"craftscape-character/position"
	"craftscape-character/static"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func ByIdProvider(db *gorm.DB) func(id uint32) model.Provider[Model] {
	return func(id uint32) model.Provider[Model] {
		return database.ModelProvider[Model, entity](db)(getById(id), makeModel)
	}
}

func GetById(db *gorm.DB) func(id uint32, decorators ...model.Decorator[Model]) (Model, error) {
	return func(id uint32, decorators ...model.Decorator[Model]) (Model, error) {
		return model.Map(model.Decorate(decorators))(ByIdProvider(db)(id))()
	}
}

func ByUniqueIdProvider(db *gorm.DB) func(uniqueId uuid.UUID) model.Provider[Model] {
	return func(uniqueId uuid.UUID) model.Provider[Model] {
		return database.ModelProvider[Model, entity](db)(getByUniqueId(uniqueId), makeModel)
	}
}

func GetByUniqueId(db *gorm.DB) func(uniqueId uuid.UUID, decorators ...model.Decorator[Model]) (Model, error) {
	return func(uniqueId uuid.UUID, decorators ...model.Decorator[Model]) (Model, error) {
		return model.Map(model.Decorate(decorators))(ByUniqueIdProvider(db)(uniqueId))()
	}
}

func ByInventoryProvider(db *gorm.DB) func(inventoryId uint32) model.Provider[[]Model] {
	return func(inventoryId uint32) model.Provider[[]Model] {
		return database.ModelSliceProvider[Model, entity](db)(getByInventory(inventoryId), makeModel)
	}
}

func GetByInventory(db *gorm.DB) func(inventoryId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
	return func(inventoryId uint32, decorators ...model.Decorator[Model]) ([]Model, error) {
		return model.SliceMap(model.Decorate(decorators))(ByInventoryProvider(db)(inventoryId))()()
	}
}

// TemplateDecorator attaches the catalog template backing the item.
func TemplateDecorator(l logrus.FieldLogger, db *gorm.DB) model.Decorator[Model] {
	return func(m Model) Model {
		t, err := static.GetById(db)(m.StaticItemId())
		if err != nil {
			l.WithError(err).Errorf("Unable to locate template [%d] for item [%s].", m.StaticItemId(), m.UniqueId())
			return m
		}
		m.template = &t
		return m
	}
}

func holdersIn(db *gorm.DB, inventoryId uint32) ([]position.Holder, error) {
	ms, err := GetByInventory(db)(inventoryId)
	if err != nil {
		return nil, err
	}
	hs := make([]position.Holder, 0, len(ms))
	for _, m := range ms {
		hs = append(hs, m)
	}
	return hs, nil
}

func validateStack(template static.Model, quantity uint32) error {
	if quantity < 1 {
		return errors.New("stack size must be at least 1")
	}
	if quantity > template.MaxStack() {
		return &StackSizeError{ItemName: template.Name(), Requested: quantity, MaxStack: template.MaxStack()}
	}
	return nil
}

// Create stores a new item in the given inventory. The requested position is
// honored when free, otherwise the lowest free position is taken. Callers
// supply the inventory capacity and are expected to hold the inventory lock.
func Create(l logrus.FieldLogger, db *gorm.DB, span opentracing.Span, kp kproducer.Provider) func(inventoryId uint32, capacity uint32) func(staticItemId uint32, quantity uint32, requestedPosition int16, createdBy *uint32) (Model, error) {
	return func(inventoryId uint32, capacity uint32) func(staticItemId uint32, quantity uint32, requestedPosition int16, createdBy *uint32) (Model, error) {
		return func(staticItemId uint32, quantity uint32, requestedPosition int16, createdBy *uint32) (Model, error) {
			template, err := static.GetById(db)(staticItemId)
			if err != nil {
				l.WithError(err).Errorf("Unable to locate template [%d] for new item.", staticItemId)
				return Model{}, err
			}
			err = validateStack(template, quantity)
			if err != nil {
				return Model{}, err
			}

			var m Model
			txError := db.Transaction(func(tx *gorm.DB) error {
				holders, err := holdersIn(tx, inventoryId)
				if err != nil {
					return err
				}
				p, err := position.Allocate(holders, capacity, requestedPosition)
				if err != nil {
					return err
				}
				m, err = create(tx, inventoryId, staticItemId, quantity, p, createdBy)
				return err
			})
			if txError != nil {
				return Model{}, txError
			}

			err = kp(EnvEventTopicItemStatus)(addedStatusEventProvider(m))
			if err != nil {
				l.WithError(err).Errorf("Unable to announce item [%s] was added.", m.UniqueId())
			}
			return m, nil
		}
	}
}

// UpdateQuantity re-validates the stack bound against the catalog before
// persisting the new quantity.
func UpdateQuantity(l logrus.FieldLogger, db *gorm.DB, span opentracing.Span, kp kproducer.Provider) func(uniqueId uuid.UUID, quantity uint32) (Model, error) {
	return func(uniqueId uuid.UUID, quantity uint32) (Model, error) {
		m, err := GetByUniqueId(db)(uniqueId)
		if err != nil {
			return Model{}, err
		}
		template, err := static.GetById(db)(m.StaticItemId())
		if err != nil {
			return Model{}, err
		}
		err = validateStack(template, quantity)
		if err != nil {
			return Model{}, err
		}
		err = updateQuantity(db, m.Id(), quantity)
		if err != nil {
			return Model{}, err
		}
		m.quantity = quantity

		err = kp(EnvEventTopicItemStatus)(updatedStatusEventProvider(m))
		if err != nil {
			l.WithError(err).Errorf("Unable to announce item [%s] was updated.", m.UniqueId())
		}
		return m, nil
	}
}

// Detach removes the item from its inventory so an equipment slot can hold
// it. Runs within the caller's transaction.
func Detach(db *gorm.DB) func(uniqueId uuid.UUID) error {
	return func(uniqueId uuid.UUID) error {
		m, err := GetByUniqueId(db)(uniqueId)
		if err != nil {
			return err
		}
		return detach(db, m.Id())
	}
}

// Attach returns an equipped item to the given inventory, taking the lowest
// free position. Runs within the caller's transaction.
func Attach(db *gorm.DB) func(uniqueId uuid.UUID, inventoryId uint32, capacity uint32) (Model, error) {
	return func(uniqueId uuid.UUID, inventoryId uint32, capacity uint32) (Model, error) {
		m, err := GetByUniqueId(db)(uniqueId)
		if err != nil {
			return Model{}, err
		}
		holders, err := holdersIn(db, inventoryId)
		if err != nil {
			return Model{}, err
		}
		p, err := position.Allocate(holders, capacity, 0)
		if err != nil {
			return Model{}, err
		}
		err = attach(db, m.Id(), inventoryId, p)
		if err != nil {
			return Model{}, err
		}
		m.inventoryId = &inventoryId
		m.position = p
		return m, nil
	}
}

// OwnerAccountId resolves the account owning an item, whether the item sits
// in an inventory or hangs off an equipment slot.
func OwnerAccountId(db *gorm.DB) func(uniqueId uuid.UUID) (uint32, error) {
	return func(uniqueId uuid.UUID) (uint32, error) {
		return ownerAccountId(db, uniqueId)
	}
}

func DeleteByUniqueId(db *gorm.DB) func(uniqueId uuid.UUID) error {
	return func(uniqueId uuid.UUID) error {
		m, err := GetByUniqueId(db)(uniqueId)
		if err != nil {
			return err
		}
		return deleteById(db, m.Id())
	}
}
