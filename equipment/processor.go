package equipment

import (
	"errors"

	"craftscape-character/database"
	"craftscape-character/equipment/slot"
	"craftscape-character/inventory"
	"craftscape-character/inventory/item"
	kproducer "craftscape-character/kafka/producer"
	"craftscape-character/position"
	"craftscape-character/static"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Assignment is one proposed slot change. A nil item reference clears the
// slot.
type Assignment struct {
	Slot         string
	ItemUniqueId *uuid.UUID
}

func ByIdProvider(db *gorm.DB) func(equipmentId uint32) model.Provider[Model] {
	return func(equipmentId uint32) model.Provider[Model] {
		return database.ModelProvider[Model, entity](db)(getById(equipmentId), makeModel)
	}
}

func GetById(db *gorm.DB) func(equipmentId uint32, decorators ...model.Decorator[Model]) (Model, error) {
	return func(equipmentId uint32, decorators ...model.Decorator[Model]) (Model, error) {
		return model.Map(model.Decorate(decorators))(ByIdProvider(db)(equipmentId))()
	}
}

func GetByCharacter(db *gorm.DB) func(characterId uint32, decorators ...model.Decorator[Model]) (Model, error) {
	return func(characterId uint32, decorators ...model.Decorator[Model]) (Model, error) {
		return model.Map(model.Decorate(decorators))(database.ModelProvider[Model, entity](db)(getByCharacter(characterId), makeModel))()
	}
}

// CreateForCharacter runs within the character factory transaction.
func CreateForCharacter(db *gorm.DB) func(characterId uint32) (Model, error) {
	return func(characterId uint32) (Model, error) {
		return create(db, characterId)
	}
}

// ItemDecorator hydrates every occupied slot with its item and catalog
// template.
func ItemDecorator(l logrus.FieldLogger, db *gorm.DB) model.Decorator[Model] {
	return func(m Model) Model {
		items := make(map[string]item.Model)
		for st, id := range m.slots {
			im, err := item.GetById(db)(id, item.TemplateDecorator(l, db))
			if err != nil {
				l.WithError(err).Errorf("Unable to hydrate item [%d] in slot [%s].", id, st)
				continue
			}
			items[st] = im
		}
		m.items = items
		return m
	}
}

// stow returns a displaced item to the first of the character's inventories
// with a free position.
func stow(db *gorm.DB) func(characterId uint32, itemId uint32) error {
	return func(characterId uint32, itemId uint32) error {
		im, err := item.GetById(db)(itemId)
		if err != nil {
			return err
		}
		invs, err := inventory.GetByCharacter(db)(characterId)
		if err != nil {
			return err
		}
		if len(invs) == 0 {
			return errors.New("character has no inventory to stow into")
		}
		for _, inv := range invs {
			_, err = item.Attach(db)(im.UniqueId(), inv.Id(), inv.Capacity())
			if err == nil {
				return nil
			}
			var ce *position.CapacityError
			if !errors.As(err, &ce) {
				return err
			}
		}
		return err
	}
}

// UpdateSlots validates every proposed assignment against the slot's
// required type tag and applies all of them in one transaction, or none.
// Slots not mentioned are untouched. Displaced and cleared items are stowed
// back into the character's inventories.
func UpdateSlots(l logrus.FieldLogger, db *gorm.DB, span opentracing.Span, kp kproducer.Provider) func(equipmentId uint32, assignments []Assignment) (Model, error) {
	return func(equipmentId uint32, assignments []Assignment) (Model, error) {
		// The first read only identifies the lock. The snapshot the
		// decisions run against is re-read once the lock is held, so a
		// writer that slipped in between cannot leave its item stranded.
		m, err := GetById(db)(equipmentId)
		if err != nil {
			return Model{}, err
		}

		lock := GetLockRegistry().GetById(m.CharacterId())
		lock.Lock()
		defer lock.Unlock()

		events := make([]model.Provider[[]kafka.Message], 0)
		txError := db.Transaction(func(tx *gorm.DB) error {
			var err error
			m, err = GetById(tx)(equipmentId)
			if err != nil {
				return err
			}

			updates := make(map[string]interface{})
			for _, a := range assignments {
				st, err := slot.FromType(a.Slot)
				if err != nil {
					return err
				}
				col := slotColumns[st]
				current, occupied := m.ItemIdIn(st)

				if a.ItemUniqueId == nil {
					if !occupied {
						continue
					}
					err = stow(tx)(m.CharacterId(), current)
					if err != nil {
						return err
					}
					updates[col] = nil
					events = append(events, clearedEventProvider(m.CharacterId(), st))
					continue
				}

				im, err := item.GetByUniqueId(tx)(*a.ItemUniqueId)
				if err != nil {
					return err
				}
				template, err := static.GetById(tx)(im.StaticItemId())
				if err != nil {
					return err
				}
				tag, err := slot.RequiredTag(st)
				if err != nil {
					return err
				}
				if !template.HasType(tag) {
					return &IncompatibleTypeError{Slot: st, ItemName: template.Name()}
				}

				if occupied && current == im.Id() {
					continue
				}
				if occupied {
					err = stow(tx)(m.CharacterId(), current)
					if err != nil {
						return err
					}
				}
				if im.Stored() {
					err = item.Detach(tx)(im.UniqueId())
					if err != nil {
						return err
					}
				}
				updates[col] = im.Id()
				events = append(events, equippedEventProvider(m.CharacterId(), st, im.Id()))
			}
			if len(updates) == 0 {
				return nil
			}
			return updateSlots(tx, equipmentId, updates)
		})
		if txError != nil {
			return Model{}, txError
		}

		for _, ep := range events {
			err = kp(EnvEventTopicEquipmentChanged)(ep)
			if err != nil {
				l.WithError(err).Errorf("Unable to announce equipment [%d] changed.", equipmentId)
			}
		}
		return GetById(db)(equipmentId)
	}
}
