package equipment

import (
	"fmt"

	"craftscape-character/inventory/item"
)

type Model struct {
	id          uint32
	characterId uint32
	slots       map[string]uint32
	items       map[string]item.Model
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) CharacterId() uint32 {
	return m.characterId
}

// Slots maps occupied slot names to game item ids. Empty slots are absent.
func (m Model) Slots() map[string]uint32 {
	return m.slots
}

func (m Model) ItemIdIn(slotType string) (uint32, bool) {
	id, ok := m.slots[slotType]
	return id, ok
}

// ItemIn is only populated after ItemDecorator has been applied.
func (m Model) ItemIn(slotType string) (item.Model, bool) {
	im, ok := m.items[slotType]
	return im, ok
}

// IncompatibleTypeError reports an item offered to a slot whose required
// type tag the item's catalog entry does not carry.
type IncompatibleTypeError struct {
	Slot     string
	ItemName string
}

func (e *IncompatibleTypeError) Error() string {
	return fmt.Sprintf("item [%s] cannot be equipped in slot [%s]", e.ItemName, e.Slot)
}
