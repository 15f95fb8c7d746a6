package item

import (
	"fmt"

	"craftscape-character/static"

	"github.com/google/uuid"
)

type Model struct {
	id           uint32
	uniqueId     uuid.UUID
	inventoryId  *uint32
	staticItemId uint32
	quantity     uint32
	position     int16
	createdBy    *uint32
	template     *static.Model
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) UniqueId() uuid.UUID {
	return m.uniqueId
}

// InventoryId returns 0 when the item is equipped rather than stored.
func (m Model) InventoryId() uint32 {
	if m.inventoryId == nil {
		return 0
	}
	return *m.inventoryId
}

func (m Model) Stored() bool {
	return m.inventoryId != nil
}

func (m Model) StaticItemId() uint32 {
	return m.staticItemId
}

func (m Model) Quantity() uint32 {
	return m.quantity
}

func (m Model) Position() int16 {
	return m.position
}

func (m Model) CreatedBy() *uint32 {
	return m.createdBy
}

// Template is only populated after TemplateDecorator has been applied.
func (m Model) Template() *static.Model {
	return m.template
}

// StackSizeError reports a requested quantity above the catalog bound for
// the item.
type StackSizeError struct {
	ItemName  string
	Requested uint32
	MaxStack  uint32
}

func (e *StackSizeError) Error() string {
	return fmt.Sprintf("stack of [%d] exceeds maximum [%d] for item [%s]", e.Requested, e.MaxStack, e.ItemName)
}
