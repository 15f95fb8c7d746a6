package character

import (
	"errors"

	"craftscape-character/equipment"
	"craftscape-character/inventory"
)

// ErrDeleteNotAllowed rejects character deletion. Characters are permanent
// once created.
var ErrDeleteNotAllowed = errors.New("characters cannot be deleted")

type Model struct {
	id             uint32
	accountId      uint32
	name           string
	health         float64
	maxHealth      float64
	currency       float64
	walkSpeed      float64
	maxInventories uint32
	equipment      *equipment.Model
	inventories    []inventory.Model
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) AccountId() uint32 {
	return m.accountId
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Health() float64 {
	return m.health
}

func (m Model) MaxHealth() float64 {
	return m.maxHealth
}

func (m Model) Currency() float64 {
	return m.currency
}

func (m Model) WalkSpeed() float64 {
	return m.walkSpeed
}

func (m Model) MaxInventories() uint32 {
	return m.maxInventories
}

// Equipment is only populated after EquipmentDecorator has been applied.
func (m Model) Equipment() *equipment.Model {
	return m.equipment
}

// Inventories is only populated after InventoryDecorator has been applied.
func (m Model) Inventories() []inventory.Model {
	return m.inventories
}

type modelBuilder struct {
	accountId      uint32
	name           string
	health         float64
	maxHealth      float64
	currency       float64
	walkSpeed      float64
	maxInventories uint32
}

func NewModelBuilder() *modelBuilder {
	return &modelBuilder{
		health:         100,
		maxHealth:      100,
		walkSpeed:      1,
		maxInventories: 5,
	}
}

func (b *modelBuilder) SetAccountId(accountId uint32) *modelBuilder {
	b.accountId = accountId
	return b
}

func (b *modelBuilder) SetName(name string) *modelBuilder {
	b.name = name
	return b
}

func (b *modelBuilder) SetHealth(health float64) *modelBuilder {
	b.health = health
	return b
}

func (b *modelBuilder) SetMaxHealth(maxHealth float64) *modelBuilder {
	b.maxHealth = maxHealth
	return b
}

func (b *modelBuilder) SetCurrency(currency float64) *modelBuilder {
	b.currency = currency
	return b
}

func (b *modelBuilder) SetWalkSpeed(walkSpeed float64) *modelBuilder {
	b.walkSpeed = walkSpeed
	return b
}

func (b *modelBuilder) SetMaxInventories(maxInventories uint32) *modelBuilder {
	b.maxInventories = maxInventories
	return b
}

func (b *modelBuilder) Build() Model {
	return Model{
		accountId:      b.accountId,
		name:           b.name,
		health:         b.health,
		maxHealth:      b.maxHealth,
		currency:       b.currency,
		walkSpeed:      b.walkSpeed,
		maxInventories: b.maxInventories,
	}
}
