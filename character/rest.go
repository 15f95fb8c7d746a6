package character

import (
	"strconv"

	"craftscape-character/equipment"
	"craftscape-character/inventory"
)

type RestModel struct {
	Id             uint32                 `json:"-"`
	AccountId      uint32                 `json:"accountId"`
	Name           string                 `json:"name"`
	Health         float64                `json:"health"`
	MaxHealth      float64                `json:"maxHealth"`
	Currency       float64                `json:"currency"`
	WalkSpeed      float64                `json:"walkSpeed"`
	MaxInventories uint32                 `json:"maxInventories"`
	Equipment      *equipment.RestModel   `json:"equipment,omitempty"`
	Inventories    []inventory.RestModel  `json:"inventories,omitempty"`
}

func (r RestModel) GetName() string {
	return "characters"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(strId string) error {
	if strId == "" {
		return nil
	}
	id, err := strconv.Atoi(strId)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func Transform(m Model) (RestModel, error) {
	rm := RestModel{
		Id:             m.id,
		AccountId:      m.accountId,
		Name:           m.name,
		Health:         m.health,
		MaxHealth:      m.maxHealth,
		Currency:       m.currency,
		WalkSpeed:      m.walkSpeed,
		MaxInventories: m.maxInventories,
	}
	if m.equipment != nil {
		em, err := equipment.Transform(*m.equipment)
		if err != nil {
			return RestModel{}, err
		}
		rm.Equipment = &em
	}
	if m.inventories != nil {
		invs := make([]inventory.RestModel, 0, len(m.inventories))
		for _, inv := range m.inventories {
			ir, err := inventory.Transform(inv)
			if err != nil {
				return RestModel{}, err
			}
			invs = append(invs, ir)
		}
		rm.Inventories = invs
	}
	return rm, nil
}

// Extract builds the factory input. Unset numeric fields fall back to the
// builder defaults.
func Extract(r RestModel) (Model, error) {
	b := NewModelBuilder().
		SetAccountId(r.AccountId).
		SetName(r.Name)
	if r.Health > 0 {
		b = b.SetHealth(r.Health)
	}
	if r.MaxHealth > 0 {
		b = b.SetMaxHealth(r.MaxHealth)
	}
	if r.Currency > 0 {
		b = b.SetCurrency(r.Currency)
	}
	if r.WalkSpeed > 0 {
		b = b.SetWalkSpeed(r.WalkSpeed)
	}
	if r.MaxInventories > 0 {
		b = b.SetMaxInventories(r.MaxInventories)
	}
	return b.Build(), nil
}
