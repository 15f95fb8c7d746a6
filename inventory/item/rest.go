package item

import (
	"craftscape-character/static"

	"github.com/google/uuid"
)

type RestModel struct {
	UniqueId     uuid.UUID         `json:"-"`
	InventoryId  uint32            `json:"inventoryId"`
	StaticItemId uint32            `json:"staticItemId"`
	Quantity     uint32            `json:"quantity"`
	Position     int16             `json:"position"`
	CreatedBy    *uint32           `json:"createdBy"`
	Template     *static.RestModel `json:"template,omitempty"`
}

func (r RestModel) GetName() string {
	return "items"
}

func (r RestModel) GetID() string {
	return r.UniqueId.String()
}

func (r *RestModel) SetID(strId string) error {
	if strId == "" {
		return nil
	}
	id, err := uuid.Parse(strId)
	if err != nil {
		return err
	}
	r.UniqueId = id
	return nil
}

func Transform(m Model) (RestModel, error) {
	rm := RestModel{
		UniqueId:     m.uniqueId,
		InventoryId:  m.InventoryId(),
		StaticItemId: m.staticItemId,
		Quantity:     m.quantity,
		Position:     m.position,
		CreatedBy:    m.createdBy,
	}
	if m.template != nil {
		t, err := static.Transform(*m.template)
		if err != nil {
			return RestModel{}, err
		}
		rm.Template = &t
	}
	return rm, nil
}

func Extract(r RestModel) (Model, error) {
	inventoryId := r.InventoryId
	m := Model{
		uniqueId:     r.UniqueId,
		staticItemId: r.StaticItemId,
		quantity:     r.Quantity,
		position:     r.Position,
		createdBy:    r.CreatedBy,
	}
	if inventoryId != 0 {
		m.inventoryId = &inventoryId
	}
	return m, nil
}
