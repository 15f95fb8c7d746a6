package inventory

import (
	"strconv"

	"craftscape-character/inventory/item"
)

type RestModel struct {
	Id          uint32           `json:"-"`
	CharacterId uint32           `json:"characterId"`
	Position    int16            `json:"position"`
	Size        string           `json:"size"`
	Capacity    uint32           `json:"capacity"`
	Items       []item.RestModel `json:"items,omitempty"`
}

func (r RestModel) GetName() string {
	return "inventories"
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
		Id:          m.id,
		CharacterId: m.characterId,
		Position:    m.position,
		Size:        m.size.Name(),
		Capacity:    m.Capacity(),
	}
	if m.items != nil {
		items := make([]item.RestModel, 0, len(m.items))
		for _, im := range m.items {
			ir, err := item.Transform(im)
			if err != nil {
				return RestModel{}, err
			}
			items = append(items, ir)
		}
		rm.Items = items
	}
	return rm, nil
}
