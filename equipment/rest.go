package equipment

import (
	"sort"
	"strconv"

	"craftscape-character/equipment/slot"
	"craftscape-character/inventory/item"

	"github.com/google/uuid"
)

type RestModel struct {
	Id          uint32                     `json:"-"`
	CharacterId uint32                     `json:"characterId"`
	Slots       map[string]*item.RestModel `json:"slots"`
}

func (r RestModel) GetName() string {
	return "equipment"
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

// Transform emits every slot, occupied or not, so clients see the full
// layout.
func Transform(m Model) (RestModel, error) {
	slots := make(map[string]*item.RestModel)
	for _, st := range slot.Types() {
		slots[st] = nil
		if im, ok := m.ItemIn(st); ok {
			rm, err := item.Transform(im)
			if err != nil {
				return RestModel{}, err
			}
			slots[st] = &rm
		}
	}
	return RestModel{
		Id:          m.id,
		CharacterId: m.characterId,
		Slots:       slots,
	}, nil
}

// AssignmentsRestModel is the slot update input. A key that is present with
// a null value clears the slot; absent keys leave the slot untouched.
type AssignmentsRestModel struct {
	Id    uint32             `json:"-"`
	Slots map[string]*string `json:"slots"`
}

func (r AssignmentsRestModel) GetName() string {
	return "equipment"
}

func (r AssignmentsRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *AssignmentsRestModel) SetID(strId string) error {
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

func ExtractAssignments(r AssignmentsRestModel) ([]Assignment, error) {
	names := make([]string, 0, len(r.Slots))
	for name := range r.Slots {
		names = append(names, name)
	}
	sort.Strings(names)

	as := make([]Assignment, 0, len(names))
	for _, name := range names {
		ref := r.Slots[name]
		if ref == nil {
			as = append(as, Assignment{Slot: name})
			continue
		}
		uniqueId, err := uuid.Parse(*ref)
		if err != nil {
			return nil, err
		}
		as = append(as, Assignment{Slot: name, ItemUniqueId: &uniqueId})
	}
	return as, nil
}
