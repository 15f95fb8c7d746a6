package static

import "strconv"

type RestModel struct {
	Id             uint32   `json:"-"`
	Name           string   `json:"name"`
	SpriteName     string   `json:"spriteName"`
	Description    string   `json:"description"`
	MaxStack       uint32   `json:"maxStack"`
	Value          float64  `json:"value"`
	Rarity         int8     `json:"rarity"`
	MinLevel       uint32   `json:"minLevel"`
	BaseDurability uint32   `json:"baseDurability"`
	Soulbound      bool     `json:"soulbound"`
	Equipable      bool     `json:"equipable"`
	Power          uint32   `json:"power"`
	Defense        uint32   `json:"defense"`
	Vitality       uint32   `json:"vitality"`
	HealAmount     float64  `json:"healAmount"`
	Types          []string `json:"itemTypes"`
}

func (r RestModel) GetName() string {
	return "staticGameItems"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(strId string) error {
	id, err := strconv.Atoi(strId)
	if err != nil {
		return err
	}
	r.Id = uint32(id)
	return nil
}

func Transform(m Model) (RestModel, error) {
	return RestModel{
		Id:             m.id,
		Name:           m.name,
		SpriteName:     m.spriteName,
		Description:    m.description,
		MaxStack:       m.maxStack,
		Value:          m.value,
		Rarity:         int8(m.rarity),
		MinLevel:       m.minLevel,
		BaseDurability: m.baseDurability,
		Soulbound:      m.soulbound,
		Equipable:      m.equipable,
		Power:          m.power,
		Defense:        m.defense,
		Vitality:       m.vitality,
		HealAmount:     m.healAmount,
		Types:          m.types,
	}, nil
}

func Extract(r RestModel) (Model, error) {
	return Model{
		id:             r.Id,
		name:           r.Name,
		spriteName:     r.SpriteName,
		description:    r.Description,
		maxStack:       r.MaxStack,
		value:          r.Value,
		rarity:         Rarity(r.Rarity),
		minLevel:       r.MinLevel,
		baseDurability: r.BaseDurability,
		soulbound:      r.Soulbound,
		equipable:      r.Equipable,
		power:          r.Power,
		defense:        r.Defense,
		vitality:       r.Vitality,
		healAmount:     r.HealAmount,
		types:          r.Types,
	}, nil
}
