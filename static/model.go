package static

type Rarity int8

const (
	RarityCommon    Rarity = 1
	RarityRare      Rarity = 2
	RarityLegendary Rarity = 3
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	}
	return "Unknown"
}

// Model is an immutable catalog template for an item. Live instances
// reference it by id; nothing in the service mutates a template after
// seeding.
type Model struct {
	id             uint32
	name           string
	spriteName     string
	description    string
	maxStack       uint32
	value          float64
	rarity         Rarity
	minLevel       uint32
	baseDurability uint32
	soulbound      bool
	equipable      bool
	power          uint32
	defense        uint32
	vitality       uint32
	healAmount     float64
	types          []string
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

func (m Model) SpriteName() string {
	return m.spriteName
}

func (m Model) Description() string {
	return m.description
}

func (m Model) MaxStack() uint32 {
	return m.maxStack
}

func (m Model) Value() float64 {
	return m.value
}

func (m Model) Rarity() Rarity {
	return m.rarity
}

func (m Model) MinLevel() uint32 {
	return m.minLevel
}

func (m Model) BaseDurability() uint32 {
	return m.baseDurability
}

func (m Model) Soulbound() bool {
	return m.soulbound
}

func (m Model) Equipable() bool {
	return m.equipable
}

func (m Model) Power() uint32 {
	return m.power
}

func (m Model) Defense() uint32 {
	return m.defense
}

func (m Model) Vitality() uint32 {
	return m.vitality
}

func (m Model) HealAmount() float64 {
	return m.healAmount
}

func (m Model) Types() []string {
	return m.types
}

func (m Model) HasType(name string) bool {
	for _, t := range m.types {
		if t == name {
			return true
		}
	}
	return false
}
