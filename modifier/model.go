package modifier

import "fmt"

type StaticModel struct {
	id          uint32
	name        string
	description string
	modifier    float64
	duration    uint32
	itemTypes   []string
}

func (m StaticModel) Id() uint32 {
	return m.id
}

func (m StaticModel) Name() string {
	return m.name
}

func (m StaticModel) Description() string {
	return m.description
}

func (m StaticModel) Modifier() float64 {
	return m.modifier
}

func (m StaticModel) Duration() uint32 {
	return m.duration
}

// ItemTypes lists the type tags this modifier can affect.
func (m StaticModel) ItemTypes() []string {
	return m.itemTypes
}

func (m StaticModel) CanAffect(typeTag string) bool {
	for _, t := range m.itemTypes {
		if t == typeTag {
			return true
		}
	}
	return false
}

type LiveModel struct {
	id                uint32
	staticModifierId  uint32
	remainder         float64
	durationRemaining uint32
}

func (m LiveModel) Id() uint32 {
	return m.id
}

func (m LiveModel) StaticModifierId() uint32 {
	return m.staticModifierId
}

func (m LiveModel) Remainder() float64 {
	return m.remainder
}

func (m LiveModel) DurationRemaining() uint32 {
	return m.durationRemaining
}

// IncompatibleModifierError reports a modifier attached to an item whose
// type tags it cannot affect.
type IncompatibleModifierError struct {
	ModifierName string
	ItemName     string
}

func (e *IncompatibleModifierError) Error() string {
	return fmt.Sprintf("modifier [%s] cannot affect item [%s]", e.ModifierName, e.ItemName)
}
