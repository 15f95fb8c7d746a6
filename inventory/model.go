package inventory

import (
	"fmt"

	"craftscape-character/inventory/item"
)

// Size is a stored preset code. Capacity is fixed per preset rather than
// persisted per row.
type Size string

const (
	SizeDefault   Size = "DE"
	SizeSmallBag  Size = "SB"
	SizeMediumBag Size = "MB"
	SizeLargeBag  Size = "LB"
)

func (s Size) Capacity() uint32 {
	switch s {
	case SizeSmallBag:
		return 4
	case SizeMediumBag:
		return 8
	case SizeLargeBag:
		return 16
	}
	return 10
}

func (s Size) Name() string {
	switch s {
	case SizeSmallBag:
		return "smallBag"
	case SizeMediumBag:
		return "mediumBag"
	case SizeLargeBag:
		return "largeBag"
	}
	return "default"
}

func SizeFromName(name string) (Size, error) {
	switch name {
	case "default", "":
		return SizeDefault, nil
	case "smallBag":
		return SizeSmallBag, nil
	case "mediumBag":
		return SizeMediumBag, nil
	case "largeBag":
		return SizeLargeBag, nil
	}
	return SizeDefault, fmt.Errorf("unknown inventory size [%s]", name)
}

type Model struct {
	id          uint32
	characterId uint32
	position    int16
	size        Size
	items       []item.Model
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) CharacterId() uint32 {
	return m.characterId
}

func (m Model) Position() int16 {
	return m.position
}

func (m Model) Size() Size {
	return m.size
}

func (m Model) Capacity() uint32 {
	return m.size.Capacity()
}

// Items is only populated after ItemDecorator has been applied.
func (m Model) Items() []item.Model {
	return m.items
}
