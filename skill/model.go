package skill

import "fmt"

// DependencyType tells how a skill's prerequisites combine: union requires
// any parent, intersection requires all of them.
type DependencyType string

const (
	DependencyUnion        DependencyType = "U"
	DependencyIntersection DependencyType = "I"
)

func DependencyTypeFrom(value string) (DependencyType, error) {
	switch DependencyType(value) {
	case DependencyUnion:
		return DependencyUnion, nil
	case DependencyIntersection:
		return DependencyIntersection, nil
	}
	return "", fmt.Errorf("unknown dependency type [%s]", value)
}

type Model struct {
	id    uint32
	name  string
	kind  string
	value float64
}

func (m Model) Id() uint32 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

func (m Model) Type() string {
	return m.kind
}

func (m Model) Value() float64 {
	return m.value
}

type DependencyModel struct {
	id             uint32
	skillId        uint32
	parentSkillId  uint32
	dependencyType DependencyType
}

func (m DependencyModel) Id() uint32 {
	return m.id
}

func (m DependencyModel) SkillId() uint32 {
	return m.skillId
}

func (m DependencyModel) ParentSkillId() uint32 {
	return m.parentSkillId
}

func (m DependencyModel) DependencyType() DependencyType {
	return m.dependencyType
}

type CharacterSkillModel struct {
	id          uint32
	characterId uint32
	skillId     uint32
	experience  float64
}

func (m CharacterSkillModel) Id() uint32 {
	return m.id
}

func (m CharacterSkillModel) CharacterId() uint32 {
	return m.characterId
}

func (m CharacterSkillModel) SkillId() uint32 {
	return m.skillId
}

func (m CharacterSkillModel) Experience() float64 {
	return m.experience
}
