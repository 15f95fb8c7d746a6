package skill

import "strconv"

type RestModel struct {
	Id    uint32  `json:"-"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

func (r RestModel) GetName() string {
	return "skills"
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
	return RestModel{
		Id:    m.id,
		Name:  m.name,
		Type:  m.kind,
		Value: m.value,
	}, nil
}

type DependencyRestModel struct {
	Id             uint32 `json:"-"`
	SkillId        uint32 `json:"skillId"`
	ParentSkillId  uint32 `json:"parentSkillId"`
	DependencyType string `json:"dependencyType"`
}

func (r DependencyRestModel) GetName() string {
	return "skillDependencies"
}

func (r DependencyRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *DependencyRestModel) SetID(strId string) error {
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

func TransformDependency(m DependencyModel) (DependencyRestModel, error) {
	return DependencyRestModel{
		Id:             m.id,
		SkillId:        m.skillId,
		ParentSkillId:  m.parentSkillId,
		DependencyType: string(m.dependencyType),
	}, nil
}

type CharacterSkillRestModel struct {
	Id          uint32  `json:"-"`
	CharacterId uint32  `json:"characterId"`
	SkillId     uint32  `json:"skillId"`
	Experience  float64 `json:"experience"`
}

func (r CharacterSkillRestModel) GetName() string {
	return "characterSkills"
}

func (r CharacterSkillRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *CharacterSkillRestModel) SetID(strId string) error {
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

func TransformCharacterSkill(m CharacterSkillModel) (CharacterSkillRestModel, error) {
	return CharacterSkillRestModel{
		Id:          m.id,
		CharacterId: m.characterId,
		SkillId:     m.skillId,
		Experience:  m.experience,
	}, nil
}
