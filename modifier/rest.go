package modifier

import "strconv"

type StaticRestModel struct {
	Id          uint32   `json:"-"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Modifier    float64  `json:"modifier"`
	Duration    uint32   `json:"duration"`
	ItemTypes   []string `json:"itemTypes"`
}

func (r StaticRestModel) GetName() string {
	return "staticGameModifiers"
}

func (r StaticRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *StaticRestModel) SetID(strId string) error {
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

func TransformStatic(m StaticModel) (StaticRestModel, error) {
	return StaticRestModel{
		Id:          m.id,
		Name:        m.name,
		Description: m.description,
		Modifier:    m.modifier,
		Duration:    m.duration,
		ItemTypes:   m.itemTypes,
	}, nil
}

func ExtractStatic(r StaticRestModel) (StaticModel, error) {
	return StaticModel{
		id:          r.Id,
		name:        r.Name,
		description: r.Description,
		modifier:    r.Modifier,
		duration:    r.Duration,
		itemTypes:   r.ItemTypes,
	}, nil
}

type LiveRestModel struct {
	Id                uint32  `json:"-"`
	StaticModifierId  uint32  `json:"staticModifierId"`
	Remainder         float64 `json:"remainder"`
	DurationRemaining uint32  `json:"durationRemaining"`
}

func (r LiveRestModel) GetName() string {
	return "gameModifiers"
}

func (r LiveRestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *LiveRestModel) SetID(strId string) error {
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

func TransformLive(m LiveModel) (LiveRestModel, error) {
	return LiveRestModel{
		Id:                m.id,
		StaticModifierId:  m.staticModifierId,
		Remainder:         m.remainder,
		DurationRemaining: m.durationRemaining,
	}, nil
}
