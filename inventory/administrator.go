package inventory

import (
	"gorm.io/gorm"
)

func create(db *gorm.DB, characterId uint32, size Size, position int16) (Model, error) {
	e := &entity{
		CharacterId: characterId,
		Position:    position,
		Size:        string(size),
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}
