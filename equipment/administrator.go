package equipment

import (
	"gorm.io/gorm"
)

func create(db *gorm.DB, characterId uint32) (Model, error) {
	e := &entity{CharacterId: characterId}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}

// updateSlots applies every changed column in one statement so a failure
// leaves no partial assignment behind.
func updateSlots(db *gorm.DB, id uint32, updates map[string]interface{}) error {
	return db.Model(&entity{ID: id}).Updates(updates).Error
}
