package character

import (
	"gorm.io/gorm"
)

func create(db *gorm.DB, m Model) (Model, error) {
	e := &entity{
		AccountId:      m.accountId,
		Name:           m.name,
		Health:         m.health,
		MaxHealth:      m.maxHealth,
		Currency:       m.currency,
		WalkSpeed:      m.walkSpeed,
		MaxInventories: m.maxInventories,
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeCharacter(*e)
}
