package skill

import (
	"gorm.io/gorm"
)

func create(db *gorm.DB, name string, kind string, value float64) (Model, error) {
	e := &entity{
		Name:  name,
		Type:  kind,
		Value: value,
	}
	err := db.Create(e).Error
	if err != nil {
		return Model{}, err
	}
	return makeModel(*e)
}

func createDependency(db *gorm.DB, skillId uint32, parentSkillId uint32, dependencyType DependencyType) (DependencyModel, error) {
	e := &dependencyEntity{
		SkillId:        skillId,
		ParentSkillId:  parentSkillId,
		DependencyType: string(dependencyType),
	}
	err := db.Create(e).Error
	if err != nil {
		return DependencyModel{}, err
	}
	return makeDependency(*e)
}

func createCharacterSkill(db *gorm.DB, characterId uint32, skillId uint32, experience float64) (CharacterSkillModel, error) {
	e := &characterSkillEntity{
		CharacterId: characterId,
		SkillId:     skillId,
		Experience:  experience,
	}
	err := db.Create(e).Error
	if err != nil {
		return CharacterSkillModel{}, err
	}
	return makeCharacterSkill(*e)
}

func updateCharacterSkill(db *gorm.DB, id uint32, experience float64) error {
	return db.Model(&characterSkillEntity{ID: id}).Select("Experience").Updates(&characterSkillEntity{Experience: experience}).Error
}
