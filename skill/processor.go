package skill

import (
	"errors"

	"craftscape-character/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func GetById(db *gorm.DB) func(skillId uint32) (Model, error) {
	return func(skillId uint32) (Model, error) {
		return database.ModelProvider[Model, entity](db)(getById(skillId), makeModel)()
	}
}

func GetAll(db *gorm.DB) func() ([]Model, error) {
	return func() ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getAll(), makeModel)()
	}
}

func Create(l logrus.FieldLogger, db *gorm.DB) func(name string, kind string, value float64) (Model, error) {
	return func(name string, kind string, value float64) (Model, error) {
		if name == "" {
			return Model{}, errors.New("skill name must not be empty")
		}
		m, err := create(db, name, kind, value)
		if err != nil {
			l.WithError(err).Errorf("Unable to create skill [%s].", name)
			return Model{}, err
		}
		return m, nil
	}
}

func GetDependencies(db *gorm.DB) func(skillId uint32) ([]DependencyModel, error) {
	return func(skillId uint32) ([]DependencyModel, error) {
		return database.ModelSliceProvider[DependencyModel, dependencyEntity](db)(getDependencies(skillId), makeDependency)()
	}
}

// AddDependency records that skillId requires parentSkillId. Both ends must
// exist and a skill cannot depend on itself.
func AddDependency(l logrus.FieldLogger, db *gorm.DB) func(skillId uint32, parentSkillId uint32, dependencyType DependencyType) (DependencyModel, error) {
	return func(skillId uint32, parentSkillId uint32, dependencyType DependencyType) (DependencyModel, error) {
		if skillId == parentSkillId {
			return DependencyModel{}, errors.New("a skill cannot depend on itself")
		}
		_, err := GetById(db)(skillId)
		if err != nil {
			return DependencyModel{}, err
		}
		_, err = GetById(db)(parentSkillId)
		if err != nil {
			return DependencyModel{}, err
		}
		m, err := createDependency(db, skillId, parentSkillId, dependencyType)
		if err != nil {
			l.WithError(err).Errorf("Unable to create dependency of skill [%d] on [%d].", skillId, parentSkillId)
			return DependencyModel{}, err
		}
		return m, nil
	}
}

func GetForCharacter(db *gorm.DB) func(characterId uint32) ([]CharacterSkillModel, error) {
	return func(characterId uint32) ([]CharacterSkillModel, error) {
		return database.ModelSliceProvider[CharacterSkillModel, characterSkillEntity](db)(getForCharacter(characterId), makeCharacterSkill)()
	}
}

// Grant attaches a skill to a character, or advances its experience when
// already attached.
func Grant(l logrus.FieldLogger, db *gorm.DB) func(characterId uint32, skillId uint32, experience float64) (CharacterSkillModel, error) {
	return func(characterId uint32, skillId uint32, experience float64) (CharacterSkillModel, error) {
		_, err := GetById(db)(skillId)
		if err != nil {
			return CharacterSkillModel{}, err
		}

		existing, err := GetForCharacter(db)(characterId)
		if err != nil {
			return CharacterSkillModel{}, err
		}
		for _, cs := range existing {
			if cs.SkillId() != skillId {
				continue
			}
			err = updateCharacterSkill(db, cs.Id(), experience)
			if err != nil {
				return CharacterSkillModel{}, err
			}
			cs.experience = experience
			return cs, nil
		}

		m, err := createCharacterSkill(db, characterId, skillId, experience)
		if err != nil {
			l.WithError(err).Errorf("Unable to grant skill [%d] to character [%d].", skillId, characterId)
			return CharacterSkillModel{}, err
		}
		return m, nil
	}
}

func ownerAccountId(db *gorm.DB, characterId uint32) (uint32, error) {
	var accountId uint32
	err := db.Table("characters").
		Select("account_id").
		Where("id = ?", characterId).
		Scan(&accountId).Error
	if err != nil {
		return 0, err
	}
	if accountId == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return accountId, nil
}
