package skill

import (
	"gorm.io/gorm"
)

func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&entity{}, &dependencyEntity{}, &characterSkillEntity{})
}

type entity struct {
	ID    uint32  `gorm:"primaryKey;autoIncrement;not null"`
	Name  string  `gorm:"not null"`
	Type  string  `gorm:"not null"`
	Value float64 `gorm:"not null;default:0"`
}

func (e entity) TableName() string {
	return "skills"
}

type dependencyEntity struct {
	ID             uint32 `gorm:"primaryKey;autoIncrement;not null"`
	SkillId        uint32 `gorm:"not null;index"`
	ParentSkillId  uint32 `gorm:"not null;index"`
	DependencyType string `gorm:"not null;size:1"`
}

func (e dependencyEntity) TableName() string {
	return "skill_dependencies"
}

type characterSkillEntity struct {
	ID          uint32  `gorm:"primaryKey;autoIncrement;not null"`
	CharacterId uint32  `gorm:"not null;index:idx_character_skill,unique"`
	SkillId     uint32  `gorm:"not null;index:idx_character_skill,unique"`
	Experience  float64 `gorm:"not null;default:0"`
}

func (e characterSkillEntity) TableName() string {
	return "character_skills"
}
