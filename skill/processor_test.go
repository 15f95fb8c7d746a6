package skill_test

import (
	"testing"

	"craftscape-character/skill"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := skill.Migration(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func TestDependencyTypeParsing(t *testing.T) {
	if dt, err := skill.DependencyTypeFrom("U"); err != nil || dt != skill.DependencyUnion {
		t.Fatalf("U should parse as union.")
	}
	if dt, err := skill.DependencyTypeFrom("I"); err != nil || dt != skill.DependencyIntersection {
		t.Fatalf("I should parse as intersection.")
	}
	if _, err := skill.DependencyTypeFrom("X"); err == nil {
		t.Fatalf("Unknown dependency types should be rejected.")
	}
}

func TestDependencies(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	woodcutting, err := skill.Create(l, db)("Woodcutting", "gathering", 1)
	if err != nil {
		t.Fatalf("Failed to create skill: %v", err)
	}
	carpentry, err := skill.Create(l, db)("Carpentry", "crafting", 1)
	if err != nil {
		t.Fatalf("Failed to create skill: %v", err)
	}

	_, err = skill.AddDependency(l, db)(carpentry.Id(), carpentry.Id(), skill.DependencyUnion)
	if err == nil {
		t.Fatalf("A skill depending on itself should be rejected.")
	}

	_, err = skill.AddDependency(l, db)(carpentry.Id(), woodcutting.Id(), skill.DependencyUnion)
	if err != nil {
		t.Fatalf("Failed to create dependency: %v", err)
	}

	ds, err := skill.GetDependencies(db)(carpentry.Id())
	if err != nil {
		t.Fatalf("Failed to retrieve dependencies: %v", err)
	}
	if len(ds) != 1 || ds[0].ParentSkillId() != woodcutting.Id() {
		t.Fatalf("Carpentry should depend on woodcutting.")
	}
}

func TestGrantIsUpsert(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)

	mining, err := skill.Create(l, db)("Mining", "gathering", 1)
	if err != nil {
		t.Fatalf("Failed to create skill: %v", err)
	}

	cs, err := skill.Grant(l, db)(1, mining.Id(), 10)
	if err != nil {
		t.Fatalf("Failed to grant skill: %v", err)
	}
	if cs.Experience() != 10 {
		t.Fatalf("Experience expected=10, got=%f", cs.Experience())
	}

	cs, err = skill.Grant(l, db)(1, mining.Id(), 25)
	if err != nil {
		t.Fatalf("Failed to advance skill: %v", err)
	}
	if cs.Experience() != 25 {
		t.Fatalf("Experience expected=25, got=%f", cs.Experience())
	}

	all, err := skill.GetForCharacter(db)(1)
	if err != nil {
		t.Fatalf("Failed to retrieve character skills: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Granting twice should not duplicate the join row.")
	}
}
