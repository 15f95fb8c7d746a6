package character_test

import (
	"errors"
	"testing"

	"craftscape-character/character"
	"craftscape-character/equipment"
	"craftscape-character/inventory"
	"craftscape-character/inventory/item"
	"craftscape-character/kafka/producer"
	"craftscape-character/static"

	producer2 "github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/segmentio/kafka-go"
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

	var migrators []func(db *gorm.DB) error
	migrators = append(migrators, character.Migration, equipment.Migration, inventory.Migration, item.Migration, static.Migration)

	for _, migrator := range migrators {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	return db
}

func testLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

func testSpan() opentracing.Span {
	return mocktracer.New().StartSpan("test")
}

func testProducer(output *[]kafka.Message) producer.Provider {
	return func(token string) producer2.MessageProducer {
		return func(provider model.Provider[[]kafka.Message]) error {
			res, err := provider()
			if err != nil {
				return err
			}
			for _, r := range res {
				*output = append(*output, r)
			}
			return nil
		}
	}
}

func TestFactoryCreatesEquipmentAndInventory(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	input := character.NewModelBuilder().SetAccountId(1000).SetName("Aria").Build()
	m, err := character.Create(l, db, span, testProducer(&messages))(input)
	if err != nil {
		t.Fatalf("Failed to create character: %v", err)
	}
	if m.Name() != "Aria" || m.AccountId() != 1000 {
		t.Fatalf("Character attributes not persisted.")
	}
	if m.MaxInventories() != 5 {
		t.Fatalf("MaxInventories expected=5, got=%d", m.MaxInventories())
	}

	eq, err := equipment.GetByCharacter(db)(m.Id())
	if err != nil {
		t.Fatalf("Factory should create an equipment record: %v", err)
	}
	if len(eq.Slots()) != 0 {
		t.Fatalf("New equipment should have no occupied slots.")
	}

	invs, err := inventory.GetByCharacter(db)(m.Id())
	if err != nil {
		t.Fatalf("Failed to retrieve inventories: %v", err)
	}
	if len(invs) != 1 {
		t.Fatalf("Factory should create one default inventory, got %d.", len(invs))
	}
	if invs[0].Size() != inventory.SizeDefault || invs[0].Position() != 1 {
		t.Fatalf("Default inventory should be the default preset at position 1.")
	}

	if len(messages) != 1 {
		t.Fatalf("A single created event should be emitted.")
	}
}

func TestFactoryRejectsEmptyName(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	input := character.NewModelBuilder().SetAccountId(1000).Build()
	_, err := character.Create(l, db, span, testProducer(&messages))(input)
	if err == nil {
		t.Fatalf("Factory should reject a nameless character.")
	}
	if len(messages) != 0 {
		t.Fatalf("No event should be emitted on rejection.")
	}
}

func TestDeleteAlwaysRefused(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	input := character.NewModelBuilder().SetAccountId(1000).SetName("Aria").Build()
	m, err := character.Create(l, db, span, testProducer(&messages))(input)
	if err != nil {
		t.Fatalf("Failed to create character: %v", err)
	}

	err = character.Delete(db)(m.Id())
	if !errors.Is(err, character.ErrDeleteNotAllowed) {
		t.Fatalf("Expected ErrDeleteNotAllowed, got %v", err)
	}

	_, err = character.GetById(db)(m.Id())
	if err != nil {
		t.Fatalf("Character should survive a delete attempt: %v", err)
	}
}

func TestGetForAccountScoping(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	creator := character.Create(l, db, span, testProducer(&messages))
	for _, spec := range []struct {
		accountId uint32
		name      string
	}{
		{1000, "Aria"},
		{1000, "Borin"},
		{2000, "Cleo"},
	} {
		_, err := creator(character.NewModelBuilder().SetAccountId(spec.accountId).SetName(spec.name).Build())
		if err != nil {
			t.Fatalf("Failed to create character: %v", err)
		}
	}

	ms, err := character.GetForAccount(db)(1000)
	if err != nil {
		t.Fatalf("Failed to retrieve characters: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("Account 1000 should own two characters, got %d.", len(ms))
	}

	all, err := character.GetAll(db)()
	if err != nil {
		t.Fatalf("Failed to retrieve characters: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Three characters expected, got %d.", len(all))
	}
}
