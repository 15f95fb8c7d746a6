package item_test

import (
	"errors"
	"testing"

	"craftscape-character/equipment"
	"craftscape-character/inventory"
	"craftscape-character/inventory/item"
	"craftscape-character/kafka/producer"
	"craftscape-character/position"
	"craftscape-character/static"

	producer2 "github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
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
	migrators = append(migrators, static.Migration, item.Migration)

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

func seedTemplate(t *testing.T, l logrus.FieldLogger, db *gorm.DB, name string, maxStack uint32, types []string) static.Model {
	m, err := static.Create(l, db)(static.NewModel(name, name, "", maxStack, 1.0, static.RarityCommon, 1, 100, false, false, 0, 0, 0, 0, types))
	if err != nil {
		t.Fatalf("Failed to seed template: %v", err)
	}
	return m
}

func TestCreateRejectsOversizedStack(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	template := seedTemplate(t, l, db, "Oak Log", 5, []string{"resource"})

	_, err := item.Create(l, db, span, testProducer(&messages))(1, 10)(template.Id(), 6, 0, nil)
	var sse *item.StackSizeError
	if !errors.As(err, &sse) {
		t.Fatalf("Expected StackSizeError, got %v", err)
	}
	if sse.MaxStack != 5 || sse.Requested != 6 {
		t.Fatalf("Unexpected bounds in error: %v", sse)
	}
	if len(messages) != 0 {
		t.Fatalf("No event should be emitted for a rejected stack.")
	}
}

func TestCreateAcceptsFullStack(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	template := seedTemplate(t, l, db, "Oak Log", 5, []string{"resource"})

	m, err := item.Create(l, db, span, testProducer(&messages))(1, 10)(template.Id(), 5, 0, nil)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	if m.Quantity() != 5 {
		t.Fatalf("Quantity expected=5, got=%d", m.Quantity())
	}
	if m.Position() != 1 {
		t.Fatalf("Position expected=1, got=%d", m.Position())
	}
	if len(messages) != 1 {
		t.Fatalf("A single added event should be emitted.")
	}
}

func TestCreateHonorsRequestedPosition(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	template := seedTemplate(t, l, db, "Iron Sword", 1, []string{"mainHand"})
	creator := item.Create(l, db, span, testProducer(&messages))(1, 4)

	m, err := creator(template.Id(), 1, 3, nil)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	if m.Position() != 3 {
		t.Fatalf("Position expected=3, got=%d", m.Position())
	}

	// Requesting a held position falls back to the lowest free one.
	m, err = creator(template.Id(), 1, 3, nil)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	if m.Position() != 1 {
		t.Fatalf("Position expected=1, got=%d", m.Position())
	}
}

func TestCreateFailsWhenInventoryFull(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	template := seedTemplate(t, l, db, "Iron Sword", 1, []string{"mainHand"})
	creator := item.Create(l, db, span, testProducer(&messages))(1, 2)

	for i := 0; i < 2; i++ {
		_, err := creator(template.Id(), 1, 0, nil)
		if err != nil {
			t.Fatalf("Failed to create item: %v", err)
		}
	}

	_, err := creator(template.Id(), 1, 0, nil)
	var ce *position.CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected CapacityError, got %v", err)
	}
	if ce.Capacity != 2 {
		t.Fatalf("Capacity expected=2, got=%d", ce.Capacity)
	}
}

func TestUpdateQuantityBound(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	template := seedTemplate(t, l, db, "Oak Log", 5, []string{"resource"})

	m, err := item.Create(l, db, span, testProducer(&messages))(1, 10)(template.Id(), 2, 0, nil)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}

	_, err = item.UpdateQuantity(l, db, span, testProducer(&messages))(m.UniqueId(), 6)
	var sse *item.StackSizeError
	if !errors.As(err, &sse) {
		t.Fatalf("Expected StackSizeError, got %v", err)
	}

	um, err := item.UpdateQuantity(l, db, span, testProducer(&messages))(m.UniqueId(), 4)
	if err != nil {
		t.Fatalf("Failed to update quantity: %v", err)
	}
	if um.Quantity() != 4 {
		t.Fatalf("Quantity expected=4, got=%d", um.Quantity())
	}

	rm, err := item.GetByUniqueId(db)(m.UniqueId())
	if err != nil {
		t.Fatalf("Failed to retrieve item: %v", err)
	}
	if rm.Quantity() != 4 {
		t.Fatalf("Persisted quantity expected=4, got=%d", rm.Quantity())
	}
}

func TestDetachAndAttach(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	template := seedTemplate(t, l, db, "Iron Helm", 1, []string{"head"})

	m, err := item.Create(l, db, span, testProducer(&messages))(1, 4)(template.Id(), 1, 0, nil)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}

	err = item.Detach(db)(m.UniqueId())
	if err != nil {
		t.Fatalf("Failed to detach item: %v", err)
	}
	dm, err := item.GetByUniqueId(db)(m.UniqueId())
	if err != nil {
		t.Fatalf("Failed to retrieve item: %v", err)
	}
	if dm.Stored() {
		t.Fatalf("Detached item should not reference an inventory.")
	}

	am, err := item.Attach(db)(m.UniqueId(), 1, 4)
	if err != nil {
		t.Fatalf("Failed to attach item: %v", err)
	}
	if !am.Stored() || am.InventoryId() != 1 {
		t.Fatalf("Attached item should reference inventory 1.")
	}
	if am.Position() != 1 {
		t.Fatalf("Position expected=1, got=%d", am.Position())
	}
}

type characterRow struct {
	ID             uint32 `gorm:"primaryKey;autoIncrement"`
	AccountId      uint32
	MaxInventories uint32
}

func (characterRow) TableName() string {
	return "characters"
}

func TestOwnerAccountId(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	for _, migrator := range []func(db *gorm.DB) error{inventory.Migration, equipment.Migration} {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	if err := db.AutoMigrate(&characterRow{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	row := &characterRow{AccountId: 77, MaxInventories: 5}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to seed character: %v", err)
	}
	inv, err := inventory.CreateDefault(db)(row.ID)
	if err != nil {
		t.Fatalf("Failed to create inventory: %v", err)
	}

	template := seedTemplate(t, l, db, "Oak Log", 5, []string{"resource"})
	m, err := item.Create(l, db, span, testProducer(&messages))(inv.Id(), 10)(template.Id(), 1, 0, nil)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}

	owner, err := item.OwnerAccountId(db)(m.UniqueId())
	if err != nil {
		t.Fatalf("Failed to resolve owner: %v", err)
	}
	if owner != 77 {
		t.Fatalf("Owner expected=%d, got=%d", 77, owner)
	}

	_, err = item.OwnerAccountId(db)(uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Unknown items should have no owner, got %v", err)
	}
}

func TestDeleteByUniqueId(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	var messages = make([]kafka.Message, 0)

	template := seedTemplate(t, l, db, "Oak Log", 5, []string{"resource"})
	m, err := item.Create(l, db, span, testProducer(&messages))(1, 10)(template.Id(), 1, 0, nil)
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}

	err = item.DeleteByUniqueId(db)(m.UniqueId())
	if err != nil {
		t.Fatalf("Failed to delete item: %v", err)
	}
	_, err = item.GetByUniqueId(db)(m.UniqueId())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Deleted item should be gone, got %v", err)
	}
}
