package equipment_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"craftscape-character/equipment"
	"craftscape-character/equipment/slot"
	"craftscape-character/inventory"
	"craftscape-character/inventory/item"
	"craftscape-character/kafka/producer"
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

type characterRow struct {
	ID             uint32 `gorm:"primaryKey;autoIncrement"`
	AccountId      uint32
	MaxInventories uint32
}

func (characterRow) TableName() string {
	return "characters"
}

func testDatabase(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	var migrators []func(db *gorm.DB) error
	migrators = append(migrators, static.Migration, inventory.Migration, item.Migration, equipment.Migration)

	for _, migrator := range migrators {
		if err := migrator(db); err != nil {
			t.Fatalf("Failed to migrate database: %v", err)
		}
	}
	if err := db.AutoMigrate(&characterRow{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
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

type fixture struct {
	characterId uint32
	equipmentId uint32
	inventoryId uint32
}

func setup(t *testing.T, l logrus.FieldLogger, db *gorm.DB) fixture {
	row := &characterRow{AccountId: 1000, MaxInventories: 5}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("Failed to seed character: %v", err)
	}
	eq, err := equipment.CreateForCharacter(db)(row.ID)
	if err != nil {
		t.Fatalf("Failed to create equipment: %v", err)
	}
	inv, err := inventory.CreateDefault(db)(row.ID)
	if err != nil {
		t.Fatalf("Failed to create inventory: %v", err)
	}
	return fixture{characterId: row.ID, equipmentId: eq.Id(), inventoryId: inv.Id()}
}

func seedItem(t *testing.T, l logrus.FieldLogger, db *gorm.DB, inventoryId uint32, name string, types []string) item.Model {
	span := testSpan()
	var messages = make([]kafka.Message, 0)
	template, err := static.Create(l, db)(static.NewModel(name, name, "", 1, 10.0, static.RarityCommon, 1, 100, false, true, 5, 0, 0, 0, types))
	if err != nil {
		t.Fatalf("Failed to seed template: %v", err)
	}
	im, err := item.Create(l, db, span, testProducer(&messages))(inventoryId, 10)(template.Id(), 1, 0, nil)
	if err != nil {
		t.Fatalf("Failed to seed item: %v", err)
	}
	return im
}

func assign(slotType string, im item.Model) equipment.Assignment {
	uniqueId := im.UniqueId()
	return equipment.Assignment{Slot: slotType, ItemUniqueId: &uniqueId}
}

func TestEquipCompatibleItem(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	sword := seedItem(t, l, db, f.inventoryId, "Iron Sword", []string{"mainHand"})

	m, err := equipment.UpdateSlots(l, db, span, testProducer(&messages))(f.equipmentId, []equipment.Assignment{assign(slot.TypeMainHand, sword)})
	if err != nil {
		t.Fatalf("Failed to update slots: %v", err)
	}

	itemId, ok := m.ItemIdIn(slot.TypeMainHand)
	if !ok || itemId != sword.Id() {
		t.Fatalf("Main hand should hold the sword.")
	}

	equipped, err := item.GetByUniqueId(db)(sword.UniqueId())
	if err != nil {
		t.Fatalf("Failed to retrieve item: %v", err)
	}
	if equipped.Stored() {
		t.Fatalf("Equipped item should leave its inventory.")
	}
	if len(messages) != 1 {
		t.Fatalf("A single changed event should be emitted.")
	}
}

func TestEquipIncompatibleItem(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	log := seedItem(t, l, db, f.inventoryId, "Oak Log", []string{"resource"})

	_, err := equipment.UpdateSlots(l, db, span, testProducer(&messages))(f.equipmentId, []equipment.Assignment{assign(slot.TypeHead, log)})
	var ite *equipment.IncompatibleTypeError
	if !errors.As(err, &ite) {
		t.Fatalf("Expected IncompatibleTypeError, got %v", err)
	}
	if ite.Slot != slot.TypeHead || ite.ItemName != "Oak Log" {
		t.Fatalf("Error should name the slot and the item, got %v", ite)
	}
	if len(messages) != 0 {
		t.Fatalf("No event should be emitted on rejection.")
	}
}

func TestUpdateIsAllOrNothing(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	helm := seedItem(t, l, db, f.inventoryId, "Iron Helm", []string{"head"})
	log := seedItem(t, l, db, f.inventoryId, "Oak Log", []string{"resource"})

	_, err := equipment.UpdateSlots(l, db, span, testProducer(&messages))(f.equipmentId, []equipment.Assignment{
		assign(slot.TypeHead, helm),
		assign(slot.TypeMainHand, log),
	})
	var ite *equipment.IncompatibleTypeError
	if !errors.As(err, &ite) {
		t.Fatalf("Expected IncompatibleTypeError, got %v", err)
	}

	m, err := equipment.GetById(db)(f.equipmentId)
	if err != nil {
		t.Fatalf("Failed to retrieve equipment: %v", err)
	}
	if len(m.Slots()) != 0 {
		t.Fatalf("No slot should be assigned when any assignment fails.")
	}

	stored, err := item.GetByUniqueId(db)(helm.UniqueId())
	if err != nil {
		t.Fatalf("Failed to retrieve item: %v", err)
	}
	if !stored.Stored() {
		t.Fatalf("The valid item should remain in its inventory.")
	}
	if len(messages) != 0 {
		t.Fatalf("No event should be emitted on rejection.")
	}
}

func TestClearSlotStowsItem(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	helm := seedItem(t, l, db, f.inventoryId, "Iron Helm", []string{"head"})

	kp := testProducer(&messages)
	_, err := equipment.UpdateSlots(l, db, span, kp)(f.equipmentId, []equipment.Assignment{assign(slot.TypeHead, helm)})
	if err != nil {
		t.Fatalf("Failed to update slots: %v", err)
	}

	m, err := equipment.UpdateSlots(l, db, span, kp)(f.equipmentId, []equipment.Assignment{{Slot: slot.TypeHead}})
	if err != nil {
		t.Fatalf("Failed to clear slot: %v", err)
	}
	if _, ok := m.ItemIdIn(slot.TypeHead); ok {
		t.Fatalf("Head slot should be empty after clearing.")
	}

	stowed, err := item.GetByUniqueId(db)(helm.UniqueId())
	if err != nil {
		t.Fatalf("Failed to retrieve item: %v", err)
	}
	if !stowed.Stored() || stowed.InventoryId() != f.inventoryId {
		t.Fatalf("Cleared item should return to the character's inventory.")
	}
}

func TestUnmentionedSlotsUntouched(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	helm := seedItem(t, l, db, f.inventoryId, "Iron Helm", []string{"head"})
	sword := seedItem(t, l, db, f.inventoryId, "Iron Sword", []string{"mainHand"})

	kp := testProducer(&messages)
	_, err := equipment.UpdateSlots(l, db, span, kp)(f.equipmentId, []equipment.Assignment{assign(slot.TypeHead, helm)})
	if err != nil {
		t.Fatalf("Failed to update slots: %v", err)
	}

	m, err := equipment.UpdateSlots(l, db, span, kp)(f.equipmentId, []equipment.Assignment{assign(slot.TypeMainHand, sword)})
	if err != nil {
		t.Fatalf("Failed to update slots: %v", err)
	}

	itemId, ok := m.ItemIdIn(slot.TypeHead)
	if !ok || itemId != helm.Id() {
		t.Fatalf("Head slot should be untouched by the second update.")
	}
}

func TestDanglingItemReference(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	missing := uuid.New()

	_, err := equipment.UpdateSlots(l, db, span, testProducer(&messages))(f.equipmentId, []equipment.Assignment{{Slot: slot.TypeHead, ItemUniqueId: &missing}})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Expected record not found, got %v", err)
	}
}

func TestReplaceStowsPreviousItem(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	span := testSpan()
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	first := seedItem(t, l, db, f.inventoryId, "Iron Helm", []string{"head"})
	second := seedItem(t, l, db, f.inventoryId, "Steel Helm", []string{"head"})

	kp := testProducer(&messages)
	_, err := equipment.UpdateSlots(l, db, span, kp)(f.equipmentId, []equipment.Assignment{assign(slot.TypeHead, first)})
	if err != nil {
		t.Fatalf("Failed to update slots: %v", err)
	}

	m, err := equipment.UpdateSlots(l, db, span, kp)(f.equipmentId, []equipment.Assignment{assign(slot.TypeHead, second)})
	if err != nil {
		t.Fatalf("Failed to update slots: %v", err)
	}

	itemId, ok := m.ItemIdIn(slot.TypeHead)
	if !ok || itemId != second.Id() {
		t.Fatalf("Head slot should hold the replacement.")
	}

	displaced, err := item.GetByUniqueId(db)(first.UniqueId())
	if err != nil {
		t.Fatalf("Failed to retrieve item: %v", err)
	}
	if !displaced.Stored() {
		t.Fatalf("Displaced item should return to an inventory.")
	}
}

func TestConcurrentEquipSameSlot(t *testing.T) {
	l := testLogger()
	db := testDatabase(t)
	slot.ResetTable()
	var messages = make([]kafka.Message, 0)

	f := setup(t, l, db)
	first := seedItem(t, l, db, f.inventoryId, "Iron Helm", []string{"head"})
	second := seedItem(t, l, db, f.inventoryId, "Steel Helm", []string{"head"})

	kp := testProducer(&messages)
	lock := equipment.GetLockRegistry().GetById(f.characterId)
	lock.Lock()

	var wg sync.WaitGroup
	for _, im := range []item.Model{first, second} {
		wg.Add(1)
		go func(im item.Model) {
			defer wg.Done()
			_, err := equipment.UpdateSlots(l, db, testSpan(), kp)(f.equipmentId, []equipment.Assignment{assign(slot.TypeHead, im)})
			if err != nil {
				t.Errorf("Failed to update slots: %v", err)
			}
		}(im)
	}
	time.Sleep(100 * time.Millisecond)
	lock.Unlock()
	wg.Wait()

	m, err := equipment.GetById(db)(f.equipmentId)
	if err != nil {
		t.Fatalf("Failed to retrieve equipment: %v", err)
	}
	itemId, ok := m.ItemIdIn(slot.TypeHead)
	if !ok {
		t.Fatalf("Head slot should hold one of the helms.")
	}
	loser := first
	if itemId == first.Id() {
		loser = second
	} else if itemId != second.Id() {
		t.Fatalf("Head slot holds an unexpected item [%d].", itemId)
	}

	displaced, err := item.GetByUniqueId(db)(loser.UniqueId())
	if err != nil {
		t.Fatalf("Failed to retrieve item: %v", err)
	}
	if !displaced.Stored() {
		t.Fatalf("The losing helm should return to an inventory, not dangle.")
	}
}
