package item

import (
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func addedStatusEventProvider(m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.InventoryId()))
	value := &statusEvent{
		InventoryId:  m.InventoryId(),
		UniqueId:     m.UniqueId().String(),
		StaticItemId: m.StaticItemId(),
		Quantity:     m.Quantity(),
		Position:     m.Position(),
		Type:         StatusEventTypeAdded,
	}
	return producer.SingleMessageProvider(key, value)
}

func updatedStatusEventProvider(m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.InventoryId()))
	value := &statusEvent{
		InventoryId:  m.InventoryId(),
		UniqueId:     m.UniqueId().String(),
		StaticItemId: m.StaticItemId(),
		Quantity:     m.Quantity(),
		Position:     m.Position(),
		Type:         StatusEventTypeUpdated,
	}
	return producer.SingleMessageProvider(key, value)
}
