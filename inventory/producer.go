package inventory

import (
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func createdStatusEventProvider(m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.CharacterId()))
	value := &statusEvent{
		CharacterId: m.CharacterId(),
		InventoryId: m.Id(),
		Position:    m.Position(),
		Size:        m.Size().Name(),
		Type:        StatusEventTypeCreated,
	}
	return producer.SingleMessageProvider(key, value)
}
