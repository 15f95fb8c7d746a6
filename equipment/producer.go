package equipment

import (
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func equippedEventProvider(characterId uint32, slotType string, itemId uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &changedEvent{
		CharacterId: characterId,
		Slot:        slotType,
		ItemId:      &itemId,
		Type:        ChangedTypeEquipped,
	}
	return producer.SingleMessageProvider(key, value)
}

func clearedEventProvider(characterId uint32, slotType string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &changedEvent{
		CharacterId: characterId,
		Slot:        slotType,
		Type:        ChangedTypeCleared,
	}
	return producer.SingleMessageProvider(key, value)
}
