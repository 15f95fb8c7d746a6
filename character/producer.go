package character

import (
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func createdStatusEventProvider(m Model) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(m.Id()))
	value := &statusEvent{
		CharacterId: m.Id(),
		AccountId:   m.AccountId(),
		Name:        m.Name(),
		Type:        StatusEventTypeCreated,
	}
	return producer.SingleMessageProvider(key, value)
}
