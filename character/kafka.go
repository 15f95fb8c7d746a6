package character

const (
	EnvEventTopicCharacterStatus = "EVENT_TOPIC_CHARACTER_STATUS"

	StatusEventTypeCreated = "CREATED"
)

type statusEvent struct {
	CharacterId uint32 `json:"characterId"`
	AccountId   uint32 `json:"accountId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
}
