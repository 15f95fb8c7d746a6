package inventory

const (
	EnvEventTopicInventoryStatus = "EVENT_TOPIC_INVENTORY_STATUS"

	StatusEventTypeCreated = "CREATED"
)

type statusEvent struct {
	CharacterId uint32 `json:"characterId"`
	InventoryId uint32 `json:"inventoryId"`
	Position    int16  `json:"position"`
	Size        string `json:"size"`
	Type        string `json:"type"`
}
