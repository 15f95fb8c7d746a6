package item

const (
	EnvEventTopicItemStatus = "EVENT_TOPIC_GAME_ITEM_STATUS"

	StatusEventTypeAdded   = "ADDED"
	StatusEventTypeUpdated = "UPDATED"
)

type statusEvent struct {
	InventoryId  uint32 `json:"inventoryId"`
	UniqueId     string `json:"uniqueId"`
	StaticItemId uint32 `json:"staticItemId"`
	Quantity     uint32 `json:"quantity"`
	Position     int16  `json:"position"`
	Type         string `json:"type"`
}
