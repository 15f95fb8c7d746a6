package equipment

const (
	EnvEventTopicEquipmentChanged = "EVENT_TOPIC_EQUIPMENT_CHANGED"

	ChangedTypeEquipped = "EQUIPPED"
	ChangedTypeCleared  = "CLEARED"
)

type changedEvent struct {
	CharacterId uint32  `json:"characterId"`
	Slot        string  `json:"slot"`
	ItemId      *uint32 `json:"itemId"`
	Type        string  `json:"type"`
}
