package inventory

import (
	"sync"
)

type lockRegistry struct {
	locks sync.Map
}

var lr *lockRegistry
var once sync.Once

func GetLockRegistry() *lockRegistry {
	once.Do(func() {
		lr = &lockRegistry{}
	})
	return lr
}

// GetById serializes position allocation per character so two saves cannot
// claim the same position.
func (r *lockRegistry) GetById(characterId uint32) *sync.RWMutex {
	val, _ := r.locks.LoadOrStore(characterId, &sync.RWMutex{})
	return val.(*sync.RWMutex)
}

// GetByInventory serializes item placement per inventory.
func (r *lockRegistry) GetByInventory(inventoryId uint32) *sync.RWMutex {
	val, _ := r.locks.LoadOrStore(inventoryKey(inventoryId), &sync.RWMutex{})
	return val.(*sync.RWMutex)
}

type inventoryLockKey uint32

func inventoryKey(inventoryId uint32) inventoryLockKey {
	return inventoryLockKey(inventoryId)
}
