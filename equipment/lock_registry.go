package equipment

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

// GetById serializes slot updates per character.
func (r *lockRegistry) GetById(characterId uint32) *sync.RWMutex {
	val, _ := r.locks.LoadOrStore(characterId, &sync.RWMutex{})
	return val.(*sync.RWMutex)
}
