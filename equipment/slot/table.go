package slot

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const EnvTableFile = "EQUIPMENT_SLOT_FILE"

// The tag a catalog item must carry to occupy a slot. Most tags equal the
// slot name; main_hand historically carries the camel-cased catalog tag.
// The table is data, not convention: deployments review it against the
// current catalog and override it via EQUIPMENT_SLOT_FILE.
var defaultRequiredTags = map[string]string{
	TypeRing:      "ring",
	TypeNeck:      "neck",
	TypeHead:      "head",
	TypeShoulders: "shoulders",
	TypeChest:     "chest",
	TypeMainHand:  "mainHand",
	TypeBack:      "back",
	TypeHands:     "hands",
	TypeFeet:      "feet",
	TypeLegs:      "legs",
}

type tableFile struct {
	Slots map[string]string `yaml:"slots"`
}

type registry struct {
	mu   sync.RWMutex
	tags map[string]string
}

var reg = &registry{tags: defaultRequiredTags}

// LoadTable applies the override file named by EQUIPMENT_SLOT_FILE on top of
// the built-in table. Unknown slot names in the file are rejected.
func LoadTable(l logrus.FieldLogger) error {
	path, ok := os.LookupEnv(EnvTableFile)
	if !ok {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var tf tableFile
	err = yaml.Unmarshal(data, &tf)
	if err != nil {
		return err
	}

	tags := make(map[string]string, len(defaultRequiredTags))
	for st, tag := range defaultRequiredTags {
		tags[st] = tag
	}
	for st, tag := range tf.Slots {
		if !IsValid(st) {
			return fmt.Errorf("slot table file names unknown slot [%s]", st)
		}
		l.Debugf("Slot [%s] requires tag [%s] per table file.", st, tag)
		tags[st] = tag
	}

	reg.mu.Lock()
	reg.tags = tags
	reg.mu.Unlock()
	return nil
}

// ResetTable restores the built-in table. Test hook.
func ResetTable() {
	reg.mu.Lock()
	reg.tags = defaultRequiredTags
	reg.mu.Unlock()
}

func RequiredTag(slotType string) (string, error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	tag, ok := reg.tags[slotType]
	if !ok {
		return "", fmt.Errorf("no required tag for slot [%s]", slotType)
	}
	return tag, nil
}
