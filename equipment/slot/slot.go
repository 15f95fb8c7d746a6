package slot

import (
	"errors"
	"strings"
)

const (
	TypeRing      = "ring"
	TypeNeck      = "neck"
	TypeHead      = "head"
	TypeShoulders = "shoulders"
	TypeChest     = "chest"
	TypeMainHand  = "main_hand"
	TypeBack      = "back"
	TypeHands     = "hands"
	TypeFeet      = "feet"
	TypeLegs      = "legs"
)

var types = []string{TypeRing, TypeNeck, TypeHead, TypeShoulders, TypeChest, TypeMainHand, TypeBack, TypeHands, TypeFeet, TypeLegs}

func Types() []string {
	return types
}

func IsValid(slotType string) bool {
	for _, t := range types {
		if t == slotType {
			return true
		}
	}
	return false
}

func FromType(slotType string) (string, error) {
	t := strings.ToLower(slotType)
	if !IsValid(t) {
		return "", errors.New("unable to map type to equipment slot")
	}
	return t, nil
}
