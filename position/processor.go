package position

import (
	"fmt"
	"sort"
)

// Holder is anything occupying a numeric position among siblings: an
// inventory within a character, or an item within an inventory.
type Holder interface {
	Position() int16
}

// CapacityError reports that every position in [1, Capacity] is held.
type CapacityError struct {
	Capacity uint32
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("all [%d] positions are held", e.Capacity)
}

// MinFree returns the lowest unheld position >= 1. Holders at position <= 0
// do not count as occupying anything, and duplicate positions count once.
func MinFree(holders []Holder) int16 {
	sorted := make([]Holder, len(holders))
	copy(sorted, holders)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position() < sorted[j].Position()
	})

	pos := int16(1)
	for _, h := range sorted {
		if h.Position() < pos {
			continue
		}
		if h.Position() > pos {
			break
		}
		pos += 1
	}
	return pos
}

// Free lists the unheld positions in [1, capacity] in ascending order.
func Free(holders []Holder, capacity uint32) []int16 {
	held := make(map[int16]bool, len(holders))
	for _, h := range holders {
		held[h.Position()] = true
	}
	free := make([]int16, 0, capacity)
	for pos := int16(1); pos <= int16(capacity); pos++ {
		if !held[pos] {
			free = append(free, pos)
		}
	}
	return free
}

func held(holders []Holder, pos int16) bool {
	for _, h := range holders {
		if h.Position() == pos {
			return true
		}
	}
	return false
}

// Allocate decides the position for a new or re-saved holder. A requested
// position already in [1, capacity] and unheld passes through unchanged,
// which also makes re-saving a holder that kept its own valid position a
// no-op. Anything else falls back to the lowest free position. When no
// position is free the allocation fails with a CapacityError.
func Allocate(holders []Holder, capacity uint32, requested int16) (int16, error) {
	if requested >= 1 && requested <= int16(capacity) && !held(holders, requested) {
		return requested, nil
	}
	free := Free(holders, capacity)
	if len(free) == 0 {
		return 0, &CapacityError{Capacity: capacity}
	}
	return free[0], nil
}
