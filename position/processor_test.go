package position

import (
	"errors"
	"testing"
)

type TestHolder struct {
	position int16
}

func (h TestHolder) Position() int16 {
	return h.position
}

func holders(positions ...int16) []Holder {
	hs := make([]Holder, 0)
	for _, p := range positions {
		hs = append(hs, TestHolder{position: p})
	}
	return hs
}

// TestMinFree1 tests MinFree with existing positions 0, 1, 4, 7, 8.
func TestMinFree1(t *testing.T) {
	result := MinFree(holders(0, 1, 4, 7, 8))
	if result != 2 {
		t.Fatalf("MinFree expected=%d, got=%d", 2, result)
	}
}

// TestMinFree2 tests MinFree with existing positions 1, 2, 4, 7, 8.
func TestMinFree2(t *testing.T) {
	result := MinFree(holders(1, 2, 4, 7, 8))
	if result != 3 {
		t.Fatalf("MinFree expected=%d, got=%d", 3, result)
	}
}

// TestMinFree3 tests MinFree with existing positions 1, 2, 3, 4, 5.
func TestMinFree3(t *testing.T) {
	result := MinFree(holders(1, 2, 3, 4, 5))
	if result != 6 {
		t.Fatalf("MinFree expected=%d, got=%d", 6, result)
	}
}

// TestMinFree4 tests MinFree with existing positions -7, 1, 2, 3.
func TestMinFree4(t *testing.T) {
	result := MinFree(holders(-7, 1, 2, 3))
	if result != 4 {
		t.Fatalf("MinFree expected=%d, got=%d", 4, result)
	}
}

func TestAllocateLowestFree(t *testing.T) {
	result, err := Allocate(holders(1, 2, 4), 5, 0)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if result != 3 {
		t.Fatalf("Allocate expected=%d, got=%d", 3, result)
	}
}

func TestAllocateRequestedFree(t *testing.T) {
	result, err := Allocate(holders(1, 2), 5, 4)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if result != 4 {
		t.Fatalf("Allocate expected=%d, got=%d", 4, result)
	}
}

func TestAllocateRequestedHeld(t *testing.T) {
	result, err := Allocate(holders(1, 2), 5, 2)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if result != 3 {
		t.Fatalf("Allocate expected=%d, got=%d", 3, result)
	}
}

func TestAllocateRequestedNegative(t *testing.T) {
	result, err := Allocate(holders(1), 5, -3)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if result != 2 {
		t.Fatalf("Allocate expected=%d, got=%d", 2, result)
	}
}

func TestAllocateRequestedBeyondCapacity(t *testing.T) {
	result, err := Allocate(holders(1), 5, 9)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if result != 2 {
		t.Fatalf("Allocate expected=%d, got=%d", 2, result)
	}
}

func TestAllocateFull(t *testing.T) {
	_, err := Allocate(holders(1, 2, 3, 4, 5), 5, 0)
	var ce *CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("Allocate expected capacity error, got %v", err)
	}
	if ce.Capacity != 5 {
		t.Fatalf("CapacityError capacity expected=%d, got=%d", 5, ce.Capacity)
	}
}

func TestAllocateLastPosition(t *testing.T) {
	result, err := Allocate(holders(1, 2, 3, 4), 5, 0)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	if result != 5 {
		t.Fatalf("Allocate expected=%d, got=%d", 5, result)
	}
}

// TestMinFreeDuplicates tests MinFree with duplicate positions 1, 1, 2.
func TestMinFreeDuplicates(t *testing.T) {
	result := MinFree(holders(1, 1, 2))
	if result != 3 {
		t.Fatalf("MinFree expected=%d, got=%d", 3, result)
	}
}
