package account

import "testing"

func TestOwns(t *testing.T) {
	owner := Model{Id: 1}
	other := Model{Id: 2}
	staff := Model{Id: 3, Staff: true}

	if !Owns(owner, 1) {
		t.Fatalf("Owners should reach their own entities.")
	}
	if Owns(other, 1) {
		t.Fatalf("Other accounts should be refused.")
	}
	if !Owns(staff, 1) {
		t.Fatalf("Staff should reach any entity.")
	}
}

func TestAllows(t *testing.T) {
	owner := Model{Id: 1}
	other := Model{Id: 2}
	staff := Model{Id: 3, Staff: true}

	if !Allows(owner, 1, false) {
		t.Fatalf("Owners should list their own entities.")
	}
	if Allows(other, 1, false) || Allows(other, 1, true) {
		t.Fatalf("Other accounts should be refused regardless of find_all.")
	}
	if Allows(staff, 1, false) {
		t.Fatalf("Staff must request find_all to widen a list.")
	}
	if !Allows(staff, 1, true) {
		t.Fatalf("Staff with find_all should list any account.")
	}
}
