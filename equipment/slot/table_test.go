package slot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

func TestDefaultTable(t *testing.T) {
	ResetTable()
	for _, st := range Types() {
		tag, err := RequiredTag(st)
		if err != nil {
			t.Fatalf("RequiredTag(%s) failed: %v", st, err)
		}
		if st == TypeMainHand {
			if tag != "mainHand" {
				t.Fatalf("RequiredTag(main_hand) expected=mainHand, got=%s", tag)
			}
		} else if tag != st {
			t.Fatalf("RequiredTag(%s) expected=%s, got=%s", st, st, tag)
		}
	}
}

func TestTableFileOverride(t *testing.T) {
	l, _ := test.NewNullLogger()

	path := filepath.Join(t.TempDir(), "slots.yaml")
	err := os.WriteFile(path, []byte("slots:\n  main_hand: weapon\n"), 0644)
	if err != nil {
		t.Fatalf("Failed to write table file: %v", err)
	}
	t.Setenv(EnvTableFile, path)
	defer ResetTable()

	err = LoadTable(l)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	tag, err := RequiredTag(TypeMainHand)
	if err != nil {
		t.Fatalf("RequiredTag failed: %v", err)
	}
	if tag != "weapon" {
		t.Fatalf("RequiredTag(main_hand) expected=weapon, got=%s", tag)
	}

	tag, err = RequiredTag(TypeHead)
	if err != nil {
		t.Fatalf("RequiredTag failed: %v", err)
	}
	if tag != "head" {
		t.Fatalf("RequiredTag(head) expected=head, got=%s", tag)
	}
}

func TestTableFileUnknownSlot(t *testing.T) {
	l, _ := test.NewNullLogger()

	path := filepath.Join(t.TempDir(), "slots.yaml")
	err := os.WriteFile(path, []byte("slots:\n  offhand: shield\n"), 0644)
	if err != nil {
		t.Fatalf("Failed to write table file: %v", err)
	}
	t.Setenv(EnvTableFile, path)
	defer ResetTable()

	err = LoadTable(l)
	if err == nil {
		t.Fatalf("LoadTable should reject unknown slot names.")
	}
}
