package tac

import "testing"

func TestTempIDs(t *testing.T) {
	ids := NewIDs()
	for want := uint64(0); want < 5; want++ {
		if got := ids.NextTemp(); got != want {
			t.Fatalf("NextTemp() = %d, want %d", got, want)
		}
	}
	if ids.Temps() != 5 {
		t.Fatalf("expected 5 temps handed out, got %d", ids.Temps())
	}
}

func TestLabelIDs(t *testing.T) {
	var ids IDs
	for want := uint64(1); want <= 5; want++ {
		if got := ids.NextLabel(); got != want {
			t.Fatalf("NextLabel() = %d, want %d", got, want)
		}
	}
}

func TestAllocatorsAreIndependent(t *testing.T) {
	ids := NewIDs()
	ids.NextLabel()
	ids.NextLabel()
	if got := ids.NextTemp(); got != 0 {
		t.Fatalf("labels must not advance temps, got %d", got)
	}
	if got := ids.NextLabel(); got != 3 {
		t.Fatalf("temps must not advance labels, got %d", got)
	}
}
