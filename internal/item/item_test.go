package item

import "testing"

func TestNewRejectsNonPositiveQuantity(t *testing.T) {
	if _, err := New(1, "widget", 0, NewNormal()); err == nil {
		t.Fatal("expected error for zero quantity")
	}
	if _, err := New(1, "widget", -3, NewNormal()); err == nil {
		t.Fatal("expected error for negative quantity")
	}
}

func TestNewRejectsOversizedWithNoSpan(t *testing.T) {
	if _, err := New(1, "crate", 1, NewOversized(0)); err == nil {
		t.Fatal("expected error for oversized span 0")
	}
}

func TestNewAcceptsOversizedSpanOne(t *testing.T) {
	it, err := New(1, "crate", 1, NewOversized(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Footprint() != 1 {
		t.Fatalf("Footprint() = %d, want 1", it.Footprint())
	}
}

func TestFootprint(t *testing.T) {
	normal, _ := New(1, "a", 1, NewNormal())
	if normal.Footprint() != 1 {
		t.Errorf("Normal footprint = %d, want 1", normal.Footprint())
	}

	fragile, _ := New(1, "b", 1, NewFragile(10, 2))
	if fragile.Footprint() != 1 {
		t.Errorf("Fragile footprint = %d, want 1", fragile.Footprint())
	}

	oversized, _ := New(1, "c", 1, NewOversized(3))
	if oversized.Footprint() != 3 {
		t.Errorf("Oversized footprint = %d, want 3", oversized.Footprint())
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{Normal: "Normal", Fragile: "Fragile", Oversized: "Oversized"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
