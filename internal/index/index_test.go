package index

import (
	"testing"

	"github.com/gravitas-015/warehouse/internal/location"
)

func TestMultiAddCountLocate(t *testing.T) {
	m := NewMulti[string]()
	locA := location.Location{Row: 0, Shelf: 0, Zone: 0}
	locB := location.Location{Row: 0, Shelf: 0, Zone: 1}

	m.Add("widget", locA)
	m.Add("widget", locB)

	present, count := m.Count("widget")
	if !present || count != 2 {
		t.Fatalf("Count(widget) = (%v, %d), want (true, 2)", present, count)
	}

	if present, count := m.Count("missing"); present || count != 0 {
		t.Fatalf("Count(missing) = (%v, %d), want (false, 0)", present, count)
	}

	locs := m.Locate("widget")
	if len(locs) != 2 {
		t.Fatalf("Locate(widget) returned %d locations, want 2", len(locs))
	}
}

func TestMultiRemoveDeletesEmptyKey(t *testing.T) {
	m := NewMulti[string]()
	loc := location.Location{Row: 0, Shelf: 0, Zone: 0}
	m.Add("widget", loc)
	m.Remove("widget", loc)

	if present, _ := m.Count("widget"); present {
		t.Fatal("expected widget key removed once its last location is gone")
	}
	if locs := m.Locate("widget"); locs != nil {
		t.Fatalf("Locate(widget) after removal = %v, want nil", locs)
	}
}

func TestMultiRemoveIsNoOpForMissingPair(t *testing.T) {
	m := NewMulti[string]()
	loc := location.Location{Row: 0, Shelf: 0, Zone: 0}
	m.Remove("widget", loc) // must not panic
	if present, _ := m.Count("widget"); present {
		t.Fatal("expected no widget key")
	}
}

func TestMultiLocateReturnsCopy(t *testing.T) {
	m := NewMulti[string]()
	loc := location.Location{Row: 0, Shelf: 0, Zone: 0}
	m.Add("widget", loc)

	locs := m.Locate("widget")
	locs[0] = location.Location{Row: 9, Shelf: 9, Zone: 9}

	fresh := m.Locate("widget")
	if fresh[0] != loc {
		t.Fatalf("mutating the returned slice corrupted the index: got %s", fresh[0])
	}
}

func TestMultiSortedKeys(t *testing.T) {
	m := NewMulti[string]()
	m.Add("zebra", location.Zero)
	m.Add("apple", location.Zero)
	m.Add("mango", location.Zero)

	keys := m.SortedKeys(func(a, b string) bool { return a < b })
	want := []string{"apple", "mango", "zebra"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("SortedKeys()[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestExpiryCountUpTo(t *testing.T) {
	e := NewExpiry()
	locA := location.Location{Row: 0, Shelf: 0, Zone: 0}
	locB := location.Location{Row: 0, Shelf: 0, Zone: 1}
	locC := location.Location{Row: 0, Shelf: 0, Zone: 2}

	e.Add(5, locA)
	e.Add(5, locB)
	e.Add(10, locC)

	if got := e.CountUpTo(4); got != 0 {
		t.Fatalf("CountUpTo(4) = %d, want 0", got)
	}
	if got := e.CountUpTo(5); got != 2 {
		t.Fatalf("CountUpTo(5) = %d, want 2", got)
	}
	if got := e.CountUpTo(9); got != 2 {
		t.Fatalf("CountUpTo(9) = %d, want 2", got)
	}
	if got := e.CountUpTo(10); got != 3 {
		t.Fatalf("CountUpTo(10) = %d, want 3", got)
	}
}

func TestExpiryRemove(t *testing.T) {
	e := NewExpiry()
	loc := location.Location{Row: 0, Shelf: 0, Zone: 0}
	e.Add(5, loc)
	e.Remove(5, loc)

	if got := e.CountUpTo(100); got != 0 {
		t.Fatalf("CountUpTo(100) after removal = %d, want 0", got)
	}
	if e.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", e.Len())
	}
}

func TestExpiryLen(t *testing.T) {
	e := NewExpiry()
	e.Add(1, location.Location{Row: 0, Shelf: 0, Zone: 0})
	e.Add(2, location.Location{Row: 0, Shelf: 0, Zone: 1})
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
}
