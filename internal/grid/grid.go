// Package grid implements the warehouse's raw occupancy truth: a dense
// three-dimensional array of zone slots. It is the only component that
// physically stores items; secondary indexes (package index) store
// locations only.
package grid

import (
	"errors"
	"fmt"

	"github.com/gravitas-015/warehouse/internal/item"
	"github.com/gravitas-015/warehouse/internal/location"
)

// State is a zone slot's occupancy state.
type State int

const (
	// Empty holds nothing.
	Empty State = iota
	// Anchor holds the lowest-indexed zone of an item, single- or
	// multi-zone.
	Anchor
	// Tail is a non-anchor zone covered by an Oversized item; it
	// references its anchor location and holds no item value.
	Tail
)

// ErrInvalidLocation is returned when a location falls outside the
// grid's dimensions.
var ErrInvalidLocation = errors.New("grid: location out of range")

// Slot is the value stored at one (row, shelf, zone) coordinate.
type Slot struct {
	State  State
	Item   item.Item        // valid only when State == Anchor
	Anchor location.Location // valid only when State == Tail
}

// Grid is a dense R×S×Z array of Slot, dimensioned once at
// construction.
type Grid struct {
	dims  location.Dims
	slots [][][]Slot
}

// New allocates an empty grid with the given dimensions.
func New(rows, shelves, zones int) *Grid {
	slots := make([][][]Slot, rows)
	for r := range slots {
		slots[r] = make([][]Slot, shelves)
		for s := range slots[r] {
			slots[r][s] = make([]Slot, zones)
		}
	}
	return &Grid{dims: location.Dims{Rows: rows, Shelves: shelves, Zones: zones}, slots: slots}
}

// Dims returns the grid's dimensions.
func (g *Grid) Dims() location.Dims { return g.dims }

// Get reads the slot at loc.
func (g *Grid) Get(loc location.Location) (Slot, error) {
	if !g.dims.InBounds(loc) {
		return Slot{}, ErrInvalidLocation
	}
	return g.slots[loc.Row][loc.Shelf][loc.Zone], nil
}

// CanClaim reports whether a run of span zones starting at anchor
// (all on the same shelf) is entirely Empty and within bounds. It
// performs no mutation.
func (g *Grid) CanClaim(anchor location.Location, span int) bool {
	if span < 1 {
		return false
	}
	if !g.dims.InBounds(anchor) {
		return false
	}
	if anchor.Zone+span > g.dims.Zones {
		return false
	}
	for z := anchor.Zone; z < anchor.Zone+span; z++ {
		if g.slots[anchor.Row][anchor.Shelf][z].State != Empty {
			return false
		}
	}
	return true
}

// ClaimRun atomically reserves span contiguous zones on one shelf
// starting at anchor for it, writing an Anchor slot at anchor and Tail
// slots (pointing back to anchor) at the remaining span-1 zones. It
// fails without mutating the grid if any covered zone is not Empty or
// the run would cross the shelf boundary.
func (g *Grid) ClaimRun(anchor location.Location, span int, it item.Item) error {
	if !g.CanClaim(anchor, span) {
		return fmt.Errorf("grid: cannot claim %d zone(s) at %s: %w", span, anchor, ErrConstraintViolated)
	}
	g.slots[anchor.Row][anchor.Shelf][anchor.Zone] = Slot{State: Anchor, Item: it}
	for z := anchor.Zone + 1; z < anchor.Zone+span; z++ {
		g.slots[anchor.Row][anchor.Shelf][z] = Slot{State: Tail, Anchor: anchor}
	}
	return nil
}

// ErrConstraintViolated signals a claim that would violate placement
// constraints (out of bounds, span crosses a shelf, or a covered zone
// is not Empty).
var ErrConstraintViolated = errors.New("grid: constraint violated")

// ErrNotAnchor is returned when Release targets a Tail slot.
var ErrNotAnchor = errors.New("grid: location is not an anchor")

// ErrEmpty is returned when Release targets an Empty slot.
var ErrEmpty = errors.New("grid: location is empty")

// SlotRecord is a single non-Empty slot, used for snapshotting grid
// state in tests without exposing the internal dense array.
type SlotRecord struct {
	Loc    location.Location
	State  State
	Item   item.Item
	Anchor location.Location
}

// Snapshot returns every non-Empty slot in canonical order.
func (g *Grid) Snapshot() []SlotRecord {
	var out []SlotRecord
	g.dims.Walk(location.Zero, func(loc location.Location) bool {
		slot := g.slots[loc.Row][loc.Shelf][loc.Zone]
		if slot.State != Empty {
			out = append(out, SlotRecord{Loc: loc, State: slot.State, Item: slot.Item, Anchor: slot.Anchor})
		}
		return true
	})
	return out
}

// Release atomically clears the anchor at loc and every Tail zone it
// covers, returning the removed item and the span freed. loc must
// reference an Anchor slot.
func (g *Grid) Release(loc location.Location) (item.Item, int, error) {
	slot, err := g.Get(loc)
	if err != nil {
		return item.Item{}, 0, err
	}
	switch slot.State {
	case Tail:
		return item.Item{}, 0, ErrNotAnchor
	case Empty:
		return item.Item{}, 0, ErrEmpty
	}
	span := slot.Item.Footprint()
	for z := loc.Zone; z < loc.Zone+span; z++ {
		g.slots[loc.Row][loc.Shelf][z] = Slot{}
	}
	return slot.Item, span, nil
}
