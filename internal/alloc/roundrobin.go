package alloc

import (
	"github.com/gravitas-015/warehouse/internal/grid"
	"github.com/gravitas-015/warehouse/internal/item"
	"github.com/gravitas-015/warehouse/internal/location"
)

// RoundRobin scans forward from a persistent cursor, wrapping once
// through the entire grid, and advances the cursor past whatever span
// it actually placed. The cursor survives removals — freed zones
// behind it are only revisited on the next full wrap (spec.md §4.E).
type RoundRobin struct {
	cursor location.Location
	dims   location.Dims
}

// NewRoundRobin constructs a RoundRobin allocator over a warehouse of
// the given dimensions, with its cursor at the base. dims is fixed for
// the allocator's lifetime (a manager's grid is never resized), so it
// is captured here rather than on every Locate call, keeping Locate
// genuinely side-effect-free as the Allocator contract requires.
func NewRoundRobin(dims location.Dims) *RoundRobin {
	return &RoundRobin{cursor: location.Zero, dims: dims}
}

// Cursor returns the allocator's current scan position, mainly for
// tests and diagnostics.
func (r *RoundRobin) Cursor() location.Location { return r.cursor }

// Locate implements Allocator. It does not mutate the cursor or any
// other allocator state; only Advance does, and only when Manager.Add
// actually commits.
func (r *RoundRobin) Locate(g *grid.Grid, it item.Item) (location.Location, error) {
	dims := r.dims
	var found location.Location
	ok := false
	dims.Walk(r.cursor, func(loc location.Location) bool {
		if fits(g, loc, it) {
			found = loc
			ok = true
			return false
		}
		return true
	})
	if !ok {
		return location.Location{}, ErrNoSpace
	}
	return found, nil
}

// Advance moves the cursor to the zone immediately after the span
// just committed at anchor, wrapping into the next shelf or row as
// needed. It is called only on a committed placement, per
// SPEC_FULL.md §4.E.1.
func (r *RoundRobin) Advance(anchor location.Location, span int) {
	dims := r.dims
	cur := anchor
	for i := 0; i < span; i++ {
		next, ok := dims.Next(cur)
		if !ok {
			cur = location.Zero
			continue
		}
		cur = next
	}
	r.cursor = cur
}

// Name implements Allocator.
func (r *RoundRobin) Name() string { return "round_robin" }
