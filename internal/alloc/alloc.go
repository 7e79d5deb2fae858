// Package alloc implements the allocator contract (spec.md §4.E) and
// its two concrete strategies.
package alloc

import (
	"errors"

	"github.com/gravitas-015/warehouse/internal/grid"
	"github.com/gravitas-015/warehouse/internal/item"
	"github.com/gravitas-015/warehouse/internal/location"
)

// ErrNoSpace is returned when a full traversal finds no valid anchor.
var ErrNoSpace = errors.New("alloc: no space available")

// Allocator decides where a candidate item would be placed. Locate is
// pure with respect to the grid and must not mutate the allocator's
// own state — it is called both for the read-only Manager.Allocate
// query and as the first step of Manager.Add. Advance is called only
// when Manager.Add actually commits a placement, letting stateful
// strategies (round-robin) persist a cursor across commits without
// that cursor drifting on dry-run queries (SPEC_FULL.md §4.E.1).
type Allocator interface {
	// Locate returns a valid anchor location for it given the current
	// grid contents, or ErrNoSpace if none exists.
	Locate(g *grid.Grid, it item.Item) (location.Location, error)
	// Advance is invoked after a successful commit at anchor covering
	// span zones. Stateless strategies ignore it.
	Advance(anchor location.Location, span int)
	// Name identifies the strategy for config/logging.
	Name() string
}

// fits reports whether it can legally occupy the span zones starting
// at anchor: the run must be free (grid.CanClaim) and, for Fragile
// items, anchor.Row must not exceed the item's max row.
func fits(g *grid.Grid, anchor location.Location, it item.Item) bool {
	if !g.CanClaim(anchor, it.Footprint()) {
		return false
	}
	if it.Quality.Kind == item.Fragile && anchor.Row > it.Quality.MaxRow {
		return false
	}
	return true
}
