package alloc

import (
	"github.com/gravitas-015/warehouse/internal/grid"
	"github.com/gravitas-015/warehouse/internal/item"
	"github.com/gravitas-015/warehouse/internal/location"
)

// Proximity is the nearest-to-base strategy: it always scans from the
// origin in canonical order and returns the first anchor that fits.
// It is stateless (spec.md §4.E).
type Proximity struct{}

// NewProximity constructs a Proximity allocator.
func NewProximity() *Proximity { return &Proximity{} }

// Locate implements Allocator.
func (p *Proximity) Locate(g *grid.Grid, it item.Item) (location.Location, error) {
	dims := g.Dims()
	var found location.Location
	ok := false
	dims.Walk(location.Zero, func(loc location.Location) bool {
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

// Advance is a no-op: Proximity carries no state.
func (p *Proximity) Advance(location.Location, int) {}

// Name implements Allocator.
func (p *Proximity) Name() string { return "proximity" }
