// Package warehouse ties the grid, secondary indexes, allocator, and
// filter chain together behind one facade: Manager is the sole
// mutator of warehouse state (spec.md §4.D).
package warehouse

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/gravitas-015/warehouse/internal/alloc"
	"github.com/gravitas-015/warehouse/internal/filter"
	"github.com/gravitas-015/warehouse/internal/grid"
	"github.com/gravitas-015/warehouse/internal/index"
	"github.com/gravitas-015/warehouse/internal/item"
	"github.com/gravitas-015/warehouse/internal/location"
	"github.com/gravitas-015/warehouse/internal/logging"
)

// Entry is one row of a by-name listing: the item's name, id, and
// current anchor location.
type Entry struct {
	Name     string
	ID       item.ID
	Location location.Location
}

// Manager is the warehouse facade. It owns the grid, the secondary
// indexes, the active allocator, and the filter chain, and is the
// only component permitted to mutate any of them. Grounded on the
// teacher's production Manager (external/production/manager.go),
// generalized from job/recipe state to grid occupancy.
type Manager struct {
	dims location.Dims
	grid *grid.Grid

	byID     *index.Multi[item.ID]
	byName   *index.Multi[string]
	byExpiry *index.Expiry

	allocator alloc.Allocator
	chain     *filter.Chain

	oversized int
	clock     int64

	observer Observer
	log      zerolog.Logger
}

// New constructs a Manager over an empty grid of the given
// dimensions, using allocator for placement decisions and chain as
// the initial (possibly empty) admission filter chain.
func New(dims location.Dims, allocator alloc.Allocator, chain *filter.Chain) *Manager {
	if chain == nil {
		chain = filter.NewChain()
	}
	return &Manager{
		dims:      dims,
		grid:      grid.New(dims.Rows, dims.Shelves, dims.Zones),
		byID:      index.NewMulti[item.ID](),
		byName:    index.NewMulti[string](),
		byExpiry:  index.NewExpiry(),
		allocator: allocator,
		chain:     chain,
		log:       logging.WithComponent("warehouse"),
	}
}

// Dims returns the grid's dimensions.
func (m *Manager) Dims() location.Dims { return m.dims }

// SetAllocator swaps the active allocation strategy. Existing indexes
// and grid contents are untouched; only where future Add calls land
// changes (spec.md §4.D).
func (m *Manager) SetAllocator(a alloc.Allocator) { m.allocator = a }

// AppendFilter adds f to the end of the admission chain.
func (m *Manager) AppendFilter(f filter.Filter) { m.chain.Append(f) }

// ClearFilters empties the admission chain.
func (m *Manager) ClearFilters() { m.chain.Clear() }

// Add runs it through the filter chain, asks the active allocator for
// an anchor, claims the grid run, and updates every secondary index.
// On rejection or lack of space, the grid and indexes are left
// exactly as they were (spec.md property: a failed add is a no-op).
func (m *Manager) Add(it item.Item) (location.Location, error) {
	if ok, name, reason := m.chain.Evaluate(m, it); !ok {
		m.log.Warn().Str("filter", name).Str("reason", reason).Int64("item_id", int64(it.ID)).Msg("add rejected")
		m.emit(Event{Kind: EventRejected, Item: it, Filter: name, Reason: reason})
		return location.Location{}, &RejectedError{Filter: name, Reason: reason}
	}

	anchor, err := m.allocator.Locate(m.grid, it)
	if err != nil {
		m.log.Warn().Str("allocator", m.allocator.Name()).Int64("item_id", int64(it.ID)).Msg("add found no space")
		m.emit(Event{Kind: EventNoSpace, Item: it})
		return location.Location{}, err
	}

	it.ArrivalDay = m.nextDay()
	if err := m.grid.ClaimRun(anchor, it.Footprint(), it); err != nil {
		// The allocator vouched for anchor via fits(), which runs the
		// same CanClaim check ClaimRun relies on; reaching here means the two have
		// fallen out of sync, which is a bug in the allocator, not a
		// recoverable admission outcome.
		panic(fmt.Sprintf("warehouse: allocator %s returned unclaimable anchor %s: %v", m.allocator.Name(), anchor, err))
	}

	m.indexAdd(anchor, it)
	m.allocator.Advance(anchor, it.Footprint())
	m.log.Debug().Str("location", anchor.String()).Int64("item_id", int64(it.ID)).Msg("item added")
	m.emit(Event{Kind: EventAdded, Location: anchor, Item: it})
	return anchor, nil
}

// Allocate is a pure query: it reports where it would be placed under
// the active allocator without claiming any grid space, updating any
// index, or (for round-robin) moving the allocator's cursor.
func (m *Manager) Allocate(it item.Item) (location.Location, error) {
	return m.allocator.Locate(m.grid, it)
}

// PlaceAt bypasses the filter chain and the allocator, placing it
// directly at loc. It still validates the placement's own
// constraints (Fragile max-row, Oversized span and collision) and
// still updates every secondary index. Intended for tests that need
// to set up grid state directly (spec.md §4.D).
func (m *Manager) PlaceAt(loc location.Location, it item.Item) error {
	if it.Quality.Kind == item.Fragile && loc.Row > it.Quality.MaxRow {
		return &ConstraintViolatedError{Reason: fmt.Sprintf("row %d exceeds max_row %d", loc.Row, it.Quality.MaxRow)}
	}
	if !m.grid.CanClaim(loc, it.Footprint()) {
		return &ConstraintViolatedError{Reason: fmt.Sprintf("cannot claim %d zone(s) at %s", it.Footprint(), loc)}
	}

	it.ArrivalDay = m.nextDay()
	if err := m.grid.ClaimRun(loc, it.Footprint(), it); err != nil {
		return &ConstraintViolatedError{Reason: err.Error()}
	}
	m.indexAdd(loc, it)
	m.emit(Event{Kind: EventAdded, Location: loc, Item: it})
	return nil
}

// Remove releases the anchor at loc, returning the item that occupied
// it. loc must reference an Anchor slot: a Tail slot fails with
// ErrNotAnchor, an Empty slot with ErrEmpty, and an out-of-range
// location with ErrInvalidLocation.
func (m *Manager) Remove(loc location.Location) (item.Item, error) {
	it, _, err := m.grid.Release(loc)
	if err != nil {
		return item.Item{}, err
	}
	m.indexRemove(loc, it)
	m.log.Debug().Str("location", loc.String()).Int64("item_id", int64(it.ID)).Msg("item removed")
	m.emit(Event{Kind: EventRemoved, Location: loc, Item: it})
	return it, nil
}

// CountByID implements filter.State and answers the by-id count
// query: whether id is present and how many anchors hold it.
func (m *Manager) CountByID(id item.ID) (bool, int) { return m.byID.Count(id) }

// CountByName answers the by-name count query.
func (m *Manager) CountByName(name string) (bool, int) { return m.byName.Count(name) }

// LocateByID returns every anchor location currently holding id.
func (m *Manager) LocateByID(id item.ID) []location.Location { return m.byID.Locate(id) }

// LocateByName returns every anchor location currently holding an item
// named name.
func (m *Manager) LocateByName(name string) []location.Location { return m.byName.Locate(name) }

// QuantityByID implements filter.State, summing Quantity across every
// anchor holding id. Cost is proportional to the number of anchors
// with that id, not the grid's total size.
func (m *Manager) QuantityByID(id item.ID) int {
	total := 0
	for _, loc := range m.byID.Locate(id) {
		slot, err := m.grid.Get(loc)
		if err != nil {
			continue
		}
		total += slot.Item.Quantity
	}
	return total
}

// OversizedCount implements filter.State, returning the number of
// Oversized anchors currently stored.
func (m *Manager) OversizedCount() int { return m.oversized }

// CountExpiringBy returns the number of Fragile anchors whose expiry
// day is <= day.
func (m *Manager) CountExpiringBy(day int) int { return m.byExpiry.CountUpTo(day) }

// ListSortedByName returns every stored item as an Entry, ordered by
// name, then id, then location, all ascending (spec.md §4.C tie-break
// decision, SPEC_FULL.md §9).
func (m *Manager) ListSortedByName() []Entry {
	var out []Entry
	for _, name := range m.byName.Keys() {
		for _, loc := range m.byName.Locate(name) {
			slot, err := m.grid.Get(loc)
			if err != nil || slot.State != grid.Anchor {
				continue
			}
			out = append(out, Entry{Name: name, ID: slot.Item.ID, Location: loc})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Location.Less(b.Location)
	})
	return out
}

// nextDay advances and returns the manager's internal day counter,
// used to stamp Item.ArrivalDay at placement time. There is no wall
// clock involved: days are purely a monotonic placement sequence
// (spec.md Non-goals: "wall-clock time").
func (m *Manager) nextDay() int64 {
	m.clock++
	return m.clock
}

func (m *Manager) indexAdd(loc location.Location, it item.Item) {
	m.byID.Add(it.ID, loc)
	m.byName.Add(it.Name, loc)
	if it.Quality.Kind == item.Fragile {
		m.byExpiry.Add(it.Quality.ExpiryDay, loc)
	}
	if it.Quality.Kind == item.Oversized {
		m.oversized++
	}
}

func (m *Manager) indexRemove(loc location.Location, it item.Item) {
	m.byID.Remove(it.ID, loc)
	m.byName.Remove(it.Name, loc)
	if it.Quality.Kind == item.Fragile {
		m.byExpiry.Remove(it.Quality.ExpiryDay, loc)
	}
	if it.Quality.Kind == item.Oversized {
		m.oversized--
	}
}

// Snapshot captures every non-Empty grid slot, in canonical order, for
// tests asserting that a failed Add left grid state unchanged (spec.md
// property: "a rejected or no-space add is a no-op"). Index contents
// and the oversized and day counters are not included.
func (m *Manager) Snapshot() []grid.SlotRecord { return m.grid.Snapshot() }
