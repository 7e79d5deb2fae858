package filter

import (
	"fmt"

	"github.com/gravitas-015/warehouse/internal/item"
)

// MaxOversizedFilter caps how many Oversized anchors may be stored at
// once. Non-Oversized candidates always pass. Grounded on the
// original implementation's LimitOverSized filter
// (original_source/src/filters.rs).
type MaxOversizedFilter struct {
	Max int
}

// Evaluate implements Filter.
func (f MaxOversizedFilter) Evaluate(state State, it item.Item) (bool, string) {
	if it.Quality.Kind != item.Oversized {
		return true, ""
	}
	if state.OversizedCount() >= f.Max {
		return false, fmt.Sprintf("oversized limit reached (%d)", f.Max)
	}
	return true, ""
}

// Name implements Filter.
func (f MaxOversizedFilter) Name() string { return "max_oversized" }

// MaxQuantityPerIDFilter caps the total quantity stored for one item
// id. Candidates with a different id always pass. Grounded on the
// original implementation's LimitItemQuantity filter.
type MaxQuantityPerIDFilter struct {
	ID  item.ID
	Max int
}

// Evaluate implements Filter.
func (f MaxQuantityPerIDFilter) Evaluate(state State, it item.Item) (bool, string) {
	if it.ID != f.ID {
		return true, ""
	}
	total := state.QuantityByID(f.ID) + it.Quantity
	if total > f.Max {
		return false, fmt.Sprintf("quantity limit reached for id %d (%d > %d)", f.ID, total, f.Max)
	}
	return true, ""
}

// Name implements Filter.
func (f MaxQuantityPerIDFilter) Name() string { return "max_quantity_per_id" }

// ForbiddenNameFilter rejects candidates whose name is on a deny
// list. Supplemented per spec.md §4.F's mention of a "forbidden-name
// filter"; not present in the original implementation.
type ForbiddenNameFilter struct {
	Names map[string]struct{}
}

// NewForbiddenNameFilter builds a ForbiddenNameFilter from a name
// list.
func NewForbiddenNameFilter(names ...string) ForbiddenNameFilter {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return ForbiddenNameFilter{Names: set}
}

// Evaluate implements Filter.
func (f ForbiddenNameFilter) Evaluate(_ State, it item.Item) (bool, string) {
	if _, banned := f.Names[it.Name]; banned {
		return false, fmt.Sprintf("name %q is forbidden", it.Name)
	}
	return true, ""
}

// Name implements Filter.
func (f ForbiddenNameFilter) Name() string { return "forbidden_name" }

// FragilePolicyFilter enforces admission-time policy on Fragile
// items: a minimum acceptable MaxRow (rejecting candidates whose
// bound is so restrictive it can never be honored) and, optionally, a
// "today" cutoff past which an already-expired item is refused
// outright. Supplemented per spec.md §4.F's mention of a "fragility
// policy filter"; shaped after the original implementation's
// predicate-over-quality BanQuality filter, but with new semantics —
// BanQuality banned an entire quality kind outright, which this
// spec's design notes don't call for.
type FragilePolicyFilter struct {
	MinAllowedMaxRow int
	RejectPastDay    *int
}

// Evaluate implements Filter.
func (f FragilePolicyFilter) Evaluate(_ State, it item.Item) (bool, string) {
	if it.Quality.Kind != item.Fragile {
		return true, ""
	}
	if it.Quality.MaxRow < f.MinAllowedMaxRow {
		return false, fmt.Sprintf("max_row %d below policy minimum %d", it.Quality.MaxRow, f.MinAllowedMaxRow)
	}
	if f.RejectPastDay != nil && it.Quality.ExpiryDay <= *f.RejectPastDay {
		return false, fmt.Sprintf("expiry day %d already past %d", it.Quality.ExpiryDay, *f.RejectPastDay)
	}
	return true, ""
}

// Name implements Filter.
func (f FragilePolicyFilter) Name() string { return "fragile_policy" }
