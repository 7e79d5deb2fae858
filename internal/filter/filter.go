// Package filter implements the admission filter contract and chain
// (spec.md §4.F).
package filter

import "github.com/gravitas-015/warehouse/internal/item"

// State is the read-only view of warehouse state a filter may
// consult. The Manager implements this interface; filter does not
// import warehouse, avoiding a cycle.
type State interface {
	// CountByID reports whether id is present and its total anchor
	// count.
	CountByID(id item.ID) (present bool, count int)
	// QuantityByID sums Quantity across every anchor with id.
	QuantityByID(id item.ID) int
	// OversizedCount returns the number of Oversized anchors
	// currently stored.
	OversizedCount() int
}

// Filter is a read-only admission predicate over (state, candidate
// item). Implementations must not mutate state (spec.md §4.F).
type Filter interface {
	// Evaluate reports whether it may be admitted. When ok is false,
	// reason explains why.
	Evaluate(state State, it item.Item) (ok bool, reason string)
	// Name identifies the filter for rejection messages and config.
	Name() string
}

// Chain is an ordered, short-circuiting sequence of filters. All must
// accept for admission; the first rejection's filter name and reason
// are surfaced.
type Chain struct {
	filters []Filter
}

// NewChain constructs a chain from an initial ordered filter list.
func NewChain(filters ...Filter) *Chain {
	c := &Chain{}
	c.filters = append(c.filters, filters...)
	return c
}

// Append adds f to the end of the chain.
func (c *Chain) Append(f Filter) {
	c.filters = append(c.filters, f)
}

// Clear empties the chain.
func (c *Chain) Clear() {
	c.filters = nil
}

// Filters returns the chain's current filters, in evaluation order.
func (c *Chain) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// Evaluate runs every filter in order. ok is true only if all accept;
// otherwise filterName and reason identify the first rejection.
func (c *Chain) Evaluate(state State, it item.Item) (ok bool, filterName string, reason string) {
	for _, f := range c.filters {
		if accepted, why := f.Evaluate(state, it); !accepted {
			return false, f.Name(), why
		}
	}
	return true, "", ""
}
