package warehouse

import (
	"fmt"

	"github.com/gravitas-015/warehouse/internal/alloc"
	"github.com/gravitas-015/warehouse/internal/grid"
)

// ErrNoSpace is returned by Add and Allocate when no valid anchor
// exists for a candidate item under the active allocator.
var ErrNoSpace = alloc.ErrNoSpace

// ErrInvalidLocation is returned when an operation addresses a
// location outside the grid.
var ErrInvalidLocation = grid.ErrInvalidLocation

// ErrNotAnchor is returned when Remove targets a Tail zone.
var ErrNotAnchor = grid.ErrNotAnchor

// ErrEmpty is returned when Remove targets an Empty zone.
var ErrEmpty = grid.ErrEmpty

// RejectedError reports that a candidate was turned away by the
// filter chain, naming the first filter that refused it and why.
type RejectedError struct {
	Filter string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("warehouse: rejected by filter %q: %s", e.Filter, e.Reason)
}

// ConstraintViolatedError reports a PlaceAt call that would violate a
// placement constraint (fragile max-row bound, oversized span
// overflow, or zone collision).
type ConstraintViolatedError struct {
	Reason string
}

func (e *ConstraintViolatedError) Error() string {
	return fmt.Sprintf("warehouse: constraint violated: %s", e.Reason)
}
