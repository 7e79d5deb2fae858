package warehouse

import (
	"github.com/gravitas-015/warehouse/internal/item"
	"github.com/gravitas-015/warehouse/internal/location"
)

// EventKind discriminates the outcomes a Manager reports to its
// Observer.
type EventKind int

const (
	// EventAdded fires after a successful Add or PlaceAt.
	EventAdded EventKind = iota
	// EventRemoved fires after a successful Remove.
	EventRemoved
	// EventRejected fires when the filter chain refused a candidate.
	EventRejected
	// EventNoSpace fires when the allocator found no anchor.
	EventNoSpace
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventRejected:
		return "rejected"
	case EventNoSpace:
		return "no_space"
	default:
		return "unknown"
	}
}

// Event describes one outcome of an Add, PlaceAt or Remove call.
type Event struct {
	Kind     EventKind
	Location location.Location
	Item     item.Item
	Filter   string // set only for EventRejected
	Reason   string // set only for EventRejected
}

// Observer receives events synchronously, inline with the call that
// produced them. There is no queue and no goroutine: a slow or
// panicking observer blocks or aborts the call that triggered it,
// matching the original implementation's plain callback
// (original_source/src/main.rs), generalized from a single println
// into a typed hook.
type Observer func(Event)

// emit calls the observer if one is set.
func (m *Manager) emit(ev Event) {
	if m.observer != nil {
		m.observer(ev)
	}
}

// SetObserver installs obs as the manager's event observer, replacing
// any previous one. Passing nil disables event reporting.
func (m *Manager) SetObserver(obs Observer) {
	m.observer = obs
}
