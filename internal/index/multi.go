// Package index implements the warehouse's secondary structures:
// by-id, by-name, and by-expiry multisets of anchor locations, plus a
// sorted-by-name view. None of these dereference the grid; they store
// plain locations (spec.md §9: "indexes store locations ... not
// back-pointers").
package index

import (
	"sort"

	"github.com/gravitas-015/warehouse/internal/location"
)

// Multi is a multiset index from a comparable key to the set of
// anchor locations currently holding an item with that key. Backed by
// a plain map, which gives expected O(1) add/remove/count and
// output-proportional listing, matching spec.md §4.C's "expected
// constant / output-proportional time" for by-id and by-name.
type Multi[K comparable] struct {
	entries map[K][]location.Location
}

// NewMulti constructs an empty multi-index.
func NewMulti[K comparable]() *Multi[K] {
	return &Multi[K]{entries: make(map[K][]location.Location)}
}

// Add records loc under key.
func (m *Multi[K]) Add(key K, loc location.Location) {
	m.entries[key] = append(m.entries[key], loc)
}

// Remove deletes one occurrence of loc under key. It is a no-op if the
// pair isn't present.
func (m *Multi[K]) Remove(key K, loc location.Location) {
	locs, ok := m.entries[key]
	if !ok {
		return
	}
	for i, l := range locs {
		if l == loc {
			locs = append(locs[:i], locs[i+1:]...)
			break
		}
	}
	if len(locs) == 0 {
		delete(m.entries, key)
		return
	}
	m.entries[key] = locs
}

// Count reports whether key is present and how many locations it maps
// to.
func (m *Multi[K]) Count(key K) (bool, int) {
	locs, ok := m.entries[key]
	if !ok {
		return false, 0
	}
	return true, len(locs)
}

// Locate returns a copy of the locations recorded under key.
func (m *Multi[K]) Locate(key K) []location.Location {
	locs := m.entries[key]
	if len(locs) == 0 {
		return nil
	}
	out := make([]location.Location, len(locs))
	copy(out, locs)
	return out
}

// Keys returns every key currently present, in no particular order.
func (m *Multi[K]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns every present key sorted with less.
func (m *Multi[K]) SortedKeys(less func(a, b K) bool) []K {
	keys := m.Keys()
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}
