package index

import (
	"github.com/google/btree"

	"github.com/gravitas-015/warehouse/internal/location"
)

// dayBucket is one btree item: every Fragile anchor expiring on Day.
type dayBucket struct {
	Day  int
	Locs []location.Location
}

// Less implements btree.Item, ordering buckets by day.
func (b *dayBucket) Less(than btree.Item) bool {
	return b.Day < than.(*dayBucket).Day
}

// Expiry is the by-expiry-day index: an ordered map from expiry day to
// the anchor locations of Fragile items expiring that day, backed by
// google/btree so that "how many items expire by day d" is a prefix
// scan over distinct days rather than a linear scan over items
// (spec.md §4.C, §9).
type Expiry struct {
	tree  *btree.BTree
	count int
}

// NewExpiry constructs an empty by-expiry index.
func NewExpiry() *Expiry {
	return &Expiry{tree: btree.New(32)}
}

// Add records loc as a Fragile anchor expiring on day.
func (e *Expiry) Add(day int, loc location.Location) {
	probe := &dayBucket{Day: day}
	if found := e.tree.Get(probe); found != nil {
		b := found.(*dayBucket)
		b.Locs = append(b.Locs, loc)
	} else {
		e.tree.ReplaceOrInsert(&dayBucket{Day: day, Locs: []location.Location{loc}})
	}
	e.count++
}

// Remove deletes one occurrence of loc recorded under day.
func (e *Expiry) Remove(day int, loc location.Location) {
	probe := &dayBucket{Day: day}
	found := e.tree.Get(probe)
	if found == nil {
		return
	}
	b := found.(*dayBucket)
	for i, l := range b.Locs {
		if l == loc {
			b.Locs = append(b.Locs[:i], b.Locs[i+1:]...)
			e.count--
			break
		}
	}
	if len(b.Locs) == 0 {
		e.tree.Delete(probe)
	}
}

// CountUpTo returns the number of Fragile anchors whose expiry day is
// <= day (spec.md §4.C: "expiry_day - today <= 0").
func (e *Expiry) CountUpTo(day int) int {
	total := 0
	// AscendLessThan visits every bucket with Day < pivot.Day, in
	// ascending order; using day+1 as the pivot makes it inclusive of
	// day itself. Iteration touches only the k distinct expiry days
	// <= day, giving O(log n + k) as spec.md §9 calls for.
	e.tree.AscendLessThan(&dayBucket{Day: day + 1}, func(it btree.Item) bool {
		total += len(it.(*dayBucket).Locs)
		return true
	})
	return total
}

// Len returns the total number of tracked (day, location) entries.
func (e *Expiry) Len() int { return e.count }
