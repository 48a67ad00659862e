package safety

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/lumen-lang/lumenc/diagnostic"
)

// orderedRing is a small fixed-capacity ring buffer that keeps its
// contents sorted by an Ordered key, the same sorted-insert idea as
// catrate's ringBuffer (catrate/ring.go), but size-bounded by eviction
// of the oldest-keyed entry instead of doubling on overflow: a
// violation sink cares about the N most recent entries per category,
// not an unbounded growable log.
type orderedRing[K constraints.Ordered, V any] struct {
	keys []K
	vals []V
	cap  int
}

func newOrderedRing[K constraints.Ordered, V any](capacity int) *orderedRing[K, V] {
	if capacity <= 0 {
		capacity = 8
	}
	return &orderedRing[K, V]{cap: capacity}
}

// insert places (key, val) in key order. If the ring is at capacity,
// the entry with the smallest key (oldest, since violations are keyed
// by timestamp) is evicted first.
func (r *orderedRing[K, V]) insert(key K, val V) {
	i, _ := slices.BinarySearch(r.keys, key)
	r.keys = slices.Insert(r.keys, i, key)
	r.vals = slices.Insert(r.vals, i, val)

	if len(r.keys) > r.cap {
		r.keys = r.keys[1:]
		r.vals = r.vals[1:]
	}
}

// values returns the buffered values in ascending key order.
func (r *orderedRing[K, V]) values() []V {
	out := make([]V, len(r.vals))
	copy(out, r.vals)
	return out
}

// violationRing is an orderedRing specialized to diagnostic.Violation,
// keyed by arrival timestamp so Recent reports violations oldest-first
// even when Report is called concurrently across goroutines.
type violationRing struct {
	r *orderedRing[int64, *diagnostic.Violation]
}

func newViolationRing(capacity int) *violationRing {
	return &violationRing{r: newOrderedRing[int64, *diagnostic.Violation](capacity)}
}

func (r *violationRing) add(v *diagnostic.Violation) {
	r.r.insert(v.Timestamp.UnixNano(), v)
}

// recent returns the buffered violations, oldest first.
func (r *violationRing) recent() []*diagnostic.Violation {
	return r.r.values()
}
