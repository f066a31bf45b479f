package traverse

import (
	"math"
	"sync/atomic"
)

// Unvisited is the sentinel distance of a vertex no traversal has
// reached yet.
const Unvisited int32 = math.MaxInt32

// DistanceVector is the per-vertex distance state shared by all worker
// goroutines of a traversal. Each slot is either Unvisited or a final
// hop count; once a slot leaves Unvisited it never changes again within
// a run. The vector is owned by the caller and merely borrowed by the
// engine for the duration of one traversal call.
type DistanceVector struct {
	slots []atomic.Int32
}

// NewDistanceVector allocates a vector of n slots, all Unvisited.
func NewDistanceVector(n int) *DistanceVector {
	d := &DistanceVector{slots: make([]atomic.Int32, n)}
	d.Reset()

	return d
}

// Len returns the number of slots.
func (d *DistanceVector) Len() int { return len(d.slots) }

// Reset returns every slot to Unvisited. Not safe to call concurrently
// with a running traversal.
func (d *DistanceVector) Reset() {
	for i := range d.slots {
		d.slots[i].Store(Unvisited)
	}
}

// Claim atomically transitions slot v from Unvisited to dist. It
// succeeds at most once per vertex across an entire run, regardless of
// how many goroutines race on it; a failed claim is not an error but the
// signal that v was already discovered at an equal-or-earlier round, and
// the caller must silently drop its candidate.
//
// This compare-and-swap is the engine's single synchronization primitive.
func (d *DistanceVector) Claim(v int, dist int32) bool {
	return d.slots[v].CompareAndSwap(Unvisited, dist)
}

// At returns the current value of slot v.
func (d *DistanceVector) At(v int) int32 {
	return d.slots[v].Load()
}

// Snapshot copies the current distances into a plain slice.
func (d *DistanceVector) Snapshot() []int32 {
	out := make([]int32, len(d.slots))
	for i := range d.slots {
		out[i] = d.slots[i].Load()
	}

	return out
}

// Reachable counts slots holding a finite distance.
func (d *DistanceVector) Reachable() int {
	n := 0
	for i := range d.slots {
		if d.slots[i].Load() != Unvisited {
			n++
		}
	}

	return n
}
