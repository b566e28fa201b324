package track

import (
	"fmt"

	"github.com/arloliu/pack12/errs"
)

// Ring is a fixed-capacity circular buffer retaining the most recently pushed
// samples in arrival order.
//
// After n pushes the ring holds min(n, k) samples: the last k pushed when the
// ring has wrapped, or everything pushed so far when it has not. Push is O(1);
// Values is O(k).
type Ring struct {
	buf   []uint16
	w     int
	total uint64
}

// NewRing creates a recency ring with capacity k.
//
// Returns:
//   - *Ring: A new empty ring
//   - error: errs.ErrInvalidCapacity if k <= 0
func NewRing(k int) (*Ring, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidCapacity, k)
	}

	return &Ring{buf: make([]uint16, k)}, nil
}

// Push records v as the most recent sample, overwriting the oldest retained
// sample once the ring is full.
func (r *Ring) Push(v uint16) {
	r.buf[r.w] = v
	r.w++
	if r.w == len(r.buf) {
		r.w = 0
	}
	r.total++
}

// Len returns the number of samples currently retained: min(total, capacity).
func (r *Ring) Len() int {
	if r.total < uint64(len(r.buf)) {
		return int(r.total)
	}

	return len(r.buf)
}

// Total returns the number of samples pushed over the lifetime of the ring.
func (r *Ring) Total() uint64 {
	return r.total
}

// Values returns the retained samples in arrival order, oldest first.
//
// Once the ring has wrapped, the oldest retained sample lives at the write
// cursor (it is the next slot to be overwritten), so reading starts there and
// wraps around. Before the first wrap, reading starts at slot 0.
func (r *Ring) Values() []uint16 {
	n := r.Len()
	out := make([]uint16, n)

	start := 0
	if r.total >= uint64(len(r.buf)) {
		start = r.w
	}
	for i := range n {
		idx := start + i
		if idx >= len(r.buf) {
			idx -= len(r.buf)
		}
		out[i] = r.buf[idx]
	}

	return out
}
