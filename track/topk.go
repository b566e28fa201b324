package track

import (
	"fmt"

	"github.com/arloliu/pack12/errs"
)

// link is a slot index into the TopK backing array, or nilLink for
// "no successor". Using a dedicated type keeps the sentinel distinct from
// sample values and ordinary ints.
type link int32

// nilLink is the explicit no-successor tag terminating the slot list.
const nilLink link = -1

// slot is one backing array entry: a retained sample plus the index of the
// slot holding the next larger (or equal) retained sample.
type slot struct {
	value uint16
	next  link
}

// TopK retains the K largest samples offered so far, readable in ascending
// order.
//
// The retained set is kept as a singly linked ascending list threaded through
// a fixed-size backing array by slot index: head names the slot holding the
// current minimum, and following next from head visits exactly Len() slots in
// non-decreasing value order, ending at the sentinel. The array is allocated
// once at construction; evicted slots are recycled by index, so Offer never
// allocates.
//
// At this capacity a linked list beats a heap: admission costs O(k) reads but
// only O(1) writes, where heap insert plus delete-min costs O(log k) reads
// and writes each with larger constants.
type TopK struct {
	slots []slot
	head  link
	size  int
}

// NewTopK creates a top-K tracker with capacity k.
//
// Returns:
//   - *TopK: A new empty tracker
//   - error: errs.ErrInvalidCapacity if k <= 0
func NewTopK(k int) (*TopK, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", errs.ErrInvalidCapacity, k)
	}

	t := &TopK{
		slots: make([]slot, k),
		head:  nilLink,
	}
	for i := range t.slots {
		t.slots[i].next = nilLink
	}

	return t, nil
}

// Offer admits v into the retained set if it is among the k largest samples
// offered so far, and reports whether it was admitted.
//
// While occupancy is below capacity every sample is admitted. At capacity, v
// is admitted only if it is strictly greater than the current minimum; a
// sample equal to the current minimum does not displace it. Rejection is a
// no-op.
func (t *TopK) Offer(v uint16) bool {
	var idx link
	if t.size == len(t.slots) {
		if v <= t.slots[t.head].value {
			return false
		}
		idx = t.evictMin()
	} else {
		// While filling, never-used slots are taken in array order.
		idx = link(t.size)
	}

	t.insert(idx, v)

	return true
}

// Min returns the smallest retained sample.
func (t *TopK) Min() (uint16, bool) {
	if t.size == 0 {
		return 0, false
	}

	return t.slots[t.head].value, true
}

// Len returns the number of retained samples.
func (t *TopK) Len() int {
	return t.size
}

// Cap returns the tracker capacity.
func (t *TopK) Cap() int {
	return len(t.slots)
}

// Values returns the retained samples in ascending order.
func (t *TopK) Values() []uint16 {
	out := make([]uint16, t.size)
	idx := t.head
	for i := range out {
		out[i] = t.slots[idx].value
		idx = t.slots[idx].next
	}

	return out
}

// evictMin unlinks the head slot (the current minimum) and returns its index
// for reuse.
func (t *TopK) evictMin() link {
	idx := t.head
	t.head = t.slots[idx].next
	t.slots[idx].next = nilLink
	t.size--

	return idx
}

// insert stores v into the free slot idx and splices the slot into the
// ascending list.
func (t *TopK) insert(idx link, v uint16) {
	t.slots[idx].value = v

	if t.size == 0 {
		t.slots[idx].next = nilLink
		t.head = idx
		t.size = 1

		return
	}

	// Linear scan for the first slot holding a value >= v; the new slot is
	// spliced in just before it.
	prev := nilLink
	node := t.head
	for node != nilLink && t.slots[node].value < v {
		prev = node
		node = t.slots[node].next
	}

	if prev == nilLink {
		// New minimum: link ahead of the current head.
		t.slots[idx].next = t.head
		t.head = idx
	} else {
		t.slots[idx].next = t.slots[prev].next
		t.slots[prev].next = idx
	}

	t.size++
}
