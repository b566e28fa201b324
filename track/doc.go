// Package track provides fixed-capacity tracking structures for decoded
// sample streams: a recency ring buffer retaining the most recent K samples
// in arrival order, and a top-K tracker retaining the K largest samples seen,
// readable in ascending order.
//
// Both structures allocate their backing storage once at construction and
// never again, so they are safe to use in environments where allocation
// failure mid-run is unacceptable. Neither structure is safe for concurrent
// use; the intended access pattern is a single goroutine feeding samples in
// strict sequence.
package track
