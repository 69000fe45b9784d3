// Package radixq implements a bi-directional priority queue keyed by
// variable-length digit-string priorities, bucketed the way a
// least-significant-digit radix sort groups its input.
//
// Elements are stored in a two-level hierarchy: an outer collection of digit
// buckets keyed by priority length, each holding an inner collection of
// priority buckets keyed by the exact priority string, each holding its
// elements in arrival order. Both levels are ordered containers whose front
// entry is the most extreme under the queue's direction, and the queue caches
// a cursor to the current extreme element, so Top and Pop run in amortized
// constant time and never scan. PopAll drains the whole queue by splicing
// whole priority buckets onto the output, so its cost depends on the number
// of distinct priorities rather than the number of elements.
//
// Priorities of equal length compare lexicographically, which for digit
// strings is the numeric order. Priorities of different lengths compare by
// length alone: "9" ranks below "10", but also below "09". The queue does not
// normalize leading zeros; callers that want numeric ordering across widths
// zero-pad their keys to a uniform width (see priority.Pad).
//
// The direction is a type parameter: a Queue instantiated with
// direction.Ascending pops numerically smallest priorities first, while
// direction.Descending pops largest first. Min and Max are shorthands for
// the two instantiations. Ties within one priority are always FIFO.
//
// A Queue is not safe for concurrent use. Callers sharing a queue across
// goroutines must serialize access with their own lock or confine the queue
// to a single owning goroutine.
//
// Basic usage:
//
//	q := radixq.NewMin[string]()
//	_ = q.Push("30", "c")
//	_ = q.Push("7", "a")
//	_ = q.Push("20", "b")
//
//	for !q.Empty() {
//	    v, _ := q.Pop()
//	    fmt.Println(v) // a, b, c
//	}
package radixq
