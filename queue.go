package radixq

import (
	"errors"

	"github.com/google/btree"
	"github.com/tlahoda/radixq/direction"
	"github.com/tlahoda/radixq/priority"
)

// Errors returned by queue operations.
var (
	ErrEmptyQueue = errors.New("radixq: queue is empty")
	ErrInvalidKey = errors.New("radixq: priority key must be a non-empty digit string")
)

const btreeDegree = 2

// digitBucket groups every priority bucket whose key has the same number of
// digits.
type digitBucket[T any] struct {
	digits  int
	buckets *btree.BTreeG[*priorityBucket[T]]
}

// priorityBucket holds all elements pushed under one exact priority key, in
// arrival order.
type priorityBucket[T any] struct {
	key   priority.Key
	elems List[T]
}

// Queue is a priority queue over digit-string keys. The direction policy D
// decides whether numerically smaller or larger keys rank first; ties within
// one key are FIFO. The zero value is not usable; construct with New, NewMin,
// or NewMax.
//
// Both bucket levels are B-trees ordered by the direction policy, so the
// extreme entry of either level is the tree minimum, whichever direction is
// in effect. The queue additionally caches the digit bucket and priority
// bucket holding the current extreme element; Top and Pop read the cursor
// instead of descending the trees.
type Queue[T any, D direction.Policy] struct {
	dir     D
	buckets *btree.BTreeG[*digitBucket[T]]
	size    int

	// Cursor to the current extreme. Both are nil exactly when size is 0;
	// the extreme element itself is always the front of curBucket's FIFO.
	curDigits *digitBucket[T]
	curBucket *priorityBucket[T]
}

// Min is a queue that pops numerically smallest priorities first.
type Min[T any] = Queue[T, direction.Ascending]

// Max is a queue that pops numerically largest priorities first.
type Max[T any] = Queue[T, direction.Descending]

// New creates an empty queue with the given direction policy.
func New[T any, D direction.Policy]() *Queue[T, D] {
	q := &Queue[T, D]{}
	q.buckets = btree.NewG[*digitBucket[T]](btreeDegree, func(a, b *digitBucket[T]) bool {
		return q.dir.LessDigits(a.digits, b.digits)
	})
	return q
}

// NewMin creates an empty ascending queue.
func NewMin[T any]() *Min[T] {
	return New[T, direction.Ascending]()
}

// NewMax creates an empty descending queue.
func NewMax[T any]() *Max[T] {
	return New[T, direction.Descending]()
}

// Push inserts v under the given priority key. Elements pushed under equal
// keys pop in the order they were pushed. Returns ErrInvalidKey if key is
// empty or contains a non-digit character; the queue is unchanged on error.
func (q *Queue[T, D]) Push(key priority.Key, v T) error {
	if !key.IsValid() {
		return ErrInvalidKey
	}

	db, ok := q.buckets.Get(&digitBucket[T]{digits: key.Digits()})
	if !ok {
		db = &digitBucket[T]{
			digits: key.Digits(),
			buckets: btree.NewG[*priorityBucket[T]](btreeDegree, func(a, b *priorityBucket[T]) bool {
				return q.dir.Outranks(a.key, b.key)
			}),
		}
		q.buckets.ReplaceOrInsert(db)
	}

	pb, ok := db.buckets.Get(&priorityBucket[T]{key: key})
	if !ok {
		pb = &priorityBucket[T]{key: key}
		db.buckets.ReplaceOrInsert(pb)
	}

	pb.elems.pushBack(v)

	// Only a strictly outranking key moves the cursor; an equal key keeps
	// the cursor on the older element, preserving FIFO at the extreme.
	if q.size == 0 || q.dir.Outranks(key, q.curBucket.key) {
		q.curDigits = db
		q.curBucket = pb
	}
	q.size++

	return nil
}

// Pop removes and returns the extreme element. Returns ErrEmptyQueue if the
// queue is empty; the queue remains validly empty after a failed call.
func (q *Queue[T, D]) Pop() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	v, _ := q.curBucket.elems.popFront()

	if q.curBucket.elems.Len() == 0 {
		q.curDigits.buckets.Delete(q.curBucket)
		if q.curDigits.buckets.Len() == 0 {
			q.buckets.Delete(q.curDigits)
		}
	}
	q.size--

	if q.size == 0 {
		q.curDigits = nil
		q.curBucket = nil
		return v, nil
	}

	// Re-derive the cursor from the tree fronts. Both levels are ordered by
	// the direction policy, so the minimum is the extreme either way.
	db, _ := q.buckets.Min()
	pb, _ := db.buckets.Min()
	q.curDigits = db
	q.curBucket = pb

	return v, nil
}

// Top returns the extreme element without removing it. Returns ErrEmptyQueue
// if the queue is empty.
func (q *Queue[T, D]) Top() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	v, _ := q.curBucket.elems.front()
	return v, nil
}

// PopAll drains the queue into a single list ordered by priority under the
// queue's direction, FIFO within equal priorities, and leaves the queue
// empty. Whole priority buckets are spliced onto the output in constant
// time, so the cost is proportional to the number of distinct priorities
// rather than the number of elements.
func (q *Queue[T, D]) PopAll() *List[T] {
	out := &List[T]{}
	for {
		db, ok := q.buckets.DeleteMin()
		if !ok {
			break
		}
		for {
			pb, ok := db.buckets.DeleteMin()
			if !ok {
				break
			}
			out.splice(&pb.elems)
		}
	}
	q.size = 0
	q.curDigits = nil
	q.curBucket = nil
	return out
}

// Len returns the number of elements in the queue.
func (q *Queue[T, D]) Len() int {
	return q.size
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T, D]) Empty() bool {
	return q.size == 0
}
