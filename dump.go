package radixq

import (
	"fmt"
	"io"
	"iter"

	"github.com/tlahoda/radixq/priority"
)

// All returns an iterator over every (key, element) pair in current
// structural order: digit buckets front to back under the direction policy,
// priority buckets within each, then elements in FIFO order. Iteration does
// not mutate the queue.
func (q *Queue[T, D]) All() iter.Seq2[priority.Key, T] {
	return func(yield func(priority.Key, T) bool) {
		done := false
		q.buckets.Ascend(func(db *digitBucket[T]) bool {
			db.buckets.Ascend(func(pb *priorityBucket[T]) bool {
				for v := range pb.elems.All() {
					if !yield(pb.key, v) {
						done = true
						return false
					}
				}
				return true
			})
			return !done
		})
	}
}

// Dump writes a three-level listing of the queue's structure to w: each digit
// count, its priority keys indented once, and their elements indented twice,
// in current structural order. It is a debugging aid, not part of the
// ordering contract.
func (q *Queue[T, D]) Dump(w io.Writer) error {
	var err error
	q.buckets.Ascend(func(db *digitBucket[T]) bool {
		if _, err = fmt.Fprintf(w, "%d\n", db.digits); err != nil {
			return false
		}
		db.buckets.Ascend(func(pb *priorityBucket[T]) bool {
			if _, err = fmt.Fprintf(w, "\t%s\n", pb.key); err != nil {
				return false
			}
			for v := range pb.elems.All() {
				if _, err = fmt.Fprintf(w, "\t\t%v\n", v); err != nil {
					return false
				}
			}
			return true
		})
		return err == nil
	})
	return err
}
