package radixq

import "iter"

// List is an ordered sequence of elements produced by draining a Queue. It is
// a singly linked list so that PopAll can move an entire priority bucket onto
// the output in constant time instead of copying element by element.
type List[T any] struct {
	head, tail *node[T]
	n          int
}

type node[T any] struct {
	v    T
	next *node[T]
}

func (l *List[T]) pushBack(v T) {
	n := &node[T]{v: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.n++
}

func (l *List[T]) popFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.n--
	return n.v, true
}

func (l *List[T]) front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.v, true
}

// splice moves every element of o onto the end of l and empties o.
func (l *List[T]) splice(o *List[T]) {
	if o.head == nil {
		return
	}
	if l.tail == nil {
		l.head = o.head
	} else {
		l.tail.next = o.head
	}
	l.tail = o.tail
	l.n += o.n
	o.head, o.tail, o.n = nil, nil, 0
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.n
}

// All returns an iterator over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.v) {
				return
			}
		}
	}
}

// Slice returns the elements as a freshly allocated slice in order.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.n)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.v)
	}
	return s
}
