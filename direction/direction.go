// Package direction supplies the ordering policies that make a radix-bucketed
// queue ascending or descending.
//
// A policy fixes two orderings: one over priority keys and one over digit
// counts. The queue builds its ordered containers with these orderings, so
// the entry that outranks every other is always at the front of its
// container, for either direction. Policies are stateless zero-sized structs
// intended to be used as a type parameter, so the direction is fixed at
// instantiation and costs no dynamic dispatch.
package direction

import (
	"github.com/tlahoda/radixq/priority"
)

// Policy is the contract a direction implements. Outranks reports whether a
// strictly takes precedence over b; LessDigits is the same ordering projected
// onto digit counts. Outranks must be a strict weak ordering consistent with
// LessDigits: keys with outranking digit counts outrank.
type Policy interface {
	Outranks(a, b priority.Key) bool
	LessDigits(a, b int) bool
}

// Ascending ranks numerically smaller priorities first.
type Ascending struct{}

// Outranks reports whether a is numerically below b.
func (Ascending) Outranks(a, b priority.Key) bool {
	return a.Less(b)
}

// LessDigits orders digit counts smallest first.
func (Ascending) LessDigits(a, b int) bool {
	return a < b
}

// Descending ranks numerically larger priorities first.
type Descending struct{}

// Outranks reports whether a is numerically above b.
func (Descending) Outranks(a, b priority.Key) bool {
	return b.Less(a)
}

// LessDigits orders digit counts largest first.
func (Descending) LessDigits(a, b int) bool {
	return a > b
}
