// Package priority defines the digit-string key type that orders elements in
// a radix-bucketed queue.
//
// A Key is an arbitrarily large non-negative integer written as a string of
// decimal digits. Keys are compared by digit count first and byte-wise
// lexicographically second; for digit strings of equal length the
// lexicographic order is the numeric order, which is the invariant the
// bucketing scheme depends on. Keys of different lengths always differ in
// magnitude under this scheme: "9" sorts before "10", but also before "09".
// Callers that want pure numeric ordering across widths must zero-pad their
// keys to a uniform width, for example with Pad.
package priority

import (
	"cmp"
	"strings"
)

// Key is a priority expressed as a non-empty string of decimal digits.
type Key string

// Digits returns the number of digit characters in the key.
func (k Key) Digits() int {
	return len(k)
}

// IsValid reports whether the key is a non-empty string of decimal digits.
func (k Key) IsValid() bool {
	if len(k) == 0 {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or 1 depending on whether k sorts before, equal to,
// or after o. Keys are ordered by digit count, then lexicographically.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(len(k), len(o)); c != 0 {
		return c
	}
	return strings.Compare(string(k), string(o))
}

// Less reports whether k sorts before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

// Pad left-pads the key with zeros to the given width. Keys already at or
// beyond the width are returned unchanged.
func Pad(k Key, width int) Key {
	if len(k) >= width {
		return k
	}
	return Key(strings.Repeat("0", width-len(k))) + k
}
