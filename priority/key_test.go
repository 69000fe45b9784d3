package priority_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tlahoda/radixq/priority"
)

func TestKeyIsValid(t *testing.T) {
	tests := []struct {
		name string
		key  priority.Key
		want bool
	}{
		{name: "single digit", key: "7", want: true},
		{name: "multiple digits", key: "600", want: true},
		{name: "leading zeros allowed", key: "007", want: true},
		{name: "empty", key: "", want: false},
		{name: "non digit", key: "12a", want: false},
		{name: "negative sign", key: "-1", want: false},
		{name: "whitespace", key: " 1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.IsValid())
		})
	}
}

func TestKeyCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b priority.Key
		want int
	}{
		{name: "equal", a: "20", b: "20", want: 0},
		{name: "same width lexicographic", a: "20", b: "30", want: -1},
		{name: "shorter sorts first", a: "600", b: "1", want: 1},
		{name: "width dominates value", a: "9", b: "10", want: -1},
		{name: "leading zero is longer", a: "9", b: "09", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, priority.Key("007"), priority.Pad("7", 3))
	assert.Equal(t, priority.Key("600"), priority.Pad("600", 3))
	assert.Equal(t, priority.Key("600"), priority.Pad("600", 2))

	// Padding restores numeric order across widths.
	a, b := priority.Pad("9", 2), priority.Pad("10", 2)
	assert.True(t, a.Less(b))
}

func TestKeyDigits(t *testing.T) {
	assert.Equal(t, 1, priority.Key("7").Digits())
	assert.Equal(t, 3, priority.Key("600").Digits())
}
