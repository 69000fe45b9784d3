package radixq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tlahoda/radixq"
)

func drained(t *testing.T, pushes []push) *radixq.List[string] {
	t.Helper()
	q := radixq.NewMin[string]()
	fill(t, q, pushes)
	return q.PopAll()
}

func TestListSliceAndAllAgree(t *testing.T) {
	l := drained(t, scenario)

	var byIter []string
	for v := range l.All() {
		byIter = append(byIter, v)
	}

	assert.Equal(t, l.Slice(), byIter)
	assert.Equal(t, len(byIter), l.Len())
}

func TestListEarlyBreak(t *testing.T) {
	l := drained(t, scenario)

	var got []string
	for v := range l.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"1", "2a"}, got)
	// Breaking out of iteration must not consume the list.
	assert.Equal(t, 5, l.Len())
}

func TestEmptyList(t *testing.T) {
	l := radixq.NewMin[string]().PopAll()

	require.NotNil(t, l)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Slice())
	for range l.All() {
		t.Fatal("iterated over an empty list")
	}
}
