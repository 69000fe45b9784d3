package direction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tlahoda/radixq/direction"
)

func TestAscending(t *testing.T) {
	var d direction.Ascending

	assert.True(t, d.Outranks("1", "20"))
	assert.True(t, d.Outranks("20", "30"))
	assert.False(t, d.Outranks("600", "20"))
	assert.False(t, d.Outranks("20", "20"))

	assert.True(t, d.LessDigits(1, 2))
	assert.False(t, d.LessDigits(3, 2))
	assert.False(t, d.LessDigits(2, 2))
}

func TestDescending(t *testing.T) {
	var d direction.Descending

	assert.True(t, d.Outranks("600", "20"))
	assert.True(t, d.Outranks("30", "20"))
	assert.False(t, d.Outranks("1", "20"))
	assert.False(t, d.Outranks("20", "20"))

	assert.True(t, d.LessDigits(3, 2))
	assert.False(t, d.LessDigits(1, 2))
	assert.False(t, d.LessDigits(2, 2))
}
