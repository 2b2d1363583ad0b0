package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{29, 29, true},
		{30, 30, false},
		{5, 15, false},
		{15, 5, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y), "Contains(%d, %d)", tc.x, tc.y)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.lo, tc.hi), "Clamp(%d, %d, %d)", tc.val, tc.lo, tc.hi)
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor(" Bright_Cyan ")
	assert.True(t, ok)
	assert.Equal(t, ColorBrightCyan, c)

	_, ok = ParseColor("chartreuse")
	assert.False(t, ok)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Confirm", ActionConfirm.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	assert.False(t, f.Has(ActionUp))

	f.Set(ActionUp)
	assert.True(t, f.Has(ActionUp))

	f.Clear()
	assert.False(t, f.Has(ActionUp))
}

func TestNewRandomIsDeterministic(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(6), b.Intn(6))
	}
	assert.Equal(t, int64(7), ResolveSeed(7))
	assert.NotZero(t, ResolveSeed(0))
}
