package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbor(t *testing.T) {
	const side = 6

	tests := []struct {
		name   string
		from   Position
		dir    Direction
		want   Position
		wantOK bool
	}{
		{"up from top row", 3, DirUp, 0, false},
		{"left from first column", 12, DirLeft, 0, false},
		{"right from last column", 17, DirRight, 0, false},
		{"down from last row", 33, DirDown, 0, false},
		{"up inside", 14, DirUp, 8, true},
		{"down inside", 14, DirDown, 20, true},
		{"left inside", 14, DirLeft, 13, true},
		{"right inside", 14, DirRight, 15, true},
		{"top-left corner right", 0, DirRight, 1, true},
		{"bottom-right corner up", 35, DirUp, 29, true},
		{"out of range", 36, DirUp, 0, false},
		{"negative", -1, DirDown, 0, false},
		{"unknown direction", 14, Direction(9), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Neighbor(side, tt.from, tt.dir)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRowColRoundTrip(t *testing.T) {
	for side := 3; side <= 8; side++ {
		for p := range Position(side * side) {
			row, col := RowCol(side, p)
			assert.Equal(t, p, At(side, row, col))
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDirection("LEFT")
	require.NoError(t, err)
	assert.Equal(t, DirLeft, got)

	_, err = ParseDirection("diagonal")
	assert.Error(t, err)
}

func TestNewGrid(t *testing.T) {
	_, err := NewGrid(2, make([]Cell, 4))
	require.ErrorIs(t, err, ErrInvalidSide)

	_, err = NewGrid(3, make([]Cell, 8))
	require.ErrorIs(t, err, ErrGridSize)

	cells := []Cell{1, 2, 3, 2, 3, 1, 3, 1, 2}
	g, err := NewGrid(3, cells)
	require.NoError(t, err)

	cells[0] = 3
	assert.Equal(t, Cell(1), g.At(0), "NewGrid must copy its input")
	assert.Equal(t, Empty, g.At(9))
	assert.Equal(t, 9, g.Len())
}

func TestGridValidate(t *testing.T) {
	p := MustPalette("a", "b", "c")

	ok, err := NewGrid(3, []Cell{1, 2, 3, 2, 3, 1, 3, 1, 2})
	require.NoError(t, err)
	assert.NoError(t, ok.Validate(p))

	withEmpty, err := NewGrid(3, []Cell{1, 2, 3, 2, Empty, 1, 3, 1, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, withEmpty.Validate(p), ErrInvalidCell)

	outside, err := NewGrid(3, []Cell{1, 2, 3, 2, 4, 1, 3, 1, 2})
	require.NoError(t, err)
	assert.ErrorIs(t, outside.Validate(p), ErrInvalidCell)

	assert.ErrorIs(t, Grid{}.Validate(p), ErrInvalidSide)
}

func TestGridEncodeDecode(t *testing.T) {
	g := decode(t, base6)
	assert.Equal(t, base6, g.Encode())
	assert.Equal(t, 6, g.Side())
	assert.Equal(t, Cell(1), g.At(0))
	assert.Equal(t, Cell(6), g.At(5))

	withEmpty := decode(t, "A.C/BCA/CAB")
	assert.Equal(t, Empty, withEmpty.At(1))

	_, err := DecodeGrid("ABC/AB/ABC")
	assert.ErrorIs(t, err, ErrGridSize)

	_, err = DecodeGrid("ABC/A?C/ABC")
	assert.Error(t, err)
}

func TestGridCloneIndependent(t *testing.T) {
	g := decode(t, base5)
	c := g.Clone()
	require.True(t, g.Equal(c))

	c.swap(0, 1)
	assert.False(t, g.Equal(c))
	assert.Equal(t, base5, g.Encode())
}
