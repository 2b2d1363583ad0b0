package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, ColorDefault, s.GetCell(5, 5).Color)

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'o', ColorCyan)

	assert.Equal(t, Cell{Rune: 'o', Color: ColorCyan}, s.GetCell(1, 1))
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(9, 9))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		s.DrawTextColored(0, y, "XXXXXXXXXX", ColorRed)
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, Cell{Rune: ' '}, s.GetCell(x, y))
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	assert.Equal(t, "  Hello             ", s.Row(1))

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "é·x")

	assert.Equal(t, "é·x   ", s.Row(0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))
	assert.Equal(t, ColorGray, s.GetCell(1, 1).Color)

	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1))
		assert.Equal(t, '─', s.Get(x, 4))
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y))
		assert.Equal(t, '│', s.Get(5, y))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorGreen)
	s.Set(4, 4, 'Z')

	s.Resize(3, 3)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, Cell{Rune: 'X', Color: ColorGreen}, s.GetCell(2, 2))

	s.Resize(6, 6)
	assert.Equal(t, 'X', s.Get(2, 2))
	assert.Equal(t, ' ', s.Get(4, 4), "clipped content should not come back")
}
