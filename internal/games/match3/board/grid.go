package board

import (
	"fmt"
	"strings"
)

// Position is a row-major cell index in [0, side*side).
type Position int

// Direction is a cardinal swipe direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("board: unknown direction %q", s)
}

// RowCol converts a position to (row, col) for the given side.
func RowCol(side int, p Position) (row, col int) {
	return int(p) / side, int(p) % side
}

// At converts (row, col) to a position for the given side.
func At(side, row, col int) Position {
	return Position(row*side + col)
}

// Neighbor returns the cell adjacent to p in direction dir.
// ok is false if the move would cross a grid edge.
func Neighbor(side int, p Position, dir Direction) (to Position, ok bool) {
	if p < 0 || int(p) >= side*side {
		return 0, false
	}
	row, col := RowCol(side, p)

	switch dir {
	case DirUp:
		if row > 0 {
			return p - Position(side), true
		}
	case DirDown:
		if row < side-1 {
			return p + Position(side), true
		}
	case DirLeft:
		if col > 0 {
			return p - 1, true
		}
	case DirRight:
		if col < side-1 {
			return p + 1, true
		}
	}
	return 0, false
}

// Grid is a square board stored in row-major order.
// The zero value is an empty 0x0 grid.
type Grid struct {
	side  int
	cells []Cell
}

// NewGrid builds a grid from row-major cells. The slice is copied.
func NewGrid(side int, cells []Cell) (Grid, error) {
	if side < 3 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidSide, side)
	}
	if len(cells) != side*side {
		return Grid{}, fmt.Errorf("%w: %d cells for side %d", ErrGridSize, len(cells), side)
	}
	return Grid{side: side, cells: append([]Cell(nil), cells...)}, nil
}

// Side returns the side length.
func (g Grid) Side() int {
	return g.side
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return len(g.cells)
}

// At returns the cell at p. Out-of-range positions read as Empty.
func (g Grid) At(p Position) Cell {
	if !g.inBounds(p) {
		return Empty
	}
	return g.cells[p]
}

// Cells returns a copy of the row-major cells.
func (g Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	return Grid{side: g.side, cells: g.Cells()}
}

// Equal reports whether both grids have the same side and cells.
func (g Grid) Equal(o Grid) bool {
	if g.side != o.side || len(g.cells) != len(o.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Validate checks that every cell holds a symbol from the palette.
func (g Grid) Validate(p Palette) error {
	if g.side < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidSide, g.side)
	}
	if len(g.cells) != g.side*g.side {
		return fmt.Errorf("%w: %d cells for side %d", ErrGridSize, len(g.cells), g.side)
	}
	for i, c := range g.cells {
		if !p.Contains(c) {
			return fmt.Errorf("%w: value %d at %d", ErrInvalidCell, c, i)
		}
	}
	return nil
}

// Encode renders the grid as letters ('A' is the first palette symbol,
// '.' is Empty) with rows separated by '/'.
func (g Grid) Encode() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.side)
	for i, c := range g.cells {
		if i > 0 && i%g.side == 0 {
			sb.WriteByte('/')
		}
		if c == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('A' + byte(c-1))
		}
	}
	return sb.String()
}

// String implements fmt.Stringer using Encode.
func (g Grid) String() string {
	return g.Encode()
}

// DecodeGrid parses the output of Encode.
func DecodeGrid(s string) (Grid, error) {
	rows := strings.Split(s, "/")
	side := len(rows)
	cells := make([]Cell, 0, side*side)

	for r, row := range rows {
		if len(row) != side {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrGridSize, r, len(row), side)
		}
		for i := 0; i < len(row); i++ {
			ch := row[i]
			switch {
			case ch == '.':
				cells = append(cells, Empty)
			case ch >= 'A' && ch < 'A'+maxSymbols:
				cells = append(cells, Cell(ch-'A'+1))
			default:
				return Grid{}, fmt.Errorf("board: invalid symbol %q in row %d", ch, r)
			}
		}
	}
	return NewGrid(side, cells)
}

func (g Grid) inBounds(p Position) bool {
	return p >= 0 && int(p) < len(g.cells)
}

func (g Grid) swap(a, b Position) {
	g.cells[a], g.cells[b] = g.cells[b], g.cells[a]
}
