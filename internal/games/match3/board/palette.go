package board

import (
	"fmt"
	"strings"
)

// Cell is a single board value: either Empty or a palette symbol.
// Symbol k of the palette is stored as Cell(k+1).
type Cell uint8

// Empty marks a cleared cell. It only exists inside Collapse.
const Empty Cell = 0

// maxSymbols bounds the palette so every symbol fits in a Cell and
// has a single-letter encoding.
const maxSymbols = 26

// IsEmpty reports whether the cell holds no symbol.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Palette is an ordered set of distinct symbol names.
type Palette struct {
	names []string
}

// NewPalette validates and builds a palette.
func NewPalette(names ...string) (Palette, error) {
	if len(names) < 3 {
		return Palette{}, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, len(names))
	}
	if len(names) > maxSymbols {
		return Palette{}, fmt.Errorf("board: palette has %d symbols, max %d", len(names), maxSymbols)
	}

	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return Palette{}, fmt.Errorf("%w: %q", ErrDuplicateSymbol, n)
		}
		seen[n] = struct{}{}
	}

	return Palette{names: append([]string(nil), names...)}, nil
}

// MustPalette is NewPalette that panics on error. Intended for fixed palettes.
func MustPalette(names ...string) Palette {
	p, err := NewPalette(names...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of symbols.
func (p Palette) Len() int {
	return len(p.names)
}

// Names returns a copy of the symbol names in palette order.
func (p Palette) Names() []string {
	return append([]string(nil), p.names...)
}

// Symbol returns the cell value for the i-th symbol (0-indexed).
func (p Palette) Symbol(i int) Cell {
	return Cell(i + 1)
}

// Name returns the symbol name for a cell, or "" for Empty or unknown cells.
func (p Palette) Name(c Cell) string {
	if !p.Contains(c) {
		return ""
	}
	return p.names[c-1]
}

// Contains reports whether c is one of the palette's symbols.
func (p Palette) Contains(c Cell) bool {
	return c != Empty && int(c) <= len(p.names)
}

// draw picks a symbol uniformly at random.
func (p Palette) draw(rng Random) Cell {
	return p.Symbol(rng.Intn(len(p.names)))
}

// String joins the names with commas.
func (p Palette) String() string {
	return strings.Join(p.names, ",")
}

// Random is the draw source used by Generate and Collapse.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}
