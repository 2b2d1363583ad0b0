package board

import "fmt"

// Collapse clears the given positions, lets each column fall and refills
// the vacated top cells with fresh draws. Refills are not constrained, so
// they may form new runs. The input grid is not modified.
//
// Columns are processed left to right and each refill is drawn bottom-up,
// which fixes the order in which rng is consumed.
func Collapse(g Grid, positions []Position, palette Palette, rng Random) (Grid, error) {
	if palette.Len() == 0 {
		return Grid{}, fmt.Errorf("%w: got 0", ErrPaletteTooSmall)
	}
	out := g.Clone()
	for _, p := range positions {
		if !out.inBounds(p) {
			return Grid{}, fmt.Errorf("%w: %d", ErrInvalidPosition, p)
		}
		out.cells[p] = Empty
	}

	side := out.side
	column := make([]Cell, 0, side)
	for col := range side {
		column = column[:0]
		for row := side - 1; row >= 0; row-- {
			if c := out.cells[row*side+col]; c != Empty {
				column = append(column, c)
			}
		}
		for len(column) < side {
			column = append(column, palette.draw(rng))
		}
		for row := side - 1; row >= 0; row-- {
			out.cells[row*side+col] = column[side-1-row]
		}
	}
	return out, nil
}
