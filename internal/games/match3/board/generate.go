package board

import "fmt"

// Generate fills a side x side grid in row-major order so that no run of
// three exists. Each cell is drawn uniformly and re-drawn while it would
// complete a run with its two left or two upper neighbors. With at least
// three symbols some candidate is always valid, so the retry loop is
// unbounded.
func Generate(side int, palette Palette, rng Random) (Grid, error) {
	if side < 3 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrInvalidSide, side)
	}
	if palette.Len() < 3 {
		return Grid{}, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, palette.Len())
	}

	g := Grid{side: side, cells: make([]Cell, side*side)}
	for i := range g.cells {
		row, col := RowCol(side, Position(i))
		for {
			c := palette.draw(rng)
			if col >= 2 && g.cells[i-1] == c && g.cells[i-2] == c {
				continue
			}
			if row >= 2 && g.cells[i-side] == c && g.cells[i-2*side] == c {
				continue
			}
			g.cells[i] = c
			break
		}
	}
	return g, nil
}

// Deal generates a fresh grid and hands it to a new Controller that keeps
// drawing refills from the same rng. Two Deals with equally seeded sources
// behave identically for the same swipes.
func Deal(side int, palette Palette, rng Random, opts ...Option) (*Controller, error) {
	g, err := Generate(side, palette, rng)
	if err != nil {
		return nil, err
	}
	return NewController(g, palette, rng, opts...)
}
