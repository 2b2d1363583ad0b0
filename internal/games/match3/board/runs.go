package board

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// FindRuns returns every position that belongs to a horizontal or vertical
// run of three or more equal, non-empty cells. The result is sorted in
// ascending order and contains each position once, even where a horizontal
// and a vertical run cross.
func FindRuns(g Grid) []Position {
	side := g.side
	if side < 3 || len(g.cells) != side*side {
		return nil
	}

	set := intmap.NewSet[Position](8)
	mark := func(a, b, c int) {
		if g.cells[a] != Empty && g.cells[a] == g.cells[b] && g.cells[a] == g.cells[c] {
			set.Add(Position(a))
			set.Add(Position(b))
			set.Add(Position(c))
		}
	}

	for row := range side {
		for col := 0; col < side-2; col++ {
			i := row*side + col
			mark(i, i+1, i+2)
		}
	}
	for col := range side {
		for row := 0; row < side-2; row++ {
			i := row*side + col
			mark(i, i+side, i+2*side)
		}
	}

	if set.Len() == 0 {
		return nil
	}
	out := make([]Position, 0, set.Len())
	set.ForEach(func(p Position) bool {
		out = append(out, p)
		return true
	})
	slices.Sort(out)
	return out
}

// HasRuns reports whether FindRuns would return anything.
func HasRuns(g Grid) bool {
	return len(FindRuns(g)) > 0
}
