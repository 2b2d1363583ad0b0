package board

// SwapResult is the outcome of TrySwap.
type SwapResult struct {
	Accepted bool
	From     Position
	To       Position // valid only when the move stays inside the grid
	Grid     Grid     // swapped grid if accepted, otherwise the input grid
	Matches  []Position
}

// TrySwap exchanges the cell at from with its neighbor in direction dir and
// keeps the exchange only if it creates at least one run. Edge-crossing
// moves and non-productive swaps are rejected and return the input grid
// unchanged.
func TrySwap(g Grid, from Position, dir Direction) SwapResult {
	res := SwapResult{From: from, Grid: g}

	to, ok := Neighbor(g.side, from, dir)
	if !ok || !g.inBounds(from) {
		return res
	}
	res.To = to

	swapped := g.Clone()
	swapped.swap(from, to)

	matches := FindRuns(swapped)
	if len(matches) == 0 {
		return res
	}

	res.Accepted = true
	res.Grid = swapped
	res.Matches = matches
	return res
}
