package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var letters6 = MustPalette("dog", "cat", "mouse", "rabbit", "fox", "bear")

// base6 has no runs: row r holds (2r+c) mod 6.
const base6 = "ABCDEF/CDEFAB/EFABCD/ABCDEF/CDEFAB/EFABCD"

// base5 has no runs: row r holds (2r+c) mod 5.
const base5 = "ABCDE/CDEAB/EABCD/BCDEA/DEABC"

var letters5 = MustPalette("a", "b", "c", "d", "e")

func decode(t *testing.T, s string) Grid {
	t.Helper()
	g, err := DecodeGrid(s)
	require.NoError(t, err)
	return g
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// column returns the cells of col from top to bottom.
func column(g Grid, col int) []Cell {
	out := make([]Cell, g.Side())
	for row := range g.Side() {
		out[row] = g.At(At(g.Side(), row, col))
	}
	return out
}
