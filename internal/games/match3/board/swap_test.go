package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrySwapEdgeRejected(t *testing.T) {
	g := decode(t, base6)

	tests := []struct {
		name string
		from Position
		dir  Direction
	}{
		{"up from row 0", 2, DirUp},
		{"left from column 0", 18, DirLeft},
		{"right from last column", 11, DirRight},
		{"down from last row", 32, DirDown},
		{"corner up", 0, DirUp},
		{"corner left", 0, DirLeft},
		{"corner right", 35, DirRight},
		{"corner down", 35, DirDown},
		{"outside grid", 40, DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := TrySwap(g, tt.from, tt.dir)
			assert.False(t, res.Accepted)
			assert.True(t, res.Grid.Equal(g))
			assert.Empty(t, res.Matches)
		})
	}
	assert.Equal(t, base6, g.Encode())
}

func TestTrySwapNonProductiveReverts(t *testing.T) {
	// Row [A,A,B,C,D,E]: moving B left gives [A,B,A,...], which is no run.
	const start = "AABCDE/CDEFAB/EFABCD/ABCDEF/CDEFAB/EFABCD"
	g := decode(t, start)

	res := TrySwap(g, 2, DirLeft)

	assert.False(t, res.Accepted)
	assert.Equal(t, Position(1), res.To)
	assert.Equal(t, start, res.Grid.Encode())
	assert.Equal(t, start, g.Encode())
}

func TestTrySwapProductive(t *testing.T) {
	const start = "AACADE/CDEFAB/EFABCD/ABCDEF/CDEFAB/EFABCD"
	g := decode(t, start)

	res := TrySwap(g, 2, DirRight)

	assert.True(t, res.Accepted)
	assert.Equal(t, Position(2), res.From)
	assert.Equal(t, Position(3), res.To)
	assert.Equal(t, "AAACDE/CDEFAB/EFABCD/ABCDEF/CDEFAB/EFABCD", res.Grid.Encode())
	assert.Equal(t, []Position{0, 1, 2}, res.Matches)
	assert.Equal(t, start, g.Encode(), "input grid must not change")
}

func TestTrySwapReversibilityProperty(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for seed := int64(1); seed <= 20; seed++ {
		g, err := Generate(6, letters6, seeded(seed))
		if err != nil {
			t.Fatal(err)
		}
		before := g.Encode()

		for p := range Position(36) {
			for _, d := range dirs {
				res := TrySwap(g, p, d)
				if res.Accepted {
					assert.NotEmpty(t, res.Matches)
					assert.Equal(t, res.Matches, FindRuns(res.Grid))
					continue
				}
				assert.Equal(t, before, res.Grid.Encode())
			}
		}
		assert.Equal(t, before, g.Encode())
	}
}
