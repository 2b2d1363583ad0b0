package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindRuns(t *testing.T) {
	tests := []struct {
		name string
		grid string
		want []Position
	}{
		{
			name: "no runs",
			grid: base6,
			want: nil,
		},
		{
			name: "pair is not a run",
			grid: "AABCDE/CDEFAB/EFABCD/ABCDEF/CDEFAB/EFABCD",
			want: nil,
		},
		{
			name: "horizontal run at row start",
			grid: "AAACDE/CDEFAB/EFABCD/ABCDEF/CDEFAB/EFABCD",
			want: []Position{0, 1, 2},
		},
		{
			name: "horizontal and vertical runs crossing",
			grid: "ABADE/CDAAB/EAAAD/BCDEA/DEABC",
			want: []Position{2, 7, 11, 12, 13},
		},
		{
			name: "run of four on the last row",
			grid: "ABCDE/CDEAB/EABCD/BCDEA/DEEEE",
			want: []Position{21, 22, 23, 24},
		},
		{
			name: "vertical run in the last column",
			grid: "ABCDE/CDEAB/EABCA/BCDEA/DEABA",
			want: []Position{14, 19, 24},
		},
		{
			name: "empty cells never match",
			grid: "...DE/CDEAB/EABCD/BCDEA/DEABC",
			want: nil,
		},
		{
			name: "whole row of five",
			grid: "CCCCC/ABABA/BABAB/ABABA/BABAB",
			want: []Position{0, 1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindRuns(decode(t, tt.grid))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindRunsIdempotent(t *testing.T) {
	g := decode(t, "ABADE/CDAAB/EAAAD/BCDEA/DEABC")
	before := g.Encode()

	first := FindRuns(g)
	second := FindRuns(g)

	assert.Equal(t, first, second)
	assert.Equal(t, before, g.Encode(), "FindRuns must not modify the grid")
}

func TestFindRunsMalformed(t *testing.T) {
	assert.Nil(t, FindRuns(Grid{}))
	assert.False(t, HasRuns(Grid{}))
}

func TestHasRuns(t *testing.T) {
	assert.False(t, HasRuns(decode(t, base5)))
	assert.True(t, HasRuns(decode(t, "CCCCC/ABABA/BABAB/ABABA/BABAB")))
}
