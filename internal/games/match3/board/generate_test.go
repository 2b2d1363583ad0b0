package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/testutil"
)

func TestGenerateHasNoRuns(t *testing.T) {
	palettes := []Palette{
		MustPalette("a", "b", "c"),
		MustPalette("a", "b", "c", "d"),
		letters6,
	}

	for side := 3; side <= 9; side++ {
		for _, p := range palettes {
			for seed := int64(1); seed <= 25; seed++ {
				g, err := Generate(side, p, seeded(seed))
				require.NoError(t, err)
				require.NoError(t, g.Validate(p))
				require.Empty(t, FindRuns(g), "side=%d symbols=%d seed=%d grid=%s", side, p.Len(), seed, g)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(6, letters6, seeded(42))
	require.NoError(t, err)
	b, err := Generate(6, letters6, seeded(42))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := Generate(6, letters6, seeded(43))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestGenerateRedrawsCompletingSymbol(t *testing.T) {
	p := MustPalette("a", "b", "c")

	// Row 0: A, A, then A is rejected and B accepted.
	// Row 1: A, B, C.
	// Row 2: A is rejected (two A above), then B, B, C.
	rng := testutil.NewQueueRandom(
		0, 0, 0, 1,
		0, 1, 2,
		0, 1, 1, 2,
	)

	g, err := Generate(3, p, rng)
	require.NoError(t, err)
	assert.Equal(t, "AAB/ABC/BBC", g.Encode())
	assert.Zero(t, rng.Remaining())
}

func TestGenerateInvalidConfig(t *testing.T) {
	_, err := Generate(2, letters6, seeded(1))
	assert.ErrorIs(t, err, ErrInvalidSide)

	_, err = Generate(6, Palette{}, seeded(1))
	assert.ErrorIs(t, err, ErrPaletteTooSmall)
}

func TestDealReplaysIdentically(t *testing.T) {
	a, err := Deal(6, letters6, seeded(9))
	require.NoError(t, err)
	b, err := Deal(6, letters6, seeded(9))
	require.NoError(t, err)
	require.True(t, a.Grid().Equal(b.Grid()))

	for p := Position(0); p < 36; p++ {
		for _, dir := range []Direction{DirRight, DirDown} {
			okA, errA := a.Submit(p, dir)
			okB, errB := b.Submit(p, dir)
			require.NoError(t, errA)
			require.NoError(t, errB)
			require.Equal(t, okA, okB)
			require.Equal(t, len(a.Resolve()), len(b.Resolve()))
			require.True(t, a.Grid().Equal(b.Grid()), "diverged at %d %s", p, dir)
		}
	}
}

func TestDealInvalidConfig(t *testing.T) {
	_, err := Deal(2, letters6, seeded(1))
	assert.ErrorIs(t, err, ErrInvalidSide)
}
