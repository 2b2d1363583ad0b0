package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/storage"
	"github.com/vovakirdan/tui-match3/internal/storage/memory"
)

func startSession(t *testing.T, j storage.Journal, seed int64) storage.Session {
	t.Helper()
	g := match3.New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	sess, err := j.StartSession(context.Background(), g.Info(), g.Board())
	require.NoError(t, err)
	return sess
}

func TestResolveSession(t *testing.T) {
	ctx := context.Background()
	j := memory.New()
	sess := startSession(t, j, 1)

	id, err := resolveSession(ctx, j, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, id)

	id, err = resolveSession(ctx, j, sess.ID[:6])
	require.NoError(t, err)
	assert.Equal(t, sess.ID, id)

	_, err = resolveSession(ctx, j, "zz-not-a-session")
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestResolveSessionAmbiguousPrefix(t *testing.T) {
	j := memory.New()
	startSession(t, j, 1)
	startSession(t, j, 2)

	_, err := resolveSession(context.Background(), j, "")
	assert.ErrorContains(t, err, "ambiguous")
}

func TestCountProductive(t *testing.T) {
	p := board.MustPalette("a", "b", "c")
	// a b a
	// b a b
	// c c a
	grid, err := board.NewGrid(3, []board.Cell{1, 2, 1, 2, 1, 2, 3, 3, 1})
	require.NoError(t, err)
	require.NoError(t, grid.Validate(p))

	want := 0
	for pos := range grid.Len() {
		for _, dir := range []board.Direction{board.DirRight, board.DirDown} {
			if board.TrySwap(grid, board.Position(pos), dir).Accepted {
				want++
			}
		}
	}
	assert.Equal(t, want, countProductive(grid))
	assert.Positive(t, countProductive(grid))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcdefgh", shortID("abcdefghijkl"))
	assert.Equal(t, "abc", shortID("abc"))
}
