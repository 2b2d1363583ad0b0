package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/tui-match3/internal/storage"
	"github.com/vovakirdan/tui-match3/internal/storage/storagetest"
)

type SQLiteSuite struct {
	storagetest.JournalSuite
}

func TestSQLiteSuite(t *testing.T) {
	s := new(SQLiteSuite)
	s.New = func() storage.Journal {
		store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "journal.db"))
		require.NoError(t, err)
		return store
	}
	suite.Run(t, s)
}

func TestOpenSQLiteCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "journal.db")

	store, err := storage.OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestSQLiteReopenKeepsSessions(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	store, err := storage.OpenSQLite(dbPath)
	require.NoError(t, err)
	sess, err := store.StartSession(ctx, storagetest.Info(5), "ABC/BCA/CAB")
	require.NoError(t, err)
	require.NoError(t, store.AppendSwipe(ctx, sess.ID, storage.SwipeRecord{From: 2, Direction: "down", Accepted: true, ChainSteps: 1, Result: "x"}))
	require.NoError(t, store.FinishSession(ctx, sess.ID, "x"))
	require.NoError(t, store.Close())

	// Migrations must be idempotent.
	store, err = storage.OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, got.Finished())
	assert.Equal(t, 1, got.SwipeCount)

	swipes, err := store.Swipes(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, swipes, 1)
	assert.True(t, swipes[0].Accepted)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := storage.ExpandPath("~/.match3/journal.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".match3", "journal.db"), got)

	got, err = storage.ExpandPath("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}
