// Package factory wires the replay journal backend selected by a DSN.
package factory

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/storage"
	"github.com/vovakirdan/tui-match3/internal/storage/memory"
	redisstorage "github.com/vovakirdan/tui-match3/internal/storage/redis"
)

// Journal backend constants
const (
	JournalTypeMemory = "memory"
	JournalTypeRedis  = "redis"
	JournalTypeSQLite = "sqlite"
)

// DefaultJournalPath is used when no DSN is given.
const DefaultJournalPath = "~/.match3/journal.db"

// JournalType reports which backend a DSN selects.
func JournalType(dsn string) string {
	switch {
	case dsn == "memory:" || dsn == JournalTypeMemory:
		return JournalTypeMemory
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		return JournalTypeRedis
	default:
		return JournalTypeSQLite
	}
}

// OpenJournal opens the journal for dsn: "redis://..." selects Redis,
// "memory" an in-process journal, anything else is a SQLite path.
func OpenJournal(dsn string) (storage.Journal, error) {
	if dsn == "" {
		dsn = DefaultJournalPath
	}

	switch JournalType(dsn) {
	case JournalTypeMemory:
		return memory.New(), nil
	case JournalTypeRedis:
		cfg := redisstorage.DefaultConfig()
		cfg.URL = dsn
		j, err := redisstorage.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis journal: %w", err)
		}
		return j, nil
	default:
		store, err := storage.OpenSQLite(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite journal: %w", err)
		}
		return store, nil
	}
}
