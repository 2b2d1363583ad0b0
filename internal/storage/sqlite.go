// Package storage provides the replay journal and its SQLite implementation.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Store is the SQLite journal.
type Store struct {
	db *sql.DB
}

// Ensure Store implements Journal
var _ Journal = (*Store)(nil)

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer; keeps sequence numbers consistent.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			side INTEGER NOT NULL,
			palette TEXT NOT NULL,
			max_chain_steps INTEGER NOT NULL DEFAULT 0,
			initial_grid TEXT NOT NULL,
			final_grid TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS swipes (
			session_id TEXT NOT NULL REFERENCES sessions(session_id),
			seq INTEGER NOT NULL,
			from_pos INTEGER NOT NULL,
			direction TEXT NOT NULL,
			accepted INTEGER NOT NULL,
			chain_steps INTEGER NOT NULL DEFAULT 0,
			result TEXT NOT NULL,
			PRIMARY KEY (session_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession records a new session and returns its header.
func (s *Store) StartSession(ctx context.Context, info core.BoardInfo, initialGrid string) (Session, error) {
	sess := NewSession(info, initialGrid)

	palette, err := json.Marshal(sess.Palette)
	if err != nil {
		return Session{}, fmt.Errorf("storage: cannot encode palette: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions
		 (session_id, variant, seed, side, palette, max_chain_steps, initial_grid, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Variant, sess.Seed, sess.Side, string(palette),
		sess.MaxChainSteps, sess.InitialGrid, sess.StartedAt.UnixNano(),
	)
	if err != nil {
		return Session{}, fmt.Errorf("storage: cannot start session: %w", err)
	}
	return sess, nil
}

// AppendSwipe adds the next swipe to an open session.
func (s *Store) AppendSwipe(ctx context.Context, sessionID string, rec SwipeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	var finishedAt int64
	err = tx.QueryRowContext(ctx,
		"SELECT finished_at FROM sessions WHERE session_id = ?", sessionID,
	).Scan(&finishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query session: %w", err)
	}
	if finishedAt != 0 {
		return ErrSessionFinished
	}

	var seq int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(seq), 0) + 1 FROM swipes WHERE session_id = ?", sessionID,
	).Scan(&seq)
	if err != nil {
		return fmt.Errorf("storage: cannot number swipe: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO swipes (session_id, seq, from_pos, direction, accepted, chain_steps, result)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, seq, rec.From, rec.Direction, rec.Accepted, rec.ChainSteps, rec.Result,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save swipe: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit swipe: %w", err)
	}
	return nil
}

// FinishSession stores the final grid and closes the session.
func (s *Store) FinishSession(ctx context.Context, sessionID string, finalGrid string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET final_grid = ?, finished_at = ?
		 WHERE session_id = ? AND finished_at = 0`,
		finalGrid, time.Now().UTC().UnixNano(), sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}
	if n == 1 {
		return nil
	}

	sess, err := s.Session(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Finished() {
		return ErrSessionFinished
	}
	return fmt.Errorf("storage: cannot finish session %s", sessionID)
}

const sessionColumns = `s.session_id, s.variant, s.seed, s.side, s.palette, s.max_chain_steps,
	s.initial_grid, s.final_grid, s.started_at, s.finished_at,
	(SELECT COUNT(*) FROM swipes w WHERE w.session_id = s.session_id)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var (
		sess       Session
		palette    string
		startedAt  int64
		finishedAt int64
	)
	if err := row.Scan(
		&sess.ID, &sess.Variant, &sess.Seed, &sess.Side, &palette, &sess.MaxChainSteps,
		&sess.InitialGrid, &sess.FinalGrid, &startedAt, &finishedAt, &sess.SwipeCount,
	); err != nil {
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(palette), &sess.Palette); err != nil {
		return Session{}, fmt.Errorf("storage: cannot decode palette: %w", err)
	}
	sess.StartedAt = time.Unix(0, startedAt).UTC()
	if finishedAt != 0 {
		sess.FinishedAt = time.Unix(0, finishedAt).UTC()
	}
	return sess, nil
}

// Session returns a session header.
func (s *Store) Session(ctx context.Context, sessionID string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions s WHERE s.session_id = ?", sessionID)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return sess, nil
}

// Swipes returns all swipes of a session in order.
func (s *Store) Swipes(ctx context.Context, sessionID string) ([]SwipeRecord, error) {
	if _, err := s.Session(ctx, sessionID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, from_pos, direction, accepted, chain_steps, result
		 FROM swipes
		 WHERE session_id = ?
		 ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query swipes: %w", err)
	}
	defer rows.Close()

	var records []SwipeRecord
	for rows.Next() {
		var r SwipeRecord
		if err := rows.Scan(&r.Seq, &r.From, &r.Direction, &r.Accepted, &r.ChainSteps, &r.Result); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// RecentSessions returns the most recently started sessions.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+sessionColumns+" FROM sessions s ORDER BY s.id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}
