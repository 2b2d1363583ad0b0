// Package memory provides an in-process replay journal, used by tests and
// when no database is configured.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Journal is an in-memory implementation of storage.Journal
type Journal struct {
	mu sync.RWMutex

	order    []string
	sessions map[string]*storage.Session
	swipes   map[string][]storage.SwipeRecord
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{
		sessions: make(map[string]*storage.Session),
		swipes:   make(map[string][]storage.SwipeRecord),
	}
}

// Ensure Journal implements the interface
var _ storage.Journal = (*Journal)(nil)

func (j *Journal) StartSession(ctx context.Context, info core.BoardInfo, initialGrid string) (storage.Session, error) {
	sess := storage.NewSession(info, initialGrid)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.sessions[sess.ID] = &sess
	j.order = append(j.order, sess.ID)
	return sess, nil
}

func (j *Journal) AppendSwipe(ctx context.Context, sessionID string, rec storage.SwipeRecord) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	sess, ok := j.sessions[sessionID]
	if !ok {
		return storage.ErrSessionNotFound
	}
	if sess.Finished() {
		return storage.ErrSessionFinished
	}
	rec.Seq = len(j.swipes[sessionID]) + 1
	j.swipes[sessionID] = append(j.swipes[sessionID], rec)
	sess.SwipeCount = rec.Seq
	return nil
}

func (j *Journal) FinishSession(ctx context.Context, sessionID string, finalGrid string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	sess, ok := j.sessions[sessionID]
	if !ok {
		return storage.ErrSessionNotFound
	}
	if sess.Finished() {
		return storage.ErrSessionFinished
	}
	sess.FinalGrid = finalGrid
	sess.FinishedAt = time.Now().UTC()
	return nil
}

func (j *Journal) Session(ctx context.Context, sessionID string) (storage.Session, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	sess, ok := j.sessions[sessionID]
	if !ok {
		return storage.Session{}, storage.ErrSessionNotFound
	}
	return copySession(sess), nil
}

func (j *Journal) Swipes(ctx context.Context, sessionID string) ([]storage.SwipeRecord, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if _, ok := j.sessions[sessionID]; !ok {
		return nil, storage.ErrSessionNotFound
	}
	return slices.Clone(j.swipes[sessionID]), nil
}

func (j *Journal) RecentSessions(ctx context.Context, limit int) ([]storage.Session, error) {
	if limit <= 0 {
		limit = storage.DefaultRecentLimit
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	var out []storage.Session
	for i := len(j.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, copySession(j.sessions[j.order[i]]))
	}
	return out, nil
}

func (j *Journal) Close() error {
	return nil
}

func copySession(s *storage.Session) storage.Session {
	c := *s
	c.Palette = slices.Clone(s.Palette)
	return c
}
