package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-match3/internal/core"
)

var (
	// ErrSessionNotFound is returned for an unknown session ID.
	ErrSessionNotFound = errors.New("storage: session not found")
	// ErrSessionFinished is returned when writing to a finished session.
	ErrSessionFinished = errors.New("storage: session already finished")
)

// DefaultRecentLimit is used by RecentSessions when limit <= 0.
const DefaultRecentLimit = 20

// Session is the journal header of one played board.
type Session struct {
	ID            string
	Variant       string
	Seed          int64
	Side          int
	Palette       []string
	MaxChainSteps int
	InitialGrid   string // encoded grid right after the deal
	FinalGrid     string // encoded grid when the session finished
	SwipeCount    int
	StartedAt     time.Time
	FinishedAt    time.Time // zero while the session is open
}

// Finished reports whether FinishSession was called.
func (s Session) Finished() bool {
	return !s.FinishedAt.IsZero()
}

// BoardInfo returns the parameters needed to deal the board again.
func (s Session) BoardInfo() core.BoardInfo {
	return core.BoardInfo{
		Variant:       s.Variant,
		Seed:          s.Seed,
		Side:          s.Side,
		Palette:       append([]string(nil), s.Palette...),
		MaxChainSteps: s.MaxChainSteps,
	}
}

// SwipeRecord is one handled swipe. Seq is assigned by the journal,
// starting at 1.
type SwipeRecord struct {
	Seq        int
	From       int
	Direction  string
	Accepted   bool
	ChainSteps int
	Result     string // encoded grid after the swipe settled
}

// SwipeFromEvent converts a game event into a record.
func SwipeFromEvent(ev core.SwipeEvent) SwipeRecord {
	return SwipeRecord{
		From:       ev.From,
		Direction:  ev.Direction,
		Accepted:   ev.Accepted,
		ChainSteps: ev.ChainSteps,
		Result:     ev.Result,
	}
}

// Journal records played sessions so they can be verified later by
// re-simulation. It is never used to resume a game.
type Journal interface {
	StartSession(ctx context.Context, info core.BoardInfo, initialGrid string) (Session, error)
	AppendSwipe(ctx context.Context, sessionID string, rec SwipeRecord) error
	FinishSession(ctx context.Context, sessionID string, finalGrid string) error

	Session(ctx context.Context, sessionID string) (Session, error)
	Swipes(ctx context.Context, sessionID string) ([]SwipeRecord, error)
	// RecentSessions returns sessions newest first.
	RecentSessions(ctx context.Context, limit int) ([]Session, error)

	Close() error
}

// NewSession builds the header for a session that starts now.
func NewSession(info core.BoardInfo, initialGrid string) Session {
	return Session{
		ID:            uuid.NewString(),
		Variant:       info.Variant,
		Seed:          info.Seed,
		Side:          info.Side,
		Palette:       append([]string(nil), info.Palette...),
		MaxChainSteps: info.MaxChainSteps,
		InitialGrid:   initialGrid,
		StartedAt:     time.Now().UTC(),
	}
}
