// Package replay re-verifies recorded sessions by dealing the board again
// from its seed and re-submitting every swipe.
package replay

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// ErrCorruptJournal is returned when a record cannot be replayed at all.
var ErrCorruptJournal = errors.New("replay: corrupt journal")

// Mismatch is one recorded value the re-simulation did not reproduce.
// Seq 0 refers to the session header.
type Mismatch struct {
	Seq      int
	Field    string
	Recorded string
	Replayed string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("swipe %d: %s recorded %q, replayed %q", m.Seq, m.Field, m.Recorded, m.Replayed)
}

// Report is the outcome of a verification.
type Report struct {
	SessionID  string
	Swipes     int // swipes replayed
	Accepted   int
	ChainSteps int
	FinalGrid  string // replayed grid after the last swipe
	Mismatches []Mismatch
}

// OK reports whether every recorded value was reproduced.
func (r Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Verify loads a session from the journal and replays it.
func Verify(ctx context.Context, j storage.Journal, sessionID string) (Report, error) {
	sess, err := j.Session(ctx, sessionID)
	if err != nil {
		return Report{}, err
	}
	swipes, err := j.Swipes(ctx, sessionID)
	if err != nil {
		return Report{}, err
	}
	return Replay(sess, swipes)
}

// Replay re-simulates a session. Replay stops after the first swipe that
// diverges, since later records can no longer be compared.
func Replay(sess storage.Session, swipes []storage.SwipeRecord) (Report, error) {
	rep := Report{SessionID: sess.ID}

	palette, err := board.NewPalette(sess.Palette...)
	if err != nil {
		return rep, fmt.Errorf("%w: %w", ErrCorruptJournal, err)
	}
	ctrl, err := board.Deal(sess.Side, palette, core.NewRandom(sess.Seed),
		board.WithMaxChainSteps(sess.MaxChainSteps))
	if err != nil {
		return rep, fmt.Errorf("%w: %w", ErrCorruptJournal, err)
	}

	rep.FinalGrid = ctrl.Grid().Encode()
	if sess.InitialGrid != "" && sess.InitialGrid != rep.FinalGrid {
		rep.Mismatches = append(rep.Mismatches, Mismatch{
			Field: "initial grid", Recorded: sess.InitialGrid, Replayed: rep.FinalGrid,
		})
		return rep, nil
	}

	for _, rec := range swipes {
		dir, err := board.ParseDirection(rec.Direction)
		if err != nil {
			return rep, fmt.Errorf("%w: swipe %d: %w", ErrCorruptJournal, rec.Seq, err)
		}

		accepted, err := ctrl.Submit(board.Position(rec.From), dir)
		if err != nil {
			return rep, fmt.Errorf("%w: swipe %d: %w", ErrCorruptJournal, rec.Seq, err)
		}

		chain := 0
		if accepted {
			rep.Accepted++
			if steps := ctrl.Resolve(); len(steps) > 0 {
				chain = steps[len(steps)-1].Step
			}
		}
		rep.Swipes++
		rep.ChainSteps += chain
		rep.FinalGrid = ctrl.Grid().Encode()

		before := len(rep.Mismatches)
		rep.compare(rec.Seq, "accepted", strconv.FormatBool(rec.Accepted), strconv.FormatBool(accepted))
		rep.compare(rec.Seq, "chain steps", strconv.Itoa(rec.ChainSteps), strconv.Itoa(chain))
		rep.compare(rec.Seq, "grid", rec.Result, rep.FinalGrid)
		if len(rep.Mismatches) > before {
			return rep, nil
		}
	}

	if sess.Finished() {
		rep.compare(0, "final grid", sess.FinalGrid, rep.FinalGrid)
	}
	return rep, nil
}

func (r *Report) compare(seq int, field, recorded, replayed string) {
	if recorded != replayed {
		r.Mismatches = append(r.Mismatches, Mismatch{Seq: seq, Field: field, Recorded: recorded, Replayed: replayed})
	}
}
