// Package storagetest holds the behavior every storage.Journal must share.
package storagetest

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// JournalSuite runs the shared journal contract. Embed it and set New in
// SetupTest before calling JournalSuite.SetupTest.
type JournalSuite struct {
	suite.Suite

	// New returns an empty journal for each test.
	New func() storage.Journal

	Journal storage.Journal
	Ctx     context.Context
}

// SetupTest creates a fresh journal.
func (s *JournalSuite) SetupTest() {
	s.Require().NotNil(s.New, "JournalSuite.New must be set")
	s.Journal = s.New()
	s.Ctx = context.Background()
}

// TearDownTest closes the journal.
func (s *JournalSuite) TearDownTest() {
	if s.Journal != nil {
		s.NoError(s.Journal.Close())
	}
}

// Info returns a board description used by the tests.
func Info(seed int64) core.BoardInfo {
	return core.BoardInfo{
		Variant:       "match3",
		Seed:          seed,
		Side:          6,
		Palette:       []string{"dog", "cat", "mouse", "rabbit", "fox", "bear"},
		MaxChainSteps: 0,
	}
}

func (s *JournalSuite) start(seed int64) storage.Session {
	sess, err := s.Journal.StartSession(s.Ctx, Info(seed), "ABC/BCA/CAB")
	s.Require().NoError(err)
	return sess
}

func (s *JournalSuite) TestStartAndGetSession() {
	started := s.start(42)
	s.NotEmpty(started.ID)
	s.False(started.Finished())

	got, err := s.Journal.Session(s.Ctx, started.ID)
	s.Require().NoError(err)
	s.Equal(started.ID, got.ID)
	s.Equal("match3", got.Variant)
	s.Equal(int64(42), got.Seed)
	s.Equal(6, got.Side)
	s.Equal(Info(42).Palette, got.Palette)
	s.Equal("ABC/BCA/CAB", got.InitialGrid)
	s.Zero(got.SwipeCount)
	s.True(started.StartedAt.Equal(got.StartedAt), "started %v, got %v", started.StartedAt, got.StartedAt)
	s.Equal(Info(42), got.BoardInfo())
}

func (s *JournalSuite) TestSessionNotFound() {
	_, err := s.Journal.Session(s.Ctx, "missing")
	s.ErrorIs(err, storage.ErrSessionNotFound)

	_, err = s.Journal.Swipes(s.Ctx, "missing")
	s.ErrorIs(err, storage.ErrSessionNotFound)

	err = s.Journal.AppendSwipe(s.Ctx, "missing", storage.SwipeRecord{})
	s.ErrorIs(err, storage.ErrSessionNotFound)

	err = s.Journal.FinishSession(s.Ctx, "missing", "")
	s.ErrorIs(err, storage.ErrSessionNotFound)
}

func (s *JournalSuite) TestAppendSwipesInOrder() {
	sess := s.start(1)

	records := []storage.SwipeRecord{
		{From: 0, Direction: "right", Accepted: false, Result: "ABC/BCA/CAB"},
		{From: 4, Direction: "up", Accepted: true, ChainSteps: 2, Result: "CBA/BCA/CAB"},
		{From: 8, Direction: "left", Accepted: true, ChainSteps: 1, Result: "CBA/BAC/CAB"},
	}
	for _, r := range records {
		s.Require().NoError(s.Journal.AppendSwipe(s.Ctx, sess.ID, r))
	}

	got, err := s.Journal.Swipes(s.Ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	for i, r := range records {
		r.Seq = i + 1
		s.Equal(r, got[i])
	}

	header, err := s.Journal.Session(s.Ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(3, header.SwipeCount)
}

func (s *JournalSuite) TestSwipesOfEmptySession() {
	sess := s.start(1)

	got, err := s.Journal.Swipes(s.Ctx, sess.ID)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *JournalSuite) TestFinishSession() {
	sess := s.start(7)
	s.Require().NoError(s.Journal.AppendSwipe(s.Ctx, sess.ID, storage.SwipeRecord{From: 1, Direction: "down"}))

	s.Require().NoError(s.Journal.FinishSession(s.Ctx, sess.ID, "CAB/ABC/BCA"))

	got, err := s.Journal.Session(s.Ctx, sess.ID)
	s.Require().NoError(err)
	s.True(got.Finished())
	s.Equal("CAB/ABC/BCA", got.FinalGrid)
	s.False(got.FinishedAt.Before(got.StartedAt))

	s.ErrorIs(s.Journal.FinishSession(s.Ctx, sess.ID, "x"), storage.ErrSessionFinished)
	s.ErrorIs(s.Journal.AppendSwipe(s.Ctx, sess.ID, storage.SwipeRecord{}), storage.ErrSessionFinished)
}

func (s *JournalSuite) TestRecentSessionsNewestFirst() {
	var ids []string
	for seed := int64(1); seed <= 5; seed++ {
		ids = append(ids, s.start(seed).ID)
	}

	got, err := s.Journal.RecentSessions(s.Ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(ids[4], got[0].ID)
	s.Equal(ids[3], got[1].ID)
	s.Equal(ids[2], got[2].ID)

	all, err := s.Journal.RecentSessions(s.Ctx, 0)
	s.Require().NoError(err)
	s.Len(all, 5)
}

func (s *JournalSuite) TestSessionsAreIsolated() {
	a := s.start(1)
	b := s.start(2)
	s.Require().NoError(s.Journal.AppendSwipe(s.Ctx, a.ID, storage.SwipeRecord{From: 3, Direction: "left"}))

	got, err := s.Journal.Swipes(s.Ctx, b.ID)
	s.Require().NoError(err)
	s.Empty(got)

	got, err = s.Journal.Swipes(s.Ctx, a.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(1, got[0].Seq)
}
