package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/factory"
	"github.com/vovakirdan/tui-match3/internal/replay"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var flagLimit int

var errDiverged = errors.New("replay diverged from the journal")

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "List and verify recorded sessions",
	Long: `Every played board is journaled with its seed, palette and swipes.
Verifying a session deals the board again from the seed, re-submits each
swipe and compares the outcome with what was recorded.

Examples:
  match3 replay list
  match3 replay list --limit 5 --db redis://localhost:6379/0
  match3 replay verify 3f1c2a9e`,
}

var replayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently recorded sessions",
	Args:  cobra.NoArgs,
	RunE:  runReplayList,
}

var replayVerifyCmd = &cobra.Command{
	Use:   "verify <session>",
	Short: "Re-simulate a session and compare it with the journal",
	Long: `Re-simulate a recorded session. The session may be given by its full
ID or by a unique prefix of a recent session.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayVerify,
}

func init() {
	replayListCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultRecentLimit, "Number of sessions to show")

	replayCmd.AddCommand(replayListCmd)
	replayCmd.AddCommand(replayVerifyCmd)
}

func openJournalStrict() (storage.Journal, func(), error) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	j, err := factory.OpenJournal(flagDBPath)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return j, func() {
		closeJournal(j, logger)
		closeLog()
	}, nil
}

func runReplayList(cmd *cobra.Command, _ []string) error {
	j, done, err := openJournalStrict()
	if err != nil {
		return err
	}
	defer done()

	sessions, err := j.RecentSessions(cmd.Context(), flagLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'match3 play match3' to record one.")
		return nil
	}

	fmt.Printf("  %-8s  %-12s  %-20s  %-6s  %-14s  %s\n", "Session", "Variant", "Seed", "Swipes", "Started", "Status")
	fmt.Printf("  %-8s  %-12s  %-20s  %-6s  %-14s  %s\n", "-------", "-------", "----", "------", "-------", "------")
	for _, s := range sessions {
		status := "open"
		if s.Finished() {
			status = "done"
		}
		fmt.Printf("  %-8s  %-12s  %-20d  %-6d  %-14s  %s\n",
			shortID(s.ID), s.Variant, s.Seed, s.SwipeCount, humanize.Time(s.StartedAt), status)
	}
	return nil
}

func runReplayVerify(cmd *cobra.Command, args []string) error {
	j, done, err := openJournalStrict()
	if err != nil {
		return err
	}
	defer done()

	ctx := cmd.Context()
	id, err := resolveSession(ctx, j, args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	rep, err := replay.Verify(ctx, j, id)
	if err != nil {
		return err
	}

	fmt.Printf("Session:      %s\n", rep.SessionID)
	fmt.Printf("Swipes:       %d (%d accepted)\n", rep.Swipes, rep.Accepted)
	fmt.Printf("Chain steps:  %s\n", humanize.Comma(int64(rep.ChainSteps)))
	fmt.Printf("Final grid:   %s\n", rep.FinalGrid)
	fmt.Printf("Replayed in:  %s\n", time.Since(start).Round(time.Microsecond))

	if rep.OK() {
		fmt.Println("Result:       OK, every swipe reproduced")
		return nil
	}
	for _, m := range rep.Mismatches {
		fmt.Printf("Mismatch:     %s\n", m)
	}
	return errDiverged
}

// resolveSession expands a unique prefix of a recent session ID.
func resolveSession(ctx context.Context, j storage.Journal, arg string) (string, error) {
	if _, err := j.Session(ctx, arg); err == nil {
		return arg, nil
	} else if !errors.Is(err, storage.ErrSessionNotFound) {
		return "", err
	}

	recent, err := j.RecentSessions(ctx, 100)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range recent {
		if strings.HasPrefix(s.ID, arg) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", storage.ErrSessionNotFound, arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("session prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
