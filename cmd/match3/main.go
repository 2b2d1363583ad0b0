// match3 is a terminal match-3 board with a replay journal.
//
// Usage:
//
//	match3 list                   - List available board variants
//	match3 play <variant>         - Play a board variant
//	match3 menu                   - Pick variants and browse the journal interactively
//	match3 board                  - Print a generated board
//	match3 replay list            - List recorded sessions
//	match3 replay verify <id>     - Re-simulate a recorded session
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for a reproducible board
//	--db <dsn>           - Journal: SQLite path, redis:// URL or "memory"
//	--config <path>      - Custom match3 YAML config
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file while the board is shown
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/factory"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagNoBell   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - Swap tiles in your terminal",
	Long: `Match-3 is a terminal tile-matching board. Swap two neighbouring
tiles to line up three or more equal symbols; matched tiles are cleared,
the column above falls down and fresh symbols drop in from the top.

Every board is dealt from a seed and every swipe is journaled, so any
session can be re-simulated and verified later.

Available commands:
  list     - Show all board variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker and journal browser
  board    - Print a generated board
  replay   - List and verify recorded sessions

Examples:
  match3 list
  match3 play match3 --seed 42
  match3 menu --db redis://localhost:6379/0
  match3 board --seed 7 --check
  match3 replay verify 3f1c2a9e`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		match3.SetConfig(cfg)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", factory.DefaultJournalPath, "Journal DSN: SQLite path, redis:// URL or memory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded while the board is shown otherwise)")
	rootCmd.PersistentFlags().BoolVar(&flagNoBell, "no-bell", false, "Do not ring the terminal bell on a match")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the application logger. Interactive commands pass
// io.Discard as fallback so log lines never tear the alt-screen.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           level,
	})
	return logger, closer, nil
}

// openJournal opens the journal selected by --db. A journal that cannot be
// opened is logged and play continues without recording.
func openJournal(logger *log.Logger) storage.Journal {
	j, err := factory.OpenJournal(flagDBPath)
	if err != nil {
		logger.Warn("could not open journal, sessions will not be recorded", "db", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open journal: %v\n", err)
		return nil
	}
	logger.Debug("journal opened", "type", factory.JournalType(flagDBPath))
	return j
}

func closeJournal(j storage.Journal, logger *log.Logger) {
	if j == nil {
		return
	}
	if err := j.Close(); err != nil {
		logger.Warn("could not close journal", "error", err)
	}
}

// runtimeConfig sizes the board to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// bell returns where the match cue is written.
func bell() io.Writer {
	if flagNoBell {
		return nil
	}
	return os.Stdout
}
