package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a board variant",
	Long: `Start playing the specified board variant.

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Space/Enter       - Grab the tile under the cursor
  Arrow (grabbed)   - Swipe the grabbed tile
  Esc/B             - Release the grab
  P                 - Pause
  R                 - Deal a new board
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  match3 play match3
  match3 play match3_7x7 --seed 42
  match3 play match3 --config ./my-match3.yaml --db memory`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := args[0]

	if !registry.Exists(variant) {
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available variants.")
		return fmt.Errorf("unknown variant %q", variant)
	}

	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("failed to create variant: %w", err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	journal := openJournal(logger)
	defer closeJournal(journal, logger)

	opts := tui.Options{Journal: journal, Logger: logger, Bell: bell()}
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("failed to run board: %w", err)
	}
	return nil
}
