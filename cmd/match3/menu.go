package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, Tab to open
the replay journal. After a board is closed, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Replay journal
  Q            - Quit

Examples:
  match3 menu
  match3 menu --fps 30
  match3 menu --db ./journal.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	journal := openJournal(logger)
	defer closeJournal(journal, logger)

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsJournal {
			goBack, jErr := tui.RunJournal(journal, cfg.ScreenW, cfg.ScreenH)
			if jErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", jErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create variant", "variant", menuResult.GameID, "error", err)
			continue
		}

		// The first board honours --seed, later ones are fresh.
		opts := tui.Options{Journal: journal, Logger: logger, Bell: bell()}
		if err := tui.Run(game, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
		}
		cfg.Seed = time.Now().UnixNano()
	}
}
