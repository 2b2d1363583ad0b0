package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
)

var (
	flagSide  int
	flagCheck bool
	flagPlain bool
)

var errBoardHasRuns = errors.New("generated board contains runs")

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a generated board",
	Long: `Deal a board from the configured palette and print it.

With --check the board is scanned for runs of three and every possible
swipe is tried; the command fails if a run is found.

Examples:
  match3 board --seed 42
  match3 board --seed 42 --side 7 --check
  match3 board --plain | tail -n 1`,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().IntVar(&flagSide, "side", 0, "Board side (0 = from config)")
	boardCmd.Flags().BoolVar(&flagCheck, "check", false, "Check the board for runs and count productive swipes")
	boardCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print glyphs without colors")
}

func runBoard(_ *cobra.Command, _ []string) error {
	cfg := match3.ActiveConfig()
	if flagSide != 0 {
		cfg = cfg.WithSide(flagSide)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	palette, err := board.NewPalette(cfg.Names()...)
	if err != nil {
		return err
	}

	seed := core.ResolveSeed(flagSeed)
	grid, err := board.Generate(cfg.Board.Side, palette, core.NewRandom(seed))
	if err != nil {
		return fmt.Errorf("failed to generate board: %w", err)
	}

	fmt.Printf("Seed: %d  Side: %d  Symbols: %d\n\n", seed, grid.Side(), palette.Len())
	fmt.Print(formatGrid(grid, cfg))
	fmt.Println()
	fmt.Println(grid.Encode())

	if !flagCheck {
		return nil
	}

	fmt.Println()
	if runs := board.FindRuns(grid); len(runs) > 0 {
		fmt.Printf("Runs:               %v\n", runs)
		return errBoardHasRuns
	}
	fmt.Println("Runs:               none")
	fmt.Printf("Productive swipes:  %d\n", countProductive(grid))
	return nil
}

func formatGrid(grid board.Grid, cfg config.Match3Config) string {
	var b strings.Builder
	for row := range grid.Side() {
		b.WriteString("  ")
		for col := range grid.Side() {
			c := grid.At(board.At(grid.Side(), row, col))
			sym := cfg.Palette[int(c)-1]
			glyph := string(sym.Rune())
			if !flagPlain {
				glyph = tui.Colorize(glyph, sym.ColorValue())
			}
			b.WriteString(glyph)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// countProductive counts the swipes that would be accepted. Each pair of
// neighbours is tried once.
func countProductive(grid board.Grid) int {
	n := 0
	for p := range grid.Len() {
		for _, dir := range []board.Direction{board.DirRight, board.DirDown} {
			if board.TrySwap(grid, board.Position(p), dir).Accepted {
				n++
			}
		}
	}
	return n
}
