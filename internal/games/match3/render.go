package match3

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

const (
	tileWidth    = 3 // bracket, glyph, bracket
	hudHeight    = 2
	footerHeight = 2
)

// boardSize returns the framed board size in characters.
func boardSize(side int) (w, h int) {
	return side*tileWidth + 2, side + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.drawCentered(dst, g.screenH/2, "Cannot deal board", g.err.Error())
		return
	}
	if g.tooSmall {
		g.drawCentered(dst, g.screenH/2, "Window too small", "Please resize terminal")
		return
	}

	boardW, boardH := boardSize(g.cfg.Board.Side)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)
	g.renderTiles(dst, boardX+1, boardY+1)
	g.renderFooter(dst, boardY+boardH)

	if g.paused {
		g.drawCentered(dst, boardY+boardH/2, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.title
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	var status string
	switch {
	case g.pending != nil:
		status = fmt.Sprintf("chain %d", g.shown.Step)
	case g.grabbed:
		status = "swipe with arrows"
	default:
		status = fmt.Sprintf("seed %d", g.seed)
	}
	dst.DrawTextColored(boardX, 1, status, core.ColorCyan)
}

func (g *Game) renderTiles(dst *core.Screen, x0, y0 int) {
	side := g.cfg.Board.Side
	grid := g.shown.Grid

	for i := range grid.Len() {
		p := board.Position(i)
		row, col := board.RowCol(side, p)
		x := x0 + col*tileWidth
		y := y0 + row

		glyph, color := g.glyph(grid.At(p))
		marked := slices.Contains(g.shown.Marked, p)

		left, right := ' ', ' '
		bracketColor := core.ColorDefault
		switch {
		case p == g.cursor && g.grabbed:
			left, right = '{', '}'
			bracketColor = core.ColorBrightGreen
		case p == g.cursor:
			left, right = '[', ']'
			bracketColor = core.ColorBrightWhite
		case marked:
			left, right = '(', ')'
			bracketColor = core.ColorBrightYellow
		}
		if marked {
			color = core.ColorBrightYellow
		}

		dst.SetColored(x, y, left, bracketColor)
		dst.SetColored(x+1, y, glyph, color)
		dst.SetColored(x+2, y, right, bracketColor)
	}
}

// glyph looks up how a cell is drawn. Empty cells are blank.
func (g *Game) glyph(c board.Cell) (rune, core.Color) {
	if c.IsEmpty() || int(c) > len(g.cfg.Palette) {
		return ' ', core.ColorDefault
	}
	sym := g.cfg.Palette[int(c)-1]
	return sym.Rune(), sym.ColorValue()
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.chainErr != nil {
		dst.DrawTextColored(0, y, "chain stopped: "+g.chainErr.Error(), core.ColorRed)
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

// drawCentered draws lines centered around row y.
func (g *Game) drawCentered(dst *core.Screen, y int, lines ...string) {
	for i, line := range lines {
		dst.DrawTextCentered(y+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Space: Grab | Esc: Release | P: Pause | R: New board | Q: Quit"
}
