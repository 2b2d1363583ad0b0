// Package match3 is the terminal match-3 game built on the board engine.
package match3

import (
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Package-level variables for config
var (
	activeConfig = config.DefaultMatch3Config()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.Match3Config) {
	activeConfig = cfg
}

// ActiveConfig returns the configuration new games will use.
func ActiveConfig() config.Match3Config {
	return activeConfig
}

// Game implements the match-3 board on a fixed tick.
type Game struct {
	id    string
	title string
	side  int // 0 = board.side from config

	cfg     config.Match3Config
	palette board.Palette
	ctrl    *board.Controller
	seed    int64
	tick    uint64
	err     error // configuration error, shown instead of the board

	// Screen dimensions
	screenW int
	screenH int

	cursor  board.Position
	grabbed bool
	paused  bool

	// What is on screen while a chain plays out.
	shown    board.Snapshot
	hold     int
	pending  *core.SwipeEvent
	chain    int
	chainErr error
	tooSmall bool
}

// New creates a game whose side comes from the config.
func New() *Game {
	return &Game{id: "match3", title: "Match-3"}
}

// NewSized creates a game with a fixed side.
func NewSized(id, title string, side int) *Game {
	return &Game{id: id, title: title, side: side}
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_7x7", func() registry.Game {
		return NewSized("match3_7x7", "Match-3 (7x7)", 7)
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset deals a new board from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = activeConfig
	if g.side > 0 {
		g.cfg = g.cfg.WithSide(g.side)
	}
	g.seed = cfg.Seed
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursor = 0
	g.grabbed = false
	g.paused = false
	g.hold = 0
	g.pending = nil
	g.chain = 0
	g.chainErr = nil
	g.err = nil
	g.ctrl = nil

	g.palette, g.err = board.NewPalette(g.cfg.Names()...)
	if g.err == nil {
		g.ctrl, g.err = board.Deal(g.cfg.Board.Side, g.palette, core.NewRandom(g.seed),
			board.WithMaxChainSteps(g.cfg.Resolution.MaxChainSteps))
	}
	if g.err == nil {
		g.shown = board.Snapshot{Grid: g.ctrl.Grid(), Final: true}
	}

	g.checkScreenSize()
}

// Resize updates the screen size without dealing a new board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Info describes the dealt board for the replay journal.
func (g *Game) Info() core.BoardInfo {
	return core.BoardInfo{
		Variant:       g.id,
		Seed:          g.seed,
		Side:          g.cfg.Board.Side,
		Palette:       g.cfg.Names(),
		MaxChainSteps: g.cfg.Resolution.MaxChainSteps,
	}
}

func (g *Game) checkScreenSize() {
	w, h := boardSize(g.cfg.Board.Side)
	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight+footerHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.err != nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if g.pending != nil {
		events = g.advance(events)
	}
	events = g.handleInput(in, events)

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) handleInput(in core.InputFrame, events []core.Event) []core.Event {
	if in.Has(core.ActionBack) {
		g.grabbed = false
	}
	if in.Has(core.ActionConfirm) {
		g.grabbed = !g.grabbed
	}

	dir, ok := inputDirection(in)
	if !ok {
		return events
	}
	if !g.grabbed {
		if to, ok := board.Neighbor(g.cfg.Board.Side, g.cursor, dir); ok {
			g.cursor = to
		}
		return events
	}
	return g.swipe(dir, events)
}

func inputDirection(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.DirUp, true
	case in.Has(core.ActionDown):
		return board.DirDown, true
	case in.Has(core.ActionLeft):
		return board.DirLeft, true
	case in.Has(core.ActionRight):
		return board.DirRight, true
	}
	return 0, false
}

// swipe submits the grabbed tile. A swipe during a chain is dropped.
func (g *Game) swipe(dir board.Direction, events []core.Event) []core.Event {
	g.grabbed = false
	from := g.cursor

	accepted, err := g.ctrl.Submit(from, dir)
	if err != nil {
		return events
	}

	ev := core.SwipeEvent{From: int(from), Direction: dir.String(), Accepted: accepted}
	if !accepted {
		ev.Result = g.ctrl.Grid().Encode()
		return append(events, core.Event{Type: core.EventSwipe, Swipe: ev})
	}

	events = append(events, core.Event{Type: core.EventMatch})
	g.pending = &ev
	g.chain = 0
	g.chainErr = nil
	if s, ok := g.ctrl.Next(); ok {
		g.shown = s
	}
	g.hold = g.cfg.Pacing.MarkTicks
	if g.hold == 0 {
		events = g.pull(events)
	}
	return events
}

// advance counts down the visible snapshot and pulls the next one when
// its time is up.
func (g *Game) advance(events []core.Event) []core.Event {
	if g.hold > 0 {
		g.hold--
	}
	if g.hold > 0 {
		return events
	}
	return g.pull(events)
}

// pull takes snapshots from the controller until one has to stay on screen
// or the chain ends.
func (g *Game) pull(events []core.Event) []core.Event {
	for g.ctrl.State() == board.StateResolving {
		s, ok := g.ctrl.Next()
		if !ok {
			break
		}
		g.shown = s
		g.chain = s.Step
		if s.Final {
			break
		}
		g.hold = g.cfg.Pacing.RefillTicks + g.cfg.Pacing.MarkTicks
		if g.hold > 0 {
			return events
		}
	}

	// Controller is idle again.
	g.hold = 0
	g.chainErr = g.ctrl.Err()
	g.shown = board.Snapshot{Grid: g.ctrl.Grid(), Step: g.chain, Final: true}
	ev := *g.pending
	ev.ChainSteps = g.chain
	ev.Result = g.shown.Grid.Encode()
	g.pending = nil
	return append(events, core.Event{Type: core.EventSwipe, Swipe: ev})
}

// Settle runs a chain that is still on screen to its end and returns the
// resulting events. Callers use it before closing a session so the final
// grid and the journaled swipes agree.
func (g *Game) Settle() []core.Event {
	var events []core.Event
	for g.pending != nil {
		g.hold = 0
		events = g.pull(events)
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused:    g.paused || g.tooSmall,
		Resolving: g.pending != nil,
		Chain:     g.chain,
	}
}

// Err returns the configuration error that prevented dealing, if any.
func (g *Game) Err() error {
	return g.err
}

// Board returns the encoded grid currently on screen.
func (g *Game) Board() string {
	if g.err != nil {
		return ""
	}
	return g.shown.Grid.Encode()
}
