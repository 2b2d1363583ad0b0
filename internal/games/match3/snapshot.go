package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle        GameStateType = "idle"
	StateGrabbed     GameStateType = "grabbed"
	StateResolving   GameStateType = "resolving"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Seed    int64
	Variant string
	Board   string // encoded grid on screen
	Marked  []int
	Cursor  int
	Chain   int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateIdle
	switch {
	case g.err != nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.pending != nil:
		state = StateResolving
	case g.grabbed:
		state = StateGrabbed
	}

	var marked []int
	for _, p := range g.shown.Marked {
		marked = append(marked, int(p))
	}

	s := Snapshot{
		Tick:    g.tick,
		Seed:    g.seed,
		Variant: g.id,
		Marked:  marked,
		Cursor:  int(g.cursor),
		Chain:   g.chain,
		State:   state,
	}
	if g.err == nil {
		s.Board = g.shown.Grid.Encode()
	}
	return s
}
