package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Paused    bool // Whether the game is paused
	Resolving bool // A chain is being played out; input is not accepted
	Chain     int  // Collapse steps of the current or last chain
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventNone EventType = iota
	// EventMatch fires once when a swipe is accepted. The platform uses it
	// as the cue for match feedback such as a sound.
	EventMatch
	// EventSwipe fires once a swipe has been fully handled: immediately for
	// a rejected swipe, after the chain settles for an accepted one.
	EventSwipe
)

// SwipeEvent describes a handled swipe.
type SwipeEvent struct {
	From       int
	Direction  string
	Accepted   bool
	ChainSteps int
	Result     string // encoded board after the swipe
}

// Event is emitted by Game.Step.
type Event struct {
	Type  EventType
	Swipe SwipeEvent
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// BoardInfo describes how a board was dealt, enough to deal it again.
type BoardInfo struct {
	Variant       string
	Seed          int64
	Side          int
	Palette       []string
	MaxChainSteps int // 0 = engine default
}
