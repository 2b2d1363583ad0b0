// Package registry maps variant IDs such as "match3" or "match3_7x7" to
// board factories. Variants register from init(), so importing a game
// package is enough to make it playable from the CLI and the menu.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// ErrUnknownVariant is returned by Create for an unregistered ID.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is a playable board driven by the terminal platform. It never sees
// keys or wall-clock time: the platform turns keys into InputFrames and
// calls Step once per tick.
type Game interface {
	// ID is the variant ID. Journal sessions are stored under it.
	ID() string

	// Title is shown in the menu and the HUD.
	Title() string

	// Reset deals a fresh board from cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies one tick of input. Swipes and matches come back as events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered variant for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new, not yet dealt, board.
type Factory func() Game

type variant struct {
	title   string
	factory Factory
}

var (
	mu       sync.RWMutex
	variants = make(map[string]variant)
)

// Register adds a variant. Registering an ID twice is a programming error
// and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	variants[id] = variant{title: f().Title(), factory: f}
}

// List returns all variants ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(variants))
	for id, v := range variants {
		result = append(result, GameInfo{ID: id, Title: v.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a board for the variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	v, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return v.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := variants[id]
	return ok
}
