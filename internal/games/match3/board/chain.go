package board

import (
	"fmt"
	"iter"
)

// State is the chain controller state.
type State int

const (
	StateIdle State = iota
	StateSwapping
	StateResolving
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSwapping:
		return "swapping"
	case StateResolving:
		return "resolving"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is one externally visible step of a resolution sequence.
type Snapshot struct {
	Grid   Grid       // copy, safe to keep
	Marked []Position // positions about to be cleared, ascending
	Step   int        // 0 for the swapped grid, then one per collapse
	Final  bool       // stable grid, no marks
}

// Option configures a Controller.
type Option func(*Controller)

// WithMaxChainSteps overrides the collapse bound. n <= 0 keeps the default.
func WithMaxChainSteps(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// Controller owns a grid and drives swap -> detect -> collapse until the
// board is stable. It is not safe for concurrent use; callers serialize
// access the same way they serialize input.
//
// A swipe submitted while a chain is still resolving is rejected with
// ErrBusy. Swipes are never queued.
type Controller struct {
	grid     Grid
	palette  Palette
	rng      Random
	state    State
	marked   []Position
	step     int
	started  bool
	maxSteps int
	err      error
}

// NewController validates the grid against the palette and takes ownership
// of a private copy.
func NewController(g Grid, palette Palette, rng Random, opts ...Option) (*Controller, error) {
	if palette.Len() < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrPaletteTooSmall, palette.Len())
	}
	if err := g.Validate(palette); err != nil {
		return nil, err
	}
	c := &Controller{
		grid:     g.Clone(),
		palette:  palette,
		rng:      rng,
		maxSteps: g.side * g.side * 16,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// Grid returns a copy of the current grid.
func (c *Controller) Grid() Grid {
	return c.grid.Clone()
}

// Err returns the error that ended the last chain early, if any.
func (c *Controller) Err() error {
	return c.err
}

// Submit applies a swipe intent. It returns true if the swap produced a
// run, in which case the controller enters StateResolving and Next yields
// the resolution steps. Rejected swipes leave the grid untouched.
func (c *Controller) Submit(from Position, dir Direction) (bool, error) {
	if c.state != StateIdle {
		return false, ErrBusy
	}
	if !c.grid.inBounds(from) {
		return false, fmt.Errorf("%w: %d", ErrInvalidPosition, from)
	}

	c.state = StateSwapping
	res := TrySwap(c.grid, from, dir)
	if !res.Accepted {
		c.state = StateIdle
		return false, nil
	}

	c.grid = res.Grid
	c.marked = res.Matches
	c.step = 0
	c.started = false
	c.err = nil
	c.state = StateResolving
	return true, nil
}

// Next advances the resolution by one visible step. The first call after an
// accepted swipe returns the swapped grid with its runs marked; each later
// call clears the marks, collapses, and returns the result with any new
// runs marked. The snapshot with Final set is the last one; after it, ok
// is false until the next accepted swipe.
func (c *Controller) Next() (snap Snapshot, ok bool) {
	if c.state != StateResolving {
		return Snapshot{}, false
	}

	if !c.started {
		c.started = true
		return c.snapshot(false), true
	}

	next, err := Collapse(c.grid, c.marked, c.palette, c.rng)
	if err != nil {
		c.finish(err)
		return Snapshot{}, false
	}
	c.grid = next
	c.step++
	c.marked = FindRuns(c.grid)

	if len(c.marked) == 0 {
		c.finish(nil)
		return c.snapshot(true), true
	}
	if c.step >= c.maxSteps {
		// Stop with the remaining runs in place; Err reports why.
		c.finish(fmt.Errorf("%w: %d", ErrChainLimit, c.maxSteps))
		return c.snapshot(true), true
	}
	return c.snapshot(false), true
}

// Snapshots returns the remaining steps of the current resolution as a
// lazily evaluated sequence. Breaking out early leaves the controller in
// StateResolving; a later call resumes where it stopped.
func (c *Controller) Snapshots() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for {
			s, ok := c.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// SubmitSwipe is Submit followed by Snapshots. A rejected swipe yields an
// empty sequence.
func (c *Controller) SubmitSwipe(from Position, dir Direction) (iter.Seq[Snapshot], error) {
	if _, err := c.Submit(from, dir); err != nil {
		return nil, err
	}
	return c.Snapshots(), nil
}

// Resolve drains the current resolution and returns every step.
func (c *Controller) Resolve() []Snapshot {
	var out []Snapshot
	for s := range c.Snapshots() {
		out = append(out, s)
	}
	return out
}

func (c *Controller) snapshot(final bool) Snapshot {
	var marked []Position
	if !final {
		marked = append(marked, c.marked...)
	}
	return Snapshot{
		Grid:   c.grid.Clone(),
		Marked: marked,
		Step:   c.step,
		Final:  final,
	}
}

func (c *Controller) finish(err error) {
	c.err = err
	c.marked = nil
	c.started = false
	c.state = StateIdle
}
