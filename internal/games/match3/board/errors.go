package board

import "errors"

// Invalid configuration. Reported before any board exists.
var (
	ErrInvalidSide     = errors.New("board: side must be at least 3")
	ErrPaletteTooSmall = errors.New("board: palette needs at least 3 symbols")
	ErrDuplicateSymbol = errors.New("board: duplicate palette symbol")
)

// Contract violations. A grid produced by this package never triggers these.
var (
	ErrGridSize        = errors.New("board: grid length does not match side")
	ErrInvalidCell     = errors.New("board: cell is not a palette symbol")
	ErrInvalidPosition = errors.New("board: position out of range")
)

// Chain controller errors.
var (
	ErrBusy       = errors.New("board: swipe rejected while a chain is resolving")
	ErrChainLimit = errors.New("board: chain exceeded step limit")
)
