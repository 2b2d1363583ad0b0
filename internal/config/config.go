// Package config provides YAML-based board configuration loading for the
// match3 platform.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// ErrInvalidConfig is returned by Validate and by Load for a config that
// cannot produce a playable board.
var ErrInvalidConfig = errors.New("config: invalid")

const (
	minSide    = 3
	minSymbols = 3
	maxSymbols = 26
)

// Match3Config contains all configuration for the match3 board.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Palette    []SymbolConfig   `yaml:"palette"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Resolution ResolutionConfig `yaml:"resolution"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Side int `yaml:"side"`
}

// SymbolConfig defines one palette symbol and how it is drawn.
type SymbolConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// PacingConfig defines how long each chain snapshot stays on screen, in ticks.
type PacingConfig struct {
	MarkTicks   int `yaml:"mark_ticks"`   // marked runs visible
	RefillTicks int `yaml:"refill_ticks"` // collapsed and refilled board visible
}

// ResolutionConfig bounds chain resolution.
type ResolutionConfig struct {
	MaxChainSteps int `yaml:"max_chain_steps"` // 0 = side*side*16
}

// Names returns the palette symbol names in order.
func (c Match3Config) Names() []string {
	names := make([]string, len(c.Palette))
	for i, s := range c.Palette {
		names[i] = s.Name
	}
	return names
}

// Rune returns the first rune of a symbol's glyph.
func (s SymbolConfig) Rune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	return r
}

// ColorValue returns the parsed color, or ColorDefault when unknown.
func (s SymbolConfig) ColorValue() core.Color {
	c, _ := core.ParseColor(s.Color)
	return c
}

// Validate reports the first problem that makes the config unusable.
func (c Match3Config) Validate() error {
	if c.Board.Side < minSide {
		return fmt.Errorf("%w: board.side %d is below %d", ErrInvalidConfig, c.Board.Side, minSide)
	}
	if n := len(c.Palette); n < minSymbols || n > maxSymbols {
		return fmt.Errorf("%w: palette has %d symbols, want %d..%d", ErrInvalidConfig, n, minSymbols, maxSymbols)
	}

	seen := make(map[string]struct{}, len(c.Palette))
	for i, s := range c.Palette {
		if s.Name == "" {
			return fmt.Errorf("%w: palette[%d] has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = struct{}{}

		if utf8.RuneCountInString(s.Glyph) != 1 {
			return fmt.Errorf("%w: symbol %q glyph must be one character", ErrInvalidConfig, s.Name)
		}
		if s.Color != "" {
			if _, ok := core.ParseColor(s.Color); !ok {
				return fmt.Errorf("%w: symbol %q has unknown color %q", ErrInvalidConfig, s.Name, s.Color)
			}
		}
	}

	if c.Pacing.MarkTicks < 0 || c.Pacing.RefillTicks < 0 {
		return fmt.Errorf("%w: pacing ticks must not be negative", ErrInvalidConfig)
	}
	if c.Resolution.MaxChainSteps < 0 {
		return fmt.Errorf("%w: resolution.max_chain_steps must not be negative", ErrInvalidConfig)
	}
	return nil
}
