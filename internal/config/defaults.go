package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Side: 6,
		},
		Palette: []SymbolConfig{
			{Name: "dog", Glyph: "@", Color: "orange"},
			{Name: "cat", Glyph: "&", Color: "bright_yellow"},
			{Name: "mouse", Glyph: "%", Color: "gray"},
			{Name: "rabbit", Glyph: "#", Color: "bright_white"},
			{Name: "fox", Glyph: "$", Color: "bright_red"},
			{Name: "bear", Glyph: "*", Color: "bright_magenta"},
		},
		Pacing: PacingConfig{
			MarkTicks:   18,
			RefillTicks: 12,
		},
	}
}
