package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var embedded Match3Config
	require.NoError(t, yaml.Unmarshal(defaultMatch3YAML, &embedded))

	assert.Equal(t, DefaultMatch3Config(), embedded)
	assert.NoError(t, embedded.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
board:
  side: 7
palette:
  - {name: a, glyph: A, color: red}
  - {name: b, glyph: B, color: green}
  - {name: c, glyph: C, color: blue}
pacing:
  mark_ticks: 0
  refill_ticks: 0
resolution:
  max_chain_steps: 50
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Board.Side)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Names())
	assert.Equal(t, 50, cfg.Resolution.MaxChainSteps)
	assert.Zero(t, cfg.Pacing.MarkTicks)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [oops"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)

	small := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(small, []byte("board: {side: 2}\n"), 0o600))
	_, err = Load(small)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMatch3Config(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	cfg := DefaultMatch3Config().WithSide(8)
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join("configs", "match3.yaml"), data, 0o600))

	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Board.Side)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
	}{
		{"side too small", func(c *Match3Config) { c.Board.Side = 2 }},
		{"palette too small", func(c *Match3Config) { c.Palette = c.Palette[:2] }},
		{"duplicate name", func(c *Match3Config) { c.Palette[1].Name = c.Palette[0].Name }},
		{"empty name", func(c *Match3Config) { c.Palette[0].Name = "" }},
		{"empty glyph", func(c *Match3Config) { c.Palette[2].Glyph = "" }},
		{"long glyph", func(c *Match3Config) { c.Palette[2].Glyph = "ab" }},
		{"unknown color", func(c *Match3Config) { c.Palette[3].Color = "plaid" }},
		{"negative pacing", func(c *Match3Config) { c.Pacing.MarkTicks = -1 }},
		{"negative chain bound", func(c *Match3Config) { c.Resolution.MaxChainSteps = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSymbolAccessors(t *testing.T) {
	s := SymbolConfig{Name: "fox", Glyph: "$", Color: "bright_red"}
	assert.Equal(t, '$', s.Rune())
	assert.NotZero(t, s.ColorValue())

	assert.Zero(t, SymbolConfig{Color: "nope"}.ColorValue())
}

func TestWithSideCopiesPalette(t *testing.T) {
	base := DefaultMatch3Config()
	c := base.WithSide(9)
	c.Palette[0].Name = "changed"

	assert.Equal(t, 6, base.Board.Side)
	assert.Equal(t, "dog", base.Palette[0].Name)
}
