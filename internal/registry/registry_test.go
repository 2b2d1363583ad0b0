package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	require.True(t, Exists("zz_stub"))

	g, err := Create("aa_stub")
	require.NoError(t, err)
	assert.Equal(t, "aa_stub", g.ID())

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz_stub" {
			assert.Equal(t, "Stub zz_stub", info.Title)
		}
	}
	assert.IsIncreasing(t, ids)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	assert.Panics(t, func() {
		Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	})
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.False(t, Exists("nope"))
}
