package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// journaled is implemented by games whose boards can be recorded.
type journaled interface {
	Info() core.BoardInfo
	Board() string
}

// settler is implemented by games that can finish a running chain at once.
type settler interface {
	Settle() []core.Event
}

// resizer is implemented by games that keep their board on resize.
type resizer interface {
	Resize(w, h int)
}

// Options are the collaborators of a game session. All are optional.
type Options struct {
	Journal storage.Journal
	Logger  *log.Logger
	Bell    io.Writer // receives the audio cue on a successful swap
}

// Model is the Bubble Tea model for running a board.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	journal    storage.Journal
	logger     *log.Logger
	bell       io.Writer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	sessionID  string
	quitting   bool
}

// NewModel creates a new Bubble Tea model and deals the first board.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		journal:    opts.Journal,
		logger:     logger,
		bell:       opts.Bell,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.startSession()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishSession()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize are dealt again at the new size.
	m.restart(m.config.Seed)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.restart(time.Now().UnixNano())
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventMatch:
			m.ringBell()
		case core.EventSwipe:
			m.recordSwipe(ev.Swipe)
		}
	}
}

func (m *Model) ringBell() {
	if m.bell == nil {
		return
	}
	if _, err := io.WriteString(m.bell, "\a"); err != nil {
		m.logger.Debug("bell failed", "error", err)
	}
}

// restart closes the current session and deals a new board.
func (m *Model) restart(seed int64) {
	m.finishSession()
	m.config.Seed = seed
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.startSession()
}

func (m *Model) startSession() {
	m.sessionID = ""
	j, ok := m.game.(journaled)
	if m.journal == nil || !ok {
		return
	}

	sess, err := m.journal.StartSession(context.Background(), j.Info(), j.Board())
	if err != nil {
		m.logger.Warn("could not start journal session", "error", err)
		return
	}
	m.sessionID = sess.ID
	m.logger.Info("session started", "session", sess.ID, "variant", sess.Variant, "seed", sess.Seed)
}

func (m *Model) recordSwipe(ev core.SwipeEvent) {
	if m.sessionID == "" {
		return
	}
	err := m.journal.AppendSwipe(context.Background(), m.sessionID, storage.SwipeFromEvent(ev))
	if err != nil {
		m.logger.Warn("could not record swipe", "session", m.sessionID, "error", err)
		return
	}
	m.logger.Debug("swipe", "from", ev.From, "dir", ev.Direction, "accepted", ev.Accepted, "chain", ev.ChainSteps)
}

func (m *Model) finishSession() {
	if m.sessionID == "" {
		return
	}
	// A swipe is journaled only once its chain ends.
	if s, ok := m.game.(settler); ok {
		m.handleEvents(s.Settle())
	}
	j := m.game.(journaled)
	if err := m.journal.FinishSession(context.Background(), m.sessionID, j.Board()); err != nil {
		m.logger.Warn("could not finish journal session", "session", m.sessionID, "error", err)
	} else {
		m.logger.Info("session finished", "session", m.sessionID)
	}
	m.sessionID = ""
}

// SessionID returns the journal session of the current board, if any.
func (m Model) SessionID() string {
	return m.sessionID
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".match3", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		// Interrupted programs never saw a quit key.
		m.finishSession()
	}
	return err
}
