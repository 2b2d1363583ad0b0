package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-match3/internal/replay"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// Journal browser layout constants
const (
	minWidthForDetails = 90  // Minimum width to show the details panel
	detailsWidth       = 30  // Width of the details panel
	maxSessions        = 100 // Max sessions to load
)

// JournalKeyMap defines the key bindings for the journal browser.
type JournalKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Verify  key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Verify, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter/v", "verify"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing recorded sessions.
type JournalModel struct {
	journal     storage.Journal
	sessions    []storage.Session
	verified    map[string]replay.Report
	table       table.Model
	help        help.Model
	keys        JournalKeyMap
	status      string
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showDetails bool
	now         func() time.Time
}

// NewJournalModel creates a new journal browser.
func NewJournalModel(j storage.Journal, width, height int) JournalModel {
	h := help.New()
	h.ShowAll = false

	m := JournalModel{
		journal:     j,
		verified:    make(map[string]replay.Report),
		keys:        DefaultJournalKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showDetails: width >= minWidthForDetails,
		now:         time.Now,
	}

	m.table = m.createTable()
	m.loadSessions()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Session", Width: 8},
		{Title: "Board", Width: 14},
		{Title: "Swipes", Width: 6},
		{Title: "Started", Width: 14},
		{Title: "Status", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions reloads the most recent sessions from the journal.
func (m *JournalModel) loadSessions() {
	if m.journal == nil {
		m.sessions = nil
		m.status = "no journal configured"
		m.updateTableRows()
		return
	}

	sessions, err := m.journal.RecentSessions(context.Background(), maxSessions)
	if err != nil {
		m.sessions = nil
		m.status = "cannot load sessions: " + err.Error()
	} else {
		m.sessions = sessions
		m.status = fmt.Sprintf("%d sessions", len(sessions))
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *JournalModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			shortID(s.ID),
			fmt.Sprintf("%s %dx%d", s.Variant, s.Side, s.Side),
			strconv.Itoa(s.SwipeCount),
			humanize.RelTime(s.StartedAt, m.now(), "ago", "from now"),
			m.sessionStatus(s),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *JournalModel) sessionStatus(s storage.Session) string {
	if rep, ok := m.verified[s.ID]; ok {
		if rep.OK() {
			return "ok"
		}
		return "DIVERGED"
	}
	if !s.Finished() {
		return "open"
	}
	return "done"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// verifySelected replays the highlighted session.
func (m *JournalModel) verifySelected() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return
	}
	sess := m.sessions[i]

	rep, err := replay.Verify(context.Background(), m.journal, sess.ID)
	if err != nil {
		m.status = fmt.Sprintf("%s: %v", shortID(sess.ID), err)
		return
	}
	m.verified[sess.ID] = rep
	if rep.OK() {
		m.status = fmt.Sprintf("%s: %d swipes replayed, all match", shortID(sess.ID), rep.Swipes)
	} else {
		m.status = fmt.Sprintf("%s: %s", shortID(sess.ID), rep.Mismatches[0])
	}

	cursor := m.table.Cursor()
	m.updateTableRows()
	m.table.SetCursor(cursor)
}

// Init initializes the journal browser.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal browser.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.loadSessions()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetails = m.width >= minWidthForDetails
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal browser.
func (m JournalModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAY JOURNAL", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableContent := m.table.View()
	if len(m.sessions) == 0 {
		tableContent = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("No sessions recorded yet")
	}
	tableRendered := tableStyle.Render(tableContent)

	if m.showDetails {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", m.renderDetails()))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderDetails shows the header of the highlighted session.
func (m JournalModel) renderDetails() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(detailsWidth).
		Padding(0, 1)

	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return style.Render("Details\n")
	}
	s := m.sessions[i]

	var d strings.Builder
	d.WriteString("Details\n")
	d.WriteString(strings.Repeat("-", detailsWidth-4))
	d.WriteString("\n")
	fmt.Fprintf(&d, "id      %s\n", shortID(s.ID))
	fmt.Fprintf(&d, "seed    %d\n", s.Seed)
	fmt.Fprintf(&d, "palette %d symbols\n", len(s.Palette))
	fmt.Fprintf(&d, "swipes  %d\n", s.SwipeCount)
	fmt.Fprintf(&d, "started %s\n", s.StartedAt.Local().Format("Jan 02 15:04"))
	if s.Finished() {
		fmt.Fprintf(&d, "played  %s\n", humanize.RelTime(s.StartedAt, s.FinishedAt, "", ""))
	}
	return style.Render(d.String())
}

// IsGoingBack returns true if user wants to go back to menu.
func (m JournalModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m JournalModel) IsQuitting() bool {
	return m.quitting
}

// RunJournal runs the journal browser. It returns true if the user went
// back rather than quitting.
func RunJournal(j storage.Journal, width, height int) (bool, error) {
	p := tea.NewProgram(
		NewJournalModel(j, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(JournalModel)
	return ok && m.IsGoingBack(), nil
}
