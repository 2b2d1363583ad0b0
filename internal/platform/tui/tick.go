// Package tui runs boards in the terminal with Bubble Tea: it maps keys to
// input frames, paces ticks, records swipes in the replay journal and
// hosts the variant menu and the journal browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one Step of the board. Snapshot pacing is counted in these.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(tickRate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
