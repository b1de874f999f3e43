// Package tui runs the game inside Bubble Tea, locally or per SSH session.
// It maps keys to actions, drives the simulation from tick messages and
// renders the screen buffer with lipgloss colours.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given frame rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = core.DefaultTickRate
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
