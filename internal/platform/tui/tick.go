// Package tui provides the Bubble Tea integration for the tetris platform.
// It handles the terminal UI loop, key bindings, the help footer and
// the fixed-rate tick that drives Game.Step.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one frame from now.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
