// Package tui drives the runner in a terminal: the Bubble Tea loop,
// key-to-action mapping, frame compositing, the scoreboard views and
// the SSH server all live here.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries one simulation tick through the Bubble Tea loop.
type TickMsg time.Time

// tickCmd schedules the next tick. A non-positive rate falls back to
// 60 ticks per second rather than dividing by zero.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
