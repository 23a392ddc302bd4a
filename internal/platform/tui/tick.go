// Package tui provides the Bubble Tea integration for the pairs game.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// ClockTickMsg advances the session clock by one second. Gen identifies the
// deal the timer was armed for, so ticks from an abandoned deal are dropped.
type ClockTickMsg struct {
	Gen uuid.UUID
}

// ResolveMsg ends the reveal pause and compares the two pending tiles.
type ResolveMsg struct {
	Gen uuid.UUID
}

// clockCmd returns a command that ticks the session clock after one second.
func clockCmd(gen uuid.UUID) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return ClockTickMsg{Gen: gen}
	})
}

// resolveCmd returns a command that fires once the reveal delay has passed.
func resolveCmd(delay time.Duration, gen uuid.UUID) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ResolveMsg{Gen: gen}
	})
}
