// Package tui provides the Bubble Tea host for the J/LY games.
// It owns the terminal: the fixed-rate tick loop, key and mouse mapping,
// score saving, the menu and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jly-arcade/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval is the wall-clock time between ticks.
// A non-positive rate falls back to the default.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the given rate.
// The game advances by its own fixed dt per tick, so a slow terminal slows the
// game down instead of making it skip.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
