// Package tui runs a flappy session inside a Bubble Tea program.
// It owns the frame timer, maps keys and mouse clicks to game actions and
// converts the session's screen buffer to styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers one TickMsg after a frame.
// The loop continues only while Update keeps returning it.
func tickCmd(rt core.RuntimeConfig) tea.Cmd {
	return tea.Tick(rt.FrameDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
