// Package tui provides the Bubble Tea integration for the Othello game.
// It handles the terminal UI loop, input mapping, and engine orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-othello/internal/games/othello"
)

// ThinkMsg is sent when the pause before an engine reply has elapsed.
type ThinkMsg struct {
	Gen int // game generation the delay was scheduled for
}

// EngineMsg carries a finished engine search back to the update loop.
type EngineMsg struct {
	Gen    int
	Result othello.EngineResult
}

// thinkDelayCmd waits before asking the engine for a move, so the human's
// move stays visible for a moment.
func thinkDelayCmd(delay time.Duration, gen int) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return ThinkMsg{Gen: gen} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ThinkMsg{Gen: gen}
	})
}

// engineCmd runs a search off the update loop.
func engineCmd(search func() othello.EngineResult, gen int) tea.Cmd {
	return func() tea.Msg {
		return EngineMsg{Gen: gen, Result: search()}
	}
}
