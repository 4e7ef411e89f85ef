// Package tui provides the Bubble Tea front-end for Quarto.
// It handles the terminal UI loop, key bindings, board rendering and the
// pacing of computer moves.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-quarto/internal/match"
)

// TickMsg is sent when a computer player may start thinking.
// Gen ties the tick to the game it was scheduled for.
type TickMsg struct {
	Gen int
	At  time.Time
}

// aiMoveMsg carries a computed agent move back to Update.
type aiMoveMsg struct {
	gen  int
	move match.Move
	err  error
}

// tickCmd returns a Bubble Tea command that fires once after delay.
func tickCmd(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
