// Package match drives a Quarto game between two seats, each played by a
// human or a registered agent, and reports every applied sub-move.
package match

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/registry"
)

var (
	// ErrNotHumanTurn is returned when a human move arrives on an agent's turn.
	ErrNotHumanTurn = errors.New("not a human turn")
	// ErrHumanSeat is returned when an agent move is requested for a human seat.
	ErrHumanSeat = errors.New("seat is played by a human")
)

// Seat describes who plays one side. A nil Agent means a human.
type Seat struct {
	Name  string
	Agent registry.Agent
}

// IsHuman reports whether the seat is played from the keyboard.
func (s Seat) IsHuman() bool {
	return s.Agent == nil
}

// MoveKind tells the two sub-moves apart.
type MoveKind int

const (
	MoveGive MoveKind = iota
	MovePlace
)

// Move is one sub-move. Piece is set for gives, Position for placements.
type Move struct {
	Kind     MoveKind
	Piece    core.Piece
	Position core.Position
}

// String returns a short description, e.g. "give TQFD" or "place 1,2".
func (m Move) String() string {
	if m.Kind == MovePlace {
		return "place " + m.Position.String()
	}
	return "give " + m.Piece.String()
}

// EventKind identifies what an Event reports.
type EventKind int

const (
	EventGiven EventKind = iota
	EventPlaced
	EventGameOver
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventGiven:
		return "given"
	case EventPlaced:
		return "placed"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is emitted after every applied sub-move and once when the game ends.
type Event struct {
	Kind     EventKind
	Player   core.PlayerID // who made the move; the winner for EventGameOver
	Piece    core.Piece
	Position core.Position
	Turn     int // sub-move counter after the move
}

// String formats the event for logs and transcripts.
func (e Event) String() string {
	switch e.Kind {
	case EventGiven:
		return fmt.Sprintf("#%d %s gives %s", e.Turn, e.Player, e.Piece)
	case EventPlaced:
		return fmt.Sprintf("#%d %s places %s at %s", e.Turn, e.Player, e.Piece, e.Position)
	case EventGameOver:
		if e.Player == core.NoPlayer {
			return fmt.Sprintf("#%d draw", e.Turn)
		}
		return fmt.Sprintf("#%d %s wins", e.Turn, e.Player)
	default:
		return "unknown event"
	}
}

// Observer receives events in the order moves are applied.
type Observer func(Event)

// Result summarises a finished or running game.
type Result struct {
	Over   bool
	Winner core.PlayerID // NoPlayer for a draw or a running game
	Turns  int
}

// Draw reports whether the game ended without a winner.
func (r Result) Draw() bool {
	return r.Over && r.Winner == core.NoPlayer
}
