package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-quarto/internal/ai"
	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/match"
)

func newTestModel(t *testing.T, p1, p2 match.Seat) Model {
	t.Helper()
	m, err := NewModel(Options{Level: core.Level1, Player1: p1, Player2: p2})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
	rightKey = tea.KeyMsg{Type: tea.KeyRight}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestHumanGiveAndPlace(t *testing.T) {
	m := newTestModel(t, match.Seat{Name: "Ann"}, match.Seat{Name: "Bob"})

	m, _ = press(t, m, rightKey)
	m, _ = press(t, m, enterKey)

	g := m.match.Game()
	pending, ok := g.Pending()
	if !ok || pending != core.Piece(1) {
		t.Fatalf("pending = %v, %v; want piece 1", pending, ok)
	}
	if g.Current() != core.Player2 {
		t.Fatalf("current = %v, want Player 2", g.Current())
	}

	m, _ = press(t, m, downKey)
	m, _ = press(t, m, rightKey)
	m, _ = press(t, m, enterKey)

	g = m.match.Game()
	b := g.Board()
	if p, ok := b.At(core.Position{Row: 1, Col: 1}); !ok || p != core.Piece(1) {
		t.Errorf("B2 = %v, %v; want piece 1", p, ok)
	}
	if g.Phase() != core.PhaseGive || g.Current() != core.Player2 {
		t.Errorf("after place: phase %v, current %v", g.Phase(), g.Current())
	}
	if !strings.Contains(m.lastMove, "B2") {
		t.Errorf("lastMove = %q, want it to mention B2", m.lastMove)
	}
}

func TestPlaceOnOccupiedCellShowsError(t *testing.T) {
	m := newTestModel(t, match.Seat{Name: "Ann"}, match.Seat{Name: "Bob"})

	m, _ = press(t, m, enterKey) // give
	m, _ = press(t, m, enterKey) // place at A1
	m, _ = press(t, m, enterKey) // give
	m, _ = press(t, m, enterKey) // place at A1 again

	if m.err == nil {
		t.Fatal("expected an error for an occupied cell")
	}
	if !strings.Contains(m.View(), "That cell is taken.") {
		t.Error("view does not show the occupied cell error")
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	m := newTestModel(t, match.Seat{Name: "Ann"}, match.Seat{Name: "Bob"})
	m, _ = press(t, m, enterKey)

	for range 10 {
		m, _ = press(t, m, downKey)
		m, _ = press(t, m, rightKey)
	}
	want := core.Position{Row: core.BoardSize - 1, Col: core.BoardSize - 1}
	if m.cursor != want {
		t.Errorf("cursor = %v, want %v", m.cursor, want)
	}
}

func TestAgentTurnFlow(t *testing.T) {
	m := newTestModel(t, match.Seat{Name: "Ann"}, match.Seat{Name: "Bot", Agent: ai.NewRandom(1)})

	if cmd := m.Init(); cmd != nil {
		t.Fatal("Init should not schedule anything on a human turn")
	}

	m, cmd := press(t, m, enterKey)
	if cmd == nil {
		t.Fatal("giving to an agent should schedule its move")
	}

	next, cmd := m.Update(TickMsg{Gen: m.gen})
	m = next.(Model)
	if !m.thinking || cmd == nil {
		t.Fatalf("tick should start thinking, thinking=%v", m.thinking)
	}

	// Keys are ignored while the agent is to move.
	m, _ = press(t, m, enterKey)
	if m.match.Game().Phase() != core.PhasePlace {
		t.Fatal("human key changed the game on an agent turn")
	}

	next, cmd = m.Update(aiMoveMsg{gen: m.gen, move: match.Move{Kind: match.MovePlace, Position: core.Position{Row: 2, Col: 3}}})
	m = next.(Model)
	if m.thinking {
		t.Error("still thinking after the move arrived")
	}
	b := m.match.Game().Board()
	if b.IsFree(core.Position{Row: 2, Col: 3}) {
		t.Error("agent placement was not applied")
	}
	if cmd == nil {
		t.Error("agent still has to give; expected another tick")
	}
}

func TestStaleAgentMoveIgnored(t *testing.T) {
	m := newTestModel(t, match.Seat{Name: "Ann"}, match.Seat{Name: "Bot", Agent: ai.NewRandom(1)})
	m, _ = press(t, m, enterKey)

	next, _ := m.Update(aiMoveMsg{gen: m.gen + 1, move: match.Move{Kind: match.MovePlace}})
	m = next.(Model)
	b := m.match.Game().Board()
	if !b.IsEmpty() {
		t.Error("move from another game was applied")
	}

	next, cmd := m.Update(TickMsg{Gen: m.gen - 1})
	m = next.(Model)
	if m.thinking || cmd != nil {
		t.Error("stale tick started the agent")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, match.Seat{Name: "Ann"}, match.Seat{Name: "Bob"})

	m, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestRestartOnlyWhenOver(t *testing.T) {
	m := newTestModel(t, match.Seat{Name: "Ann"}, match.Seat{Name: "Bob"})
	m, _ = press(t, m, enterKey)
	gen := m.gen

	m, _ = press(t, m, runeKey('r'))
	if m.gen != gen {
		t.Error("restart during a running game")
	}
}

func TestPieceGlyph(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"TQFD", "[T●]"},
		{"SRHL", "(t○)"},
		{"TRHD", "(T○)"},
		{"SQFL", "[t●]"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			p, err := core.ParsePiece(tt.code)
			if err != nil {
				t.Fatal(err)
			}
			if got := PieceGlyph(p); got != tt.want {
				t.Errorf("PieceGlyph(%s) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestPositionLabel(t *testing.T) {
	if got := PositionLabel(core.Position{Row: 1, Col: 2}); got != "B3" {
		t.Errorf("PositionLabel = %q, want B3", got)
	}
}

func TestRenderTrayEmpty(t *testing.T) {
	if got := RenderTray(nil, 0, true); !strings.Contains(got, "no pieces left") {
		t.Errorf("RenderTray(nil) = %q", got)
	}
}
