package match

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-quarto/internal/ai"
	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/registry"
	"github.com/vovakirdan/tui-quarto/internal/search"
)

// stuckAgent never finds a move.
type stuckAgent struct{}

func (stuckAgent) Name() string { return "stuck" }

func (stuckAgent) ChoosePiece(*core.Game) (core.Piece, bool) { return 0, false }

func (stuckAgent) ChoosePosition(*core.Game) (core.Position, bool) {
	return core.Position{}, false
}

func agentSeat(t *testing.T, id string) Seat {
	t.Helper()
	a, err := registry.Create(id, registry.Options{Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	return Seat{Name: id, Agent: a}
}

func TestRunAgentsToTheEnd(t *testing.T) {
	var seen []Event
	m, err := New(core.Level2,
		agentSeat(t, "alphabeta"),
		agentSeat(t, "random"),
		WithObserver(func(e Event) { seen = append(seen, e) }),
	)
	if err != nil {
		t.Fatal(err)
	}

	res, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Over || !m.IsOver() {
		t.Fatal("Run() returned before the game ended")
	}

	hist := m.History()
	if len(hist) != len(seen) {
		t.Fatalf("observer saw %d events, history has %d", len(seen), len(hist))
	}
	for i, e := range hist {
		if seen[i] != e {
			t.Errorf("event %d: observer %v, history %v", i, seen[i], e)
		}
	}

	last := hist[len(hist)-1]
	if last.Kind != EventGameOver || last.Player != res.Winner {
		t.Errorf("last event = %v, result = %+v", last, res)
	}
	for i, e := range hist[:len(hist)-1] {
		if e.Turn != i+1 {
			t.Errorf("event %d has turn %d", i, e.Turn)
		}
		wantKind := EventGiven
		if i%2 == 1 {
			wantKind = EventPlaced
		}
		if e.Kind != wantKind {
			t.Errorf("event %d kind = %v, want %v", i, e.Kind, wantKind)
		}
	}
	if res.Turns != len(hist)-1 {
		t.Errorf("Turns = %d, want %d", res.Turns, len(hist)-1)
	}
}

func TestHumanAndAgentTurns(t *testing.T) {
	m, err := New(core.Level1, Seat{Name: "you"}, Seat{Name: "cpu", Agent: ai.New(search.NegaBeta{})})
	if err != nil {
		t.Fatal(err)
	}

	if !m.IsHumanTurn() {
		t.Fatal("Player 1 should be human")
	}
	if _, err := m.Step(); !errors.Is(err, ErrHumanSeat) {
		t.Errorf("Step() on human turn error = %v, want ErrHumanSeat", err)
	}
	if _, err := m.Run(context.Background()); !errors.Is(err, ErrHumanSeat) {
		t.Errorf("Run() on human turn error = %v, want ErrHumanSeat", err)
	}

	given, err := core.ParsePiece("SRHL")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Give(given); err != nil {
		t.Fatalf("Give() error = %v", err)
	}
	if m.IsHumanTurn() || m.Current() != core.Player2 {
		t.Fatal("turn did not pass to the agent")
	}
	if err := m.Give(given); !errors.Is(err, ErrNotHumanTurn) {
		t.Errorf("Give() on agent turn error = %v, want ErrNotHumanTurn", err)
	}

	placed, err := m.Step()
	if err != nil || placed.Kind != MovePlace {
		t.Fatalf("Step() = %v, %v; want a placement", placed, err)
	}
	board := m.Game().Board()
	if p, ok := board.At(placed.Position); !ok || p != given {
		t.Errorf("agent placed %v at %v", p, placed.Position)
	}

	gave, err := m.Step()
	if err != nil || gave.Kind != MoveGive {
		t.Fatalf("Step() = %v, %v; want a give", gave, err)
	}
	if !m.IsHumanTurn() {
		t.Fatal("turn did not come back to the human")
	}

	turn := m.Game().Turn()
	if err := m.Place(placed.Position); !errors.Is(err, core.ErrCellOccupied) {
		t.Errorf("Place() on occupied cell error = %v, want ErrCellOccupied", err)
	}
	if m.Game().Turn() != turn || len(m.History()) != 3 {
		t.Error("failed move changed the match")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	m, err := New(core.Level1, agentSeat(t, "random"), agentSeat(t, "random"))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if m.Game().Turn() != 0 {
		t.Error("Run() moved after cancellation")
	}
}

func TestRandomOpening(t *testing.T) {
	build := func() *Match {
		m, err := New(core.Level1, Seat{Name: "a"}, Seat{Name: "b"}, WithRandomOpening(5, 99))
		if err != nil {
			t.Fatal(err)
		}
		return m
	}

	a, b := build(), build()
	if a.Game().Turn() != 5 || len(a.History()) != 5 {
		t.Fatalf("Turn() = %d, len(History()) = %d; want 5", a.Game().Turn(), len(a.History()))
	}
	ha, hb := a.History(), b.History()
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("openings differ at %d: %v vs %v", i, ha[i], hb[i])
		}
	}
	// Five sub-moves end on a give, so Player 2 must place next.
	if a.Current() != core.Player2 || a.Game().Phase() != core.PhasePlace {
		t.Errorf("Current() = %v, Phase() = %v", a.Current(), a.Game().Phase())
	}
}

func TestDecide(t *testing.T) {
	g, err := core.NewGame(core.Level1)
	if err != nil {
		t.Fatal(err)
	}
	before := *g

	mv, err := Decide(ai.New(search.Minimax{}), g)
	if err != nil || mv.Kind != MoveGive {
		t.Fatalf("Decide() = %v, %v", mv, err)
	}
	if *g != before {
		t.Error("Decide() changed the game")
	}

	if _, err := Decide(stuckAgent{}, g); !errors.Is(err, core.ErrNoMove) {
		t.Errorf("Decide(stuck) error = %v, want ErrNoMove", err)
	}
}

func TestApplyRejectsUnknownKind(t *testing.T) {
	m, err := New(core.Level1, Seat{}, Seat{})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Apply(Move{Kind: MoveKind(9)}); err == nil {
		t.Error("Apply() accepted an unknown move kind")
	}
	if _, err := New(core.Level(0), Seat{}, Seat{}); err == nil {
		t.Error("New() accepted level 0")
	}
}
