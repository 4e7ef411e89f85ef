package main

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-quarto/internal/config"
)

func TestPlayBenchGame(t *testing.T) {
	cfg := config.DefaultQuartoConfig()
	cfg.Search.Depth = 1

	for i := range 4 {
		r, err := playBenchGame(context.Background(), cfg, "alphabeta", "random", i, int64(i+1))
		if err != nil {
			t.Fatalf("game %d: %v", i, err)
		}
		if r.winner < 0 || r.winner > 2 {
			t.Errorf("game %d: winner = %d", i, r.winner)
		}
		if r.turns < 8 {
			t.Errorf("game %d: turns = %d, no game ends before the fourth placement", i, r.turns)
		}
		if r.searches[0] == 0 {
			t.Errorf("game %d: alphabeta never searched", i)
		}
		if r.searches[1] != 0 {
			t.Errorf("game %d: random reported %d searches", i, r.searches[1])
		}
	}
}

func TestPlayBenchGameUnknownAgent(t *testing.T) {
	cfg := config.DefaultQuartoConfig()
	if _, err := playBenchGame(context.Background(), cfg, "nope", "random", 0, 1); err == nil {
		t.Fatal("expected an error for an unknown agent")
	}
}

func TestPercent(t *testing.T) {
	if got := percent(1, 4); got != "25.0%" {
		t.Errorf("percent(1, 4) = %q", got)
	}
}
