package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-quarto/internal/config"
	"github.com/vovakirdan/tui-quarto/internal/match"
	"github.com/vovakirdan/tui-quarto/internal/platform/tui"
	"github.com/vovakirdan/tui-quarto/internal/registry"
)

var flagDuelDelay int

var duelCmd = &cobra.Command{
	Use:   "duel <p1> <p2>",
	Short: "Watch two computer opponents play one game",
	Long: `Play one game between two computer opponents and print every move,
followed by the final board.

When stdout is a terminal the moves are paced by --delay so they can be
followed; when piped the game runs at full speed.

Examples:
  quarto duel alphabeta negabeta
  quarto duel minimax random --level 4 --depth 3
  quarto duel negamax alphabeta --log-level debug`,
	Args: cobra.ExactArgs(2),
	Run:  runDuel,
}

func init() {
	addSearchFlags(duelCmd)
	duelCmd.Flags().IntVar(&flagDuelDelay, "delay", 0, "Milliseconds between moves on a terminal (0 = config ui.ai_delay_ms)")
}

func runDuel(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	cfg.Players.Player1, cfg.Players.Player2 = args[0], args[1]
	if err := applyGameFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Players.Player1 == config.Human || cfg.Players.Player2 == config.Human {
		fmt.Fprintln(os.Stderr, "Error: duel needs two computer opponents; use 'quarto play' to play yourself")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := registry.Options{Depth: cfg.EffectiveDepth(), Seed: seed(), Logger: logger}
	p1, err := newSeat(cfg.Players.Player1, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.Seed++
	p2, err := newSeat(cfg.Players.Player2, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var delay time.Duration
	if term.IsTerminal(int(os.Stdout.Fd())) {
		delay = time.Duration(cfg.UI.AIDelayMs) * time.Millisecond
		if flagDuelDelay > 0 {
			delay = time.Duration(flagDuelDelay) * time.Millisecond
		}
	}

	fmt.Printf("%s (Player 1) vs %s (Player 2), %s, depth %d\n\n",
		p1.Name, p2.Name, cfg.RuleLevel(), cfg.EffectiveDepth())

	m, err := match.New(cfg.RuleLevel(), p1, p2,
		match.WithLogger(logger),
		match.WithObserver(func(ev match.Event) {
			if ev.Kind == match.EventGameOver {
				return
			}
			fmt.Println(ev)
			time.Sleep(delay)
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := m.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	g := m.Game()
	view := tui.BoardView{}
	if shape, ok := g.WinningShape(); ok {
		view.Highlight = shape[:]
	}
	fmt.Println()
	fmt.Println(tui.RenderBoard(g.Board(), view))
	fmt.Println()
	if result.Draw() {
		fmt.Printf("Draw after %d sub-moves.\n", result.Turns)
		return
	}
	fmt.Printf("%s (%s) wins after %d sub-moves.\n", m.Seat(result.Winner).Name, result.Winner, result.Turns)
}
