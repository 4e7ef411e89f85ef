package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-quarto/internal/config"
	"github.com/vovakirdan/tui-quarto/internal/core"
	"github.com/vovakirdan/tui-quarto/internal/match"
	"github.com/vovakirdan/tui-quarto/internal/registry"
	"github.com/vovakirdan/tui-quarto/internal/search"
)

var (
	flagGames    int
	flagWorkers  int
	flagOpenings int
)

var benchCmd = &cobra.Command{
	Use:   "bench <a> <b>",
	Short: "Run a headless tournament between two opponents",
	Long: `Play a series of games between two computer opponents, swapping seats
every game, and print a summary. Each game starts with a few random
sub-moves so the series is not one game repeated.

Examples:
  quarto bench alphabeta random
  quarto bench minimax alphabeta --games 50 --workers 8
  quarto bench negabeta negamax --depth 3 --openings 4 --seed 7`,
	Args: cobra.ExactArgs(2),
	Run:  runBench,
}

func init() {
	addSearchFlags(benchCmd)
	benchCmd.Flags().IntVar(&flagGames, "games", 0, "Number of games (0 = config bench.games)")
	benchCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Games played in parallel (0 = config bench.workers)")
	benchCmd.Flags().IntVar(&flagOpenings, "openings", -1, "Random sub-moves before the agents take over (-1 = config)")
}

// statser is implemented by agents that report search counters.
type statser interface {
	LastStats() search.Stats
}

// gameResult is the outcome of one bench game, seen from agent A.
type gameResult struct {
	winner   int // 0 = draw, 1 = A, 2 = B
	turns    int
	searches [2]int
	nodes    [2]int
	elapsed  time.Duration
}

func runBench(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	cfg.Players.Player1, cfg.Players.Player2 = args[0], args[1]
	if flagGames > 0 {
		cfg.Bench.Games = flagGames
	}
	if flagWorkers > 0 {
		cfg.Bench.Workers = flagWorkers
	}
	if flagOpenings >= 0 {
		cfg.Bench.RandomOpenings = flagOpenings
	}
	if err := applyGameFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, id := range args {
		if id == config.Human || !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown opponent %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'quarto list' to see available opponents.")
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	base := seed()
	results := make([]gameResult, cfg.Bench.Games)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.Bench.Workers)

	start := time.Now()
	for i := range results {
		g.Go(func() error {
			r, err := playBenchGame(ctx, cfg, args[0], args[1], i, base+int64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = r
			logger.Debug("game finished", "game", i+1, "winner", r.winner, "turns", r.turns, "elapsed", r.elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("bench finished", "games", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	printBenchSummary(cfg, args[0], args[1], results)
}

// playBenchGame plays one game. Agent A takes Player 1 in even games.
func playBenchGame(ctx context.Context, cfg config.QuartoConfig, idA, idB string, i int, gameSeed int64) (gameResult, error) {
	opts := registry.Options{Depth: cfg.EffectiveDepth(), Seed: gameSeed}
	a, err := registry.Create(idA, opts)
	if err != nil {
		return gameResult{}, err
	}
	opts.Seed = gameSeed + 1<<32
	b, err := registry.Create(idB, opts)
	if err != nil {
		return gameResult{}, err
	}

	agents := [2]registry.Agent{a, b}
	if i%2 == 1 {
		agents[0], agents[1] = b, a
	}
	// side maps a player to the agent index: 0 = A, 1 = B.
	side := func(p core.PlayerID) int {
		if (p == core.Player1) == (i%2 == 0) {
			return 0
		}
		return 1
	}

	var r gameResult
	m, err := match.New(cfg.RuleLevel(),
		match.Seat{Name: agents[0].Name(), Agent: agents[0]},
		match.Seat{Name: agents[1].Name(), Agent: agents[1]},
		match.WithRandomOpening(cfg.Bench.RandomOpenings, gameSeed),
		match.WithObserver(func(ev match.Event) {
			// Opening moves are random, not searched.
			if ev.Kind == match.EventGameOver || ev.Turn <= cfg.Bench.RandomOpenings {
				return
			}
			s := side(ev.Player)
			if st, ok := agents[ev.Player-core.Player1].(statser); ok {
				r.searches[s]++
				r.nodes[s] += st.LastStats().Nodes
			}
		}),
	)
	if err != nil {
		return gameResult{}, err
	}

	start := time.Now()
	res, err := m.Run(ctx)
	if err != nil {
		return gameResult{}, err
	}
	r.elapsed = time.Since(start)
	r.turns = res.Turns
	if !res.Draw() {
		r.winner = side(res.Winner) + 1
	}
	return r, nil
}

func printBenchSummary(cfg config.QuartoConfig, idA, idB string, results []gameResult) {
	var wins [3]int
	var turns int
	var searches, nodes [2]int
	var elapsed time.Duration
	for _, r := range results {
		wins[r.winner]++
		turns += r.turns
		elapsed += r.elapsed
		for s := range 2 {
			searches[s] += r.searches[s]
			nodes[s] += r.nodes[s]
		}
	}

	fmt.Printf("%d games, %s, depth %d, %d random opening sub-moves\n\n",
		len(results), cfg.RuleLevel(), cfg.EffectiveDepth(), cfg.Bench.RandomOpenings)

	t := newTable("Opponent", "Wins", "Win %", "Avg nodes/search")
	for s, id := range []string{idA, idB} {
		avg := "-"
		if searches[s] > 0 {
			avg = fmt.Sprintf("%.0f", float64(nodes[s])/float64(searches[s]))
		}
		t.Row(id, fmt.Sprint(wins[s+1]), percent(wins[s+1], len(results)), avg)
	}
	t.Row("draws", fmt.Sprint(wins[0]), percent(wins[0], len(results)), "")
	fmt.Println(t)

	fmt.Println()
	fmt.Printf("Average game: %.1f sub-moves, %s\n",
		float64(turns)/float64(len(results)),
		(elapsed / time.Duration(len(results))).Round(time.Microsecond))
}

func percent(n, total int) string {
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}
