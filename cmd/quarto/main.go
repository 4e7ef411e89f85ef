// quarto is a terminal Quarto game with search-based computer opponents.
//
// Usage:
//
//	quarto list              - List computer opponents and rule levels
//	quarto play              - Play in the terminal UI
//	quarto duel <p1> <p2>    - Watch two opponents play one game
//	quarto bench <p1> <p2>   - Run a headless tournament
//	quarto rules             - Print the rules
//
// Global flags:
//
//	--config <path>     - Path to a quarto.yaml config
//	--log-level <level> - debug, info, warn or error (overrides config)
//	--seed <value>      - RNG seed for random players and openings
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-quarto/internal/config"
	"github.com/vovakirdan/tui-quarto/internal/match"
	"github.com/vovakirdan/tui-quarto/internal/registry"

	// Import agents to register them
	_ "github.com/vovakirdan/tui-quarto/internal/ai"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quarto",
	Short: "Quarto - Play the board game against search-based opponents",
	Long: `Quarto is played on a 4x4 board with 16 pieces. Each piece is tall or
short, square or round, solid or hollow, dark or light. You never choose
the piece you place: your opponent hands it to you.

Available commands:
  list   - Show computer opponents and rule levels
  play   - Play in the terminal UI
  duel   - Watch two opponents play one game
  bench  - Run a headless tournament between two opponents
  rules  - Print the rules

Examples:
  quarto list
  quarto play --p2 alphabeta --difficulty hard
  quarto duel minimax negabeta --level 3
  quarto bench alphabeta random --games 100`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom quarto.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(duelCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(rulesCmd)
}

// mustLoadConfig loads the configuration or exits.
func mustLoadConfig() config.QuartoConfig {
	cfg, err := config.LoadQuarto(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// seed returns the --seed flag, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the command logger. Output goes to the configured log
// file, else to fallback. The returned closer releases the file.
func newLogger(cfg config.QuartoConfig, fallback io.Writer) (*log.Logger, func(), error) {
	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	out, closer := fallback, func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "quarto",
		Level:           level,
	})
	return logger, closer, nil
}

// newSeat resolves "human" or an agent id into a seat.
func newSeat(id string, opts registry.Options) (match.Seat, error) {
	if id == config.Human {
		return match.Seat{Name: "You"}, nil
	}
	agent, err := registry.Create(id, opts)
	if err != nil {
		return match.Seat{}, err
	}
	return match.Seat{Name: agent.Name(), Agent: agent}, nil
}
