package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-quarto/internal/config"
	"github.com/vovakirdan/tui-quarto/internal/platform/tui"
	"github.com/vovakirdan/tui-quarto/internal/registry"
)

var (
	flagP1         string
	flagP2         string
	flagLevel      int
	flagDepth      int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Quarto in the terminal",
	Long: `Start a game in the terminal UI. Each seat is either "human" or the id
of a computer opponent (see 'quarto list').

Controls:
  Arrows/hjkl - Move the cursor over the board or the piece tray
  Enter/Space - Give the selected piece / place the pending piece
  R           - New game (after game over)
  ?           - Toggle full help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Search 1 sub-move ahead
  normal - Search 2 sub-moves ahead
  hard   - Search 3 sub-moves ahead

Examples:
  quarto play
  quarto play --p2 negamax --difficulty hard
  quarto play --p1 alphabeta --p2 human --level 2
  quarto play --p1 human --p2 human`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagP1, "p1", "", "Player 1: human or an opponent id")
	playCmd.Flags().StringVar(&flagP2, "p2", "", "Player 2: human or an opponent id")
	addSearchFlags(playCmd)
}

// addSearchFlags registers the rule and search flags shared by the game commands.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Rule level 1-4")
	cmd.Flags().IntVar(&flagDepth, "depth", 0, "Search depth in sub-moves")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags layers the seat, level and search flags over cfg.
func applyGameFlags(cfg *config.QuartoConfig) error {
	if flagP1 != "" {
		cfg.Players.Player1 = flagP1
	}
	if flagP2 != "" {
		cfg.Players.Player2 = flagP2
	}
	if flagLevel != 0 {
		cfg.Rules.Level = flagLevel
	}
	if flagDepth != 0 {
		cfg.Search.Depth = flagDepth
		cfg.Search.Difficulty = ""
	}
	if err := config.ApplyPreset(cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	return cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	if err := applyGameFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The UI owns the screen, so logs go nowhere unless a file is configured.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := registry.Options{Depth: cfg.EffectiveDepth(), Seed: seed(), Logger: logger}
	p1, err := newSeat(cfg.Players.Player1, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'quarto list' to see available opponents.")
		os.Exit(1)
	}
	opts.Seed++
	p2, err := newSeat(cfg.Players.Player2, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'quarto list' to see available opponents.")
		os.Exit(1)
	}
	if p1.IsHuman() && p2.IsHuman() {
		p1.Name, p2.Name = "Player 1", "Player 2"
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting game", "level", cfg.Rules.Level, "p1", cfg.Players.Player1,
		"p2", cfg.Players.Player2, "depth", cfg.EffectiveDepth())

	runErr := tui.Run(tui.Options{
		Level:    cfg.RuleLevel(),
		Player1:  p1,
		Player2:  p2,
		AIDelay:  time.Duration(cfg.UI.AIDelayMs) * time.Millisecond,
		ShowHelp: cfg.UI.ShowHelp,
		Logger:   logger,
		Width:    width,
		Height:   height,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
