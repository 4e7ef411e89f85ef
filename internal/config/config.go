// Package config provides YAML-based configuration loading and
// difficulty presets for the Quarto engine and its front-ends.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-quarto/internal/core"
)

// Human marks a seat controlled from the keyboard.
const Human = "human"

// QuartoConfig contains all configuration for a Quarto session.
type QuartoConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Search  SearchConfig  `yaml:"search"`
	Players PlayersConfig `yaml:"players"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
	Bench   BenchConfig   `yaml:"bench"`
}

// RulesConfig selects the winning shapes.
type RulesConfig struct {
	Level int `yaml:"level"` // 1 = lines ... 4 = rotated squares
}

// SearchConfig controls the computer opponents.
type SearchConfig struct {
	Depth      int              `yaml:"depth"`      // sub-moves searched below the root
	Difficulty DifficultyPreset `yaml:"difficulty"` // overrides depth when set
}

// PlayersConfig assigns a controller to each seat: "human" or an agent id.
type PlayersConfig struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
}

// UIConfig defines terminal UI behaviour.
type UIConfig struct {
	AIDelayMs int  `yaml:"ai_delay_ms"` // pause before a computer move is shown
	ShowHelp  bool `yaml:"show_help"`
}

// LogConfig defines where and how much to log.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = stderr for CLI commands, discarded in the UI
}

// BenchConfig defines defaults for headless tournaments.
type BenchConfig struct {
	Games          int `yaml:"games"`
	Workers        int `yaml:"workers"`
	RandomOpenings int `yaml:"random_openings"` // random sub-moves played before the agents take over
}

// RuleLevel returns the configured rule level.
func (c QuartoConfig) RuleLevel() core.Level {
	return core.Level(c.Rules.Level)
}

// EffectiveDepth returns the search depth after applying the difficulty preset.
func (c QuartoConfig) EffectiveDepth() int {
	if d := DepthForPreset(c.Search.Difficulty); d > 0 {
		return d
	}
	return c.Search.Depth
}

// Validate reports the first invalid setting.
func (c QuartoConfig) Validate() error {
	switch {
	case !c.RuleLevel().Valid():
		return fmt.Errorf("config: rules.level %d out of range 1-4", c.Rules.Level)
	case c.Search.Depth < 1:
		return fmt.Errorf("config: search.depth must be at least 1, got %d", c.Search.Depth)
	case c.Search.Difficulty != "" && !c.Search.Difficulty.Valid():
		return fmt.Errorf("config: unknown search.difficulty %q", c.Search.Difficulty)
	case c.Players.Player1 == "" || c.Players.Player2 == "":
		return fmt.Errorf("config: both players must be set")
	case c.UI.AIDelayMs < 0:
		return fmt.Errorf("config: ui.ai_delay_ms must not be negative")
	case c.Bench.Games < 1 || c.Bench.Workers < 1:
		return fmt.Errorf("config: bench.games and bench.workers must be positive")
	case c.Bench.RandomOpenings < 0 || c.Bench.RandomOpenings >= 2*core.NumPieces:
		return fmt.Errorf("config: bench.random_openings %d out of range", c.Bench.RandomOpenings)
	}
	return nil
}

// DifficultyPreset represents a named search strength.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Valid reports whether the preset is known.
func (p DifficultyPreset) Valid() bool {
	return DepthForPreset(p) > 0
}

// DepthForPreset returns the search depth for a preset, or 0 if unknown.
func DepthForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config unchanged and return an error.
func ApplyPreset(cfg *QuartoConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	if !preset.Valid() {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Search.Difficulty = preset
	cfg.Search.Depth = DepthForPreset(preset)
	return nil
}
