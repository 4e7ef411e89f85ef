package config

import (
	_ "embed"
)

//go:embed defaults/quarto.yaml
var defaultQuartoYAML []byte

// DefaultQuartoConfig returns the default Quarto configuration.
func DefaultQuartoConfig() QuartoConfig {
	return QuartoConfig{
		Rules: RulesConfig{
			Level: 1,
		},
		Search: SearchConfig{
			Depth: 2,
		},
		Players: PlayersConfig{
			Player1: Human,
			Player2: "alphabeta",
		},
		UI: UIConfig{
			AIDelayMs: 300,
			ShowHelp:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Bench: BenchConfig{
			Games:          20,
			Workers:        4,
			RandomOpenings: 2,
		},
	}
}
