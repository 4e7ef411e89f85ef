package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, ok := parseOver(defaultQuartoYAML)
	if !ok {
		t.Fatal("embedded defaults do not parse")
	}
	if cfg != DefaultQuartoConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultQuartoConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadQuartoCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.yaml")
	writeFile(t, path, "rules:\n  level: 3\nplayers:\n  player2: negabeta\n")

	cfg, err := LoadQuarto(path)
	if err != nil {
		t.Fatalf("LoadQuarto() error = %v", err)
	}
	if cfg.Rules.Level != 3 || cfg.Players.Player2 != "negabeta" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched sections keep their defaults.
	if cfg.Search.Depth != 2 || cfg.Players.Player1 != Human || cfg.UI.AIDelayMs != 300 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadQuartoErrors(t *testing.T) {
	if _, err := LoadQuarto(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadQuarto(missing) succeeded")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "rules: [not, a, map\n")
	if _, err := LoadQuarto(bad); err == nil {
		t.Error("LoadQuarto(bad yaml) succeeded")
	}
}

func TestLoadQuartoSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadQuarto("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultQuartoConfig() {
		t.Errorf("without files LoadQuarto() = %+v, want defaults", cfg)
	}

	writeFile(t, filepath.Join(work, "configs", "quarto.yaml"), "rules:\n  level: 2\n")
	cfg, err = LoadQuarto("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Level != 2 {
		t.Errorf("local config ignored, level = %d", cfg.Rules.Level)
	}

	writeFile(t, filepath.Join(home, ".quarto", "configs", "quarto.yaml"), "rules:\n  level: 4\n")
	cfg, err = LoadQuarto("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Level != 4 {
		t.Errorf("user config should win over local, level = %d", cfg.Rules.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuartoConfig)
		ok     bool
	}{
		{"defaults", func(*QuartoConfig) {}, true},
		{"level too low", func(c *QuartoConfig) { c.Rules.Level = 0 }, false},
		{"level too high", func(c *QuartoConfig) { c.Rules.Level = 5 }, false},
		{"zero depth", func(c *QuartoConfig) { c.Search.Depth = 0 }, false},
		{"bad difficulty", func(c *QuartoConfig) { c.Search.Difficulty = "insane" }, false},
		{"missing player", func(c *QuartoConfig) { c.Players.Player2 = "" }, false},
		{"negative delay", func(c *QuartoConfig) { c.UI.AIDelayMs = -1 }, false},
		{"no workers", func(c *QuartoConfig) { c.Bench.Workers = 0 }, false},
		{"opening too long", func(c *QuartoConfig) { c.Bench.RandomOpenings = 32 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQuartoConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tc.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tc.ok)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		depth  int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 2},
		{DifficultyHard, 3},
	}

	for _, tc := range tests {
		cfg := DefaultQuartoConfig()
		if err := ApplyPreset(&cfg, tc.preset); err != nil {
			t.Fatalf("ApplyPreset(%s) error = %v", tc.preset, err)
		}
		if cfg.Search.Depth != tc.depth || cfg.EffectiveDepth() != tc.depth {
			t.Errorf("ApplyPreset(%s): depth = %d, effective = %d, want %d",
				tc.preset, cfg.Search.Depth, cfg.EffectiveDepth(), tc.depth)
		}
	}

	cfg := DefaultQuartoConfig()
	if err := ApplyPreset(&cfg, "fixed"); err == nil {
		t.Error("ApplyPreset(unknown) succeeded")
	}
	if err := ApplyPreset(&cfg, ""); err != nil || cfg.Search.Depth != 2 {
		t.Errorf("ApplyPreset(empty) changed config: %v", err)
	}

	cfg.Search.Depth = 5
	cfg.Search.Difficulty = DifficultyEasy
	if cfg.EffectiveDepth() != 1 {
		t.Errorf("EffectiveDepth() = %d, preset should win", cfg.EffectiveDepth())
	}
}
