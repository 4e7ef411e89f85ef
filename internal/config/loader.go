package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadQuarto loads the Quarto configuration. Values missing from the file
// keep their defaults.
// Search order: customPath -> ~/.quarto/configs/quarto.yaml -> ./configs/quarto.yaml -> embedded default
func LoadQuarto(customPath string) (QuartoConfig, error) {
	cfg := DefaultQuartoConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("quarto.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := parseOver(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "quarto.yaml")); err == nil {
		if loaded, ok := parseOver(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := parseOver(defaultQuartoYAML); ok {
		return loaded, nil
	}
	return DefaultQuartoConfig(), nil // Fallback to hardcoded if embed fails
}

// parseOver unmarshals data on top of the defaults.
func parseOver(data []byte) (QuartoConfig, bool) {
	cfg := DefaultQuartoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quarto", "configs", filename)
}
