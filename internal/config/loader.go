package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	configFile = "othello/othello.yaml"
	dataFile   = "othello/results.db"
)

// LoadOthello loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/othello/othello.yaml ->
// ./configs/othello.yaml -> embedded default -> DefaultOthelloConfig.
func LoadOthello(customPath string) (OthelloConfig, error) {
	if customPath != "" {
		cfg, err := readConfig(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	var candidates []string
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	candidates = append(candidates, filepath.Join("configs", "othello.yaml"))

	return loadFirst(candidates)
}

// loadFirst returns the first candidate that reads, parses and validates,
// then falls back to the embedded default.
func loadFirst(candidates []string) (OthelloConfig, error) {
	for _, path := range candidates {
		if cfg, err := readConfig(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultOthelloConfig()
	if err := yaml.Unmarshal(defaultOthelloYAML, &cfg); err != nil {
		return DefaultOthelloConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readConfig parses a YAML file over the built-in defaults, so partial
// files only override what they name.
func readConfig(path string) (OthelloConfig, error) {
	cfg := DefaultOthelloConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the XDG config file if one exists.
func userConfigPath() string {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		return ""
	}
	return path
}

// DefaultDBPath returns the results database location under the XDG data
// directory, creating parent directories as needed.
func DefaultDBPath() (string, error) {
	path, err := xdg.DataFile(dataFile)
	if err != nil {
		return "", fmt.Errorf("config: resolve data path: %w", err)
	}
	return path, nil
}

// WriteDefault writes the embedded default file to the XDG config location
// and returns its path. An existing file is left alone.
func WriteDefault() (string, error) {
	path, err := xdg.ConfigFile(configFile)
	if err != nil {
		return "", fmt.Errorf("config: resolve config path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, defaultOthelloYAML, 0o644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
