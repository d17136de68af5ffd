package config

import (
	_ "embed"
)

//go:embed defaults/othello.yaml
var defaultOthelloYAML []byte

// DefaultOthelloConfig returns the built-in configuration.
func DefaultOthelloConfig() OthelloConfig {
	return OthelloConfig{
		Difficulty: DifficultyDepths{
			Easy:   2,
			Medium: 3,
			Hard:   5,
		},
		Rules: RulesConfig{
			Diagonals: false,
			Passing:   true,
		},
		Player: PlayerConfig{
			Side: "dark",
		},
		Engine: EngineConfig{
			ThinkDelayMs: 400,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultOthelloYAML
}
