package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParsePreset converts a name to a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
}

// DepthForPreset returns the search depth configured for a preset.
// Unknown presets fall back to medium.
func DepthForPreset(cfg OthelloConfig, preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return cfg.Difficulty.Easy
	case DifficultyHard:
		return cfg.Difficulty.Hard
	default:
		return cfg.Difficulty.Medium
	}
}
