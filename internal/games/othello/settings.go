package othello

import (
	"time"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

// SettingsFromConfig resolves a difficulty preset against the loaded
// configuration.
func SettingsFromConfig(cfg config.OthelloConfig, preset config.DifficultyPreset, human engine.Side) Settings {
	return Settings{
		Difficulty: string(preset),
		Depth:      config.DepthForPreset(cfg, preset),
		Human:      human,
		Diagonals:  cfg.Rules.Diagonals,
		Passing:    cfg.Rules.Passing,
	}
}

// ThinkDelay returns the configured pause before engine replies.
func ThinkDelay(cfg config.OthelloConfig) time.Duration {
	return time.Duration(cfg.Engine.ThinkDelayMs) * time.Millisecond
}
