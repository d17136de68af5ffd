// Package config provides YAML-based configuration loading and difficulty
// presets for the Othello engine.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

// OthelloConfig contains all configuration for a game.
type OthelloConfig struct {
	Difficulty DifficultyDepths `yaml:"difficulty"`
	Rules      RulesConfig      `yaml:"rules"`
	Player     PlayerConfig     `yaml:"player"`
	Engine     EngineConfig     `yaml:"engine"`
}

// DifficultyDepths maps each preset to a search depth in plies.
type DifficultyDepths struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

// RulesConfig selects the rule variant.
type RulesConfig struct {
	Diagonals bool `yaml:"diagonals"` // capture along diagonals too
	Passing   bool `yaml:"passing"`   // a side without moves passes
}

// PlayerConfig defines the human player.
type PlayerConfig struct {
	Side string `yaml:"side"` // "dark" or "light"
}

// EngineConfig tunes engine presentation.
type EngineConfig struct {
	ThinkDelayMs int `yaml:"think_delay_ms"`
}

// Validate checks that the configuration describes a playable game.
func (c OthelloConfig) Validate() error {
	for _, p := range Presets() {
		if d := DepthForPreset(c, p); d < 1 {
			return fmt.Errorf("config: difficulty %s: depth %d must be at least 1", p, d)
		}
	}
	if _, err := engine.ParseSide(c.Player.Side); err != nil {
		return fmt.Errorf("config: player side: %w", err)
	}
	if c.Engine.ThinkDelayMs < 0 {
		return fmt.Errorf("config: think_delay_ms %d is negative", c.Engine.ThinkDelayMs)
	}
	return nil
}

// HumanSide returns the configured player side, defaulting to dark.
func (c OthelloConfig) HumanSide() engine.Side {
	side, err := engine.ParseSide(c.Player.Side)
	if err != nil {
		return engine.SideDark
	}
	return side
}
