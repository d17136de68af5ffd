package core

import "time"

// RuntimeConfig contains settings passed to a game when it starts.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	ThinkDelay time.Duration // Pause before the engine replies, so moves stay visible
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		ThinkDelay: 400 * time.Millisecond,
	}
}

// GameState summarizes a game for the platform.
type GameState struct {
	Score    int  // Final or running disk margin from the human's point of view
	GameOver bool // Whether the game has ended
	Thinking bool // Whether the engine is computing a move
}

// StepResult is returned by Game.Step() after input has been processed.
type StepResult struct {
	State GameState

	// EngineTurn is set when the engine should be asked for a move.
	EngineTurn bool
}
