package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/games/othello"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
	"github.com/vovakirdan/tui-othello/internal/platform/tui"
)

var (
	flagDifficulty string
	flagSide       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game against the engine",
	Long: `Start a game against the engine.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Place a disk
  Mouse click  - Place a disk on the clicked square
  H            - Ask the engine for a hint
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options (search depth from config):
  easy   - 2 plies
  medium - 3 plies
  hard   - 5 plies

Examples:
  othello play
  othello play --difficulty hard
  othello play --side light
  othello play --config ./my-othello.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().StringVar(&flagSide, "side", "", "Your side: dark or light (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	side := cfg.HumanSide()
	if flagSide != "" {
		side, err = engine.ParseSide(flagSide)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store := openStore()
	settings := othello.SettingsFromConfig(cfg, preset, side)

	_, runErr := tui.Run(settings, store, runtimeConfig(cfg), uiLogger())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
