package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/games/othello"
	"github.com/vovakirdan/tui-othello/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, left/right to choose your side,
Enter to play. After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Choose difficulty
  Left/Right   - Choose side
  Enter/Space  - Play
  Tab          - Results
  Q            - Quit

Examples:
  othello menu
  othello menu --db ./results.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore()
	logger := uiLogger()
	rc := runtimeConfig(cfg)

	for {
		menuResult, err := tui.RunMenu(cfg, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		settings := othello.SettingsFromConfig(cfg, menuResult.Preset, menuResult.Side)
		backToMenu, err := tui.Run(settings, store, rc, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
