package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/games/othello"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

var (
	flagDarkLevel  string
	flagLightLevel string
)

var selfplayCmd = &cobra.Command{
	Use:   "selfplay",
	Short: "Let the engine play against itself",
	Long: `Play a full game engine versus engine and print the final board.
Each move is logged at info level.

Examples:
  othello selfplay
  othello selfplay --dark hard --light easy
  othello selfplay --log-level warn`,
	Args: cobra.NoArgs,
	Run:  runSelfplay,
}

func init() {
	selfplayCmd.Flags().StringVar(&flagDarkLevel, "dark", "medium", "Dark difficulty preset")
	selfplayCmd.Flags().StringVar(&flagLightLevel, "light", "medium", "Light difficulty preset")
}

func runSelfplay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, "selfplay")

	dark, err := config.ParsePreset(flagDarkLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	light, err := config.ParsePreset(flagLightLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := othello.SelfPlay(othello.MatchOptions{
		Rules:      engine.NewRules(cfg.Rules.Diagonals),
		Passing:    cfg.Rules.Passing,
		DarkDepth:  config.DepthForPreset(cfg, dark),
		LightDepth: config.DepthForPreset(cfg, light),
		Logger:     logger,
	})

	d, l, _ := res.Board.Counts()
	fmt.Println(res.Board.String())
	fmt.Printf("Dark (%s): %d  Light (%s): %d\n", dark, d, light, l)
	switch {
	case d > l:
		fmt.Println("Dark wins")
	case l > d:
		fmt.Println("Light wins")
	default:
		fmt.Println("Draw")
	}
	fmt.Printf("Moves: %d  Nodes: dark %d, light %d\n",
		len(res.History), res.Nodes[engine.SideDark], res.Nodes[engine.SideLight])
}
