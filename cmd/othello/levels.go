package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

var flagWriteDefault bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List difficulty presets and rules",
	Long: `Shows the difficulty presets with their search depth and the active
rule set, as resolved from the config file.

Use --write-default to create an editable config in the XDG config directory.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagWriteDefault, "write-default", false, "Write the default config to the XDG config directory")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagWriteDefault {
		path, err := config.WriteDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config: %s\n", path)
		fmt.Println()
	}

	cfg := loadConfig()

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Preset", "Depth")
	fmt.Printf("  %-8s  %s\n", "------", "-----")
	for _, p := range config.Presets() {
		fmt.Printf("  %-8s  %d\n", p, config.DepthForPreset(cfg, p))
	}

	rules := engine.NewRules(cfg.Rules.Diagonals)
	fmt.Println()
	fmt.Printf("Rules:   %s\n", rules.Name())
	fmt.Printf("Passing: %v\n", cfg.Rules.Passing)
	fmt.Printf("You:     %s\n", cfg.HumanSide())
	fmt.Println()
	fmt.Println("Run 'othello play --difficulty <preset>' to play.")
}
