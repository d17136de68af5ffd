package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results",
	Long: `Display the most recent finished games and a win/loss summary.

Examples:
  othello scores
  othello scores --difficulty hard
  othello scores --limit 25
  othello scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one preset: easy, medium, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected results instead of showing them")
}

func runScores(_ *cobra.Command, _ []string) {
	difficulty := ""
	if flagScoresDifficulty != "" {
		preset, err := config.ParsePreset(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = string(preset)
	}

	path, err := dbPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Results cleared.")
		return
	}

	var results []storage.Result
	if difficulty == "" {
		results, err = store.RecentResults(flagScoresLimit)
	} else {
		results, err = store.ResultsByDifficulty(difficulty, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	title := "all levels"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'othello play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-7s  %-5s  %s\n", "#", "Result", "Score", "Side", "Level", "Moves", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-7s  %-5s  %s\n", "-", "------", "-----", "----", "-----", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-6s  %-7s  %-6s  %-7s  %-5d  %s\n",
			i+1,
			r.Outcome(),
			fmt.Sprintf("%d-%d", r.Dark, r.Light),
			r.HumanSide,
			r.Difficulty,
			r.Moves,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(difficulty)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Lost: %d  Drawn: %d  Best margin: %+d\n",
		stats.Games, stats.Wins, stats.Losses, stats.Draws, stats.BestMargin)
}
