package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/games/othello"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

var (
	flagHintMoves string
	flagHintLevel string
)

var hintCmd = &cobra.Command{
	Use:   "hint",
	Short: "Suggest a move for a position",
	Long: `Replay a move list from the initial position and ask the engine for
the best reply. Sides without a legal move pass automatically.

Examples:
  othello hint
  othello hint --moves d3,c5
  othello hint --moves "d3 c5 f6" --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagHintMoves, "moves", "", "Moves played so far, e.g. d3,c5")
	hintCmd.Flags().StringVar(&flagHintLevel, "difficulty", "hard", "Search preset: easy, medium, hard")
}

func runHint(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	preset, err := config.ParsePreset(flagHintLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	moves, err := othello.ParseMoves(flagHintMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rules := engine.NewRules(cfg.Rules.Diagonals)
	board, side, err := othello.Replay(rules, moves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(board.String())
	dark, light, _ := board.Counts()
	fmt.Printf("Dark: %d  Light: %d\n", dark, light)

	if rules.IsTerminal(&board) {
		fmt.Println("Game over.")
		return
	}

	legal := rules.LegalMoves(&board, side)
	names := make([]string, len(legal))
	for i, c := range legal {
		names[i] = c.String()
	}
	fmt.Printf("%s to move. Legal: %s\n", side, strings.Join(names, " "))

	searcher := engine.NewSearcher(rules, cfg.Rules.Passing)
	move, ok := searcher.BestMove(board, side, config.DepthForPreset(cfg, preset))
	if !ok {
		fmt.Printf("%s has no move and must pass.\n", side)
		return
	}
	fmt.Printf("Best (%s, depth %d): %s  [%d nodes]\n",
		preset, config.DepthForPreset(cfg, preset), move, searcher.Stats().Nodes)
}
