// othello is a terminal Othello game against an alpha-beta engine.
//
// Usage:
//
//	othello play              - Play a game against the engine
//	othello menu              - Pick a difficulty interactively
//	othello serve             - Start SSH server for remote play
//	othello scores            - Show recorded results
//	othello levels            - List difficulty presets
//	othello selfplay          - Let the engine play itself
//	othello hint --moves d3   - Ask the engine about a position
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: XDG search)
//	--db <path>         - Results database (default: XDG data dir)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/games/othello"
	"github.com/vovakirdan/tui-othello/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "othello",
	Short: "Othello - play against an alpha-beta engine in your terminal",
	Long: `Othello is a terminal board game against a minimax engine with
alpha-beta pruning. Pick a difficulty to set how many plies it looks ahead.

Available commands:
  play      - Play a game directly
  menu      - Interactive difficulty picker
  serve     - Start SSH server for remote play
  scores    - View recorded results
  levels    - List difficulty presets
  selfplay  - Engine versus engine
  hint      - Analyse a position given as a move list

Examples:
  othello play --difficulty hard
  othello menu
  othello serve --ssh :2222
  othello selfplay --dark hard --light easy
  othello hint --moves d3,c5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(selfplayCmd)
	rootCmd.AddCommand(hintCmd)
}

// newLogger builds the structured logger for console commands.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// uiLogger returns a logger for full-screen commands. Output goes to a file
// in the XDG state directory so it does not draw over the board.
func uiLogger() *log.Logger {
	path, err := xdg.StateFile("othello/othello.log")
	if err != nil {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard)
	}
	return newLogger(f, "othello")
}

// loadConfig loads the game config or exits.
func loadConfig() config.OthelloConfig {
	cfg, err := config.LoadOthello(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// dbPath resolves --db, falling back to the XDG data directory.
func dbPath() (string, error) {
	if flagDBPath != "" {
		return flagDBPath, nil
	}
	return config.DefaultDBPath()
}

// openStore opens the results database. Interactive commands keep going
// without it, so failures are reported and nil is returned.
func openStore() *storage.Store {
	path, err := dbPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(cfg config.OthelloConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.ThinkDelay = othello.ThinkDelay(cfg)
	return rc
}
