package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Othello SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a difficulty menu and its own
engine. Results are stored per-server (all users share the same ledger).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key in the XDG data directory

Examples:
  othello serve                           # Listen on :23234 with auto-generated key
  othello serve --ssh :2222               # Listen on port 2222
  othello serve --host-key ./my_host_key  # Use specific host key
  othello serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	logger := newLogger(os.Stderr, "othello-ssh")

	path, err := dbPath()
	if err != nil {
		logger.Warn("running without results database", "error", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = path
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(cfg, gameCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Othello SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
