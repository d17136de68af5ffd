package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/games/othello"
	"github.com/vovakirdan/tui-othello/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated under the XDG data directory.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server; every connection gets its own game.
type SSHServer struct {
	config SSHServerConfig
	game   config.OthelloConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, gameCfg config.OthelloConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open results database", "error", err)
			// Continue without storage
		}
	}

	srv := &SSHServer{
		config: cfg,
		game:   gameCfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		p, err := xdg.DataFile(filepath.Join("othello", "host_key"))
		if err != nil {
			return nil, fmt.Errorf("cannot resolve host key path: %w", err)
		}
		hostKeyPath = p
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:    pty.Window.Width,
		ScreenH:    pty.Window.Height,
		ThinkDelay: othello.ThinkDelay(s.game),
	}

	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.game, s.store, cfg, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a SessionModel currently shows.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard one key away. It is the top-level model for SSH sessions.
type SessionModel struct {
	game       config.OthelloConfig
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	screen     sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(gameCfg config.OthelloConfig, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		game:   gameCfg,
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(gameCfg, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.screen == screenGame && m.gameModel != nil:
		return m.updateGame(msg)
	case m.screen == screenScores && m.scoreboard != nil:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	result := m.menu.Result()

	switch {
	case result.WantsScoreboard:
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.screen = screenScores
		return m, sb.Init()

	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Selected() != nil:
		settings := othello.SettingsFromConfig(m.game, result.Preset, result.Side)
		m.logger.Info("game started", "difficulty", settings.Difficulty, "side", settings.Human)

		gm := NewGameModel(settings, m.store, m.config, m.logger)
		m.gameModel = &gm
		m.screen = screenGame
		return m, gm.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.backToMenu()
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsGoingBack():
		m.scoreboard = nil
		m.backToMenu()
		return m, m.menu.Init()
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// backToMenu resets the menu, keeping the chosen side.
func (m *SessionModel) backToMenu() {
	side := m.menu.Side()
	m.menu = NewMenuModel(m.game, m.config)
	m.menu.side = side
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.screen == screenGame && m.gameModel != nil:
		return m.gameModel.View()
	case m.screen == screenScores && m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
