package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/games/othello"
	"github.com/vovakirdan/tui-othello/internal/storage"
)

// GameModel is the Bubble Tea model for one human-versus-engine game.
type GameModel struct {
	game        *othello.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	gameState   core.GameState
	gen         int // bumped on restart so late engine replies are dropped
	standalone  bool // quit the program on back instead of returning to a menu
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the result has been saved for the current game
}

// NewGameModel creates a model and starts a new game.
func NewGameModel(settings othello.Settings, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	game := othello.New(settings, logger)
	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    game.Logger(),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		gameState: game.State(),
	}
}

// Init schedules the engine when it moves first.
func (m GameModel) Init() tea.Cmd {
	if m.game.Session().Phase() == othello.PhaseAwaitingEngine {
		return thinkDelayCmd(m.config.ThinkDelay, m.gen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		frame := core.NewInputFrame()
		if !m.keyMapper.MapMouseToFrame(msg, &frame) {
			return m, nil
		}
		return m.step(frame)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case ThinkMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		search := m.game.BeginThinking()
		if search == nil {
			return m, nil
		}
		m.gameState = m.game.State()
		return m, engineCmd(search, m.gen)

	case EngineMsg:
		if msg.Gen != m.gen {
			m.logger.Debug("dropping engine reply from previous game")
			return m, nil
		}
		return m.afterStep(m.game.FinishThinking(msg.Result))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case frame.Has(core.ActionRestart) && m.gameState.GameOver:
		return m.restart()
	case frame.Has(core.ActionBack) && m.gameState.GameOver:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.step(frame)
}

// step feeds one input frame to the game.
func (m GameModel) step(frame core.InputFrame) (tea.Model, tea.Cmd) {
	return m.afterStep(m.game.Step(frame))
}

// afterStep records the result of a finished game and schedules the
// engine when it is its turn.
func (m GameModel) afterStep(result core.StepResult) (tea.Model, tea.Cmd) {
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	if result.EngineTurn {
		return m, thinkDelayCmd(m.config.ThinkDelay, m.gen)
	}
	return m, nil
}

// restart begins a new game with the same settings.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.gen++
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.resultSaved = false
	return m, m.Init()
}

// saveResult stores the finished game in the results ledger.
func (m *GameModel) saveResult() {
	res := ResultFor(m.game)
	m.logger.Info("game finished",
		"difficulty", res.Difficulty,
		"winner", res.Winner,
		"dark", res.Dark,
		"light", res.Light,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(res); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save result", "error", err)
	}
}

// ResultFor summarizes a finished game for storage.
func ResultFor(game *othello.Game) storage.Result {
	s := game.Session()
	dark, light := s.Scores()
	winner, draw := s.Winner()
	res := storage.Result{
		Difficulty: game.Settings().Difficulty,
		HumanSide:  s.Human().String(),
		Dark:       dark,
		Light:      light,
		Winner:     winner.String(),
		Moves:      len(s.History()),
		Rules:      s.Rules().Name(),
	}
	if draw {
		res.Winner = storage.WinnerDraw
	}
	return res
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	name := filepath.Join("othello", "screenshots", fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	path, err := xdg.DataFile(name)
	if err != nil {
		m.logger.Warn("cannot resolve screenshot path", "error", err)
		return
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Game exposes the running game.
func (m GameModel) Game() *othello.Game {
	return m.game
}

// Run starts the Bubble Tea program for a single game.
// It returns true when the player asked to go back to the menu.
func Run(settings othello.Settings, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(settings, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select squares
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
