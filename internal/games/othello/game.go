// Package othello wires the engine into a playable terminal game: a
// Session holding the live position and a Game that turns platform input
// into moves and draws the board into a core.Screen.
package othello

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

// Settings selects the opponent and rule variant for a Game.
type Settings struct {
	Difficulty string // display name, e.g. "medium"
	Depth      int
	Human      engine.Side
	Diagonals  bool
	Passing    bool
}

// Game is the interactive front of a Session.
type Game struct {
	settings Settings
	logger   *log.Logger
	session  *Session

	cursor   engine.Coord
	hint     *engine.Coord
	thinking bool
	lastEval *EngineResult
	message  string

	screenW  int
	screenH  int
	tooSmall bool
	layout   Layout
}

// New creates a game; call Reset before the first Step.
func New(settings Settings, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{settings: settings, logger: logger}
}

// ID returns the identifier used for result storage.
func (g *Game) ID() string {
	return "othello"
}

// Title returns the display name.
func (g *Game) Title() string {
	rules := engine.NewRules(g.settings.Diagonals).Name()
	return fmt.Sprintf("Othello - %s (%s rules)", g.settings.Difficulty, rules)
}

// Settings returns the game settings.
func (g *Game) Settings() Settings {
	return g.settings
}

// Logger returns the logger the game writes to.
func (g *Game) Logger() *log.Logger {
	return g.logger
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Reset starts a new game sized for the given screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(Options{
		Rules:   engine.NewRules(g.settings.Diagonals),
		Passing: g.settings.Passing,
		Human:   g.settings.Human,
		Depth:   g.settings.Depth,
		Logger:  g.logger,
	})
	g.cursor = engine.Coord{Row: 3, Col: 4}
	g.hint = nil
	g.thinking = false
	g.lastEval = nil
	g.message = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout without touching the position.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = NewLayout(w, h)
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step processes one batch of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	if in.Has(core.ActionClick) {
		if c, ok := g.layout.CellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = c
			g.tryPlay(c)
		}
	} else if in.Has(core.ActionConfirm) {
		g.tryPlay(g.cursor)
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	return g.result()
}

// BeginThinking marks the engine as busy and returns the search to run.
// It returns nil when it is not the engine's turn or a search is running.
func (g *Game) BeginThinking() func() EngineResult {
	if g.session == nil || g.thinking || g.session.Phase() != PhaseAwaitingEngine {
		return nil
	}
	g.thinking = true
	g.message = "Engine is thinking..."
	return g.session.Think()
}

// FinishThinking applies a finished engine search.
func (g *Game) FinishThinking(res EngineResult) core.StepResult {
	g.thinking = false
	if err := g.session.ApplyEngine(res); err != nil {
		// A restart while the engine was busy leaves a stale result behind.
		g.logger.Debug("engine result dropped", "error", err)
		return g.result()
	}
	g.lastEval = &res
	switch {
	case !res.OK:
		g.message = fmt.Sprintf("Engine (%s) has no move", res.Side)
	default:
		g.message = fmt.Sprintf("Engine played %s (%d nodes)", res.Move, res.Stats.Nodes)
	}
	g.afterMove()
	return g.result()
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Margin(),
		GameOver: g.session.IsOver(),
		Thinking: g.thinking,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:      g.State(),
		EngineTurn: !g.thinking && g.session.Phase() == PhaseAwaitingEngine,
	}
}

func (g *Game) moveCursor(dRow, dCol int) {
	g.cursor.Row = core.Clamp(g.cursor.Row+dRow, 1, engine.Size)
	g.cursor.Col = core.Clamp(g.cursor.Col+dCol, 1, engine.Size)
}

func (g *Game) tryPlay(c engine.Coord) {
	err := g.session.PlayHuman(c)
	switch {
	case err == nil:
		g.hint = nil
		g.message = fmt.Sprintf("You played %s", c)
		g.afterMove()
	case g.session.IsOver():
		g.message = "Game over - press R to play again"
	case g.session.Phase() != PhaseAwaitingHuman:
		g.message = "Wait for the engine"
	default:
		g.message = fmt.Sprintf("%s is not a legal move", c)
	}
}

func (g *Game) showHint() {
	c, ok := g.session.Hint()
	if !ok {
		return
	}
	g.hint = &c
	g.cursor = c
	g.message = fmt.Sprintf("Engine suggests %s", c)
}

// afterMove reports passes and the final result.
func (g *Game) afterMove() {
	hist := g.session.History()
	if n := len(hist); n > 0 && hist[n-1].Pass {
		g.message = fmt.Sprintf("%s has no move and passes", capitalize(hist[n-1].Side.String()))
	}
	if g.session.IsOver() {
		g.message = g.outcome()
	}
}

func (g *Game) outcome() string {
	dark, light := g.session.Scores()
	winner, draw := g.session.Winner()
	switch {
	case draw:
		return fmt.Sprintf("Draw %d-%d", dark, light)
	case winner == g.session.Human():
		return fmt.Sprintf("You win %d-%d", dark, light)
	default:
		return fmt.Sprintf("Engine wins %d-%d", dark, light)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
