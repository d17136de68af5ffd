package othello

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

var (
	// ErrGameOver is returned when a move is attempted after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrNotYourTurn is returned when the human moves while the engine is to play.
	ErrNotYourTurn = errors.New("not your turn")
	// ErrStaleResult is returned when an engine result belongs to an older position.
	ErrStaleResult = errors.New("engine result is stale")
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseAwaitingHuman Phase = iota
	PhaseAwaitingEngine
	PhaseGameOver
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingHuman:
		return "awaiting-human"
	case PhaseAwaitingEngine:
		return "awaiting-engine"
	default:
		return "game-over"
	}
}

// Options configures a Session.
type Options struct {
	Rules   engine.Rules
	Passing bool        // a side without moves passes instead of ending the game
	Human   engine.Side // side controlled by the player
	Depth   int         // engine search depth in plies
	Logger  *log.Logger // nil discards log output
}

// MoveRecord is one entry of the game history.
type MoveRecord struct {
	Side    engine.Side
	Move    engine.Coord
	Pass    bool
	Flipped int
}

// String returns "dark d3" or "light pass".
func (r MoveRecord) String() string {
	if r.Pass {
		return r.Side.String() + " pass"
	}
	return r.Side.String() + " " + r.Move.String()
}

// EngineResult is the outcome of one engine search.
type EngineResult struct {
	Ply     int // history length the search started from
	Side    engine.Side
	Move    engine.Coord
	OK      bool // false when the engine had no legal move
	Stats   engine.Stats
	Elapsed time.Duration
}

// Session owns the live board of one human-versus-engine game.
// It is not safe for concurrent use; the engine search itself can run
// elsewhere through Think since it works on a board copy.
type Session struct {
	opts    Options
	board   engine.Board
	toMove  engine.Side
	phase   Phase
	history []MoveRecord
	logger  *log.Logger
}

// NewSession starts a game from the initial position. Dark moves first.
func NewSession(opts Options) *Session {
	if opts.Rules.Directions == nil {
		opts.Rules = engine.Classic
	}
	if opts.Depth < 1 {
		opts.Depth = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:   opts,
		board:  engine.Initial(),
		toMove: engine.SideDark,
		logger: logger,
	}
	s.phase = s.phaseFor(s.toMove)
	return s
}

// Board returns a copy of the current position.
func (s *Session) Board() engine.Board {
	return s.board
}

// ToMove returns the side to play.
func (s *Session) ToMove() engine.Side {
	return s.toMove
}

// Human returns the player's side.
func (s *Session) Human() engine.Side {
	return s.opts.Human
}

// EngineSide returns the engine's side.
func (s *Session) EngineSide() engine.Side {
	return s.opts.Human.Opponent()
}

// Rules returns the rule set in use.
func (s *Session) Rules() engine.Rules {
	return s.opts.Rules
}

// Depth returns the engine search depth.
func (s *Session) Depth() int {
	return s.opts.Depth
}

// Phase returns the state machine position.
func (s *Session) Phase() Phase {
	return s.phase
}

// IsOver reports whether the game has ended.
func (s *Session) IsOver() bool {
	return s.phase == PhaseGameOver
}

// History returns a copy of the moves played so far.
func (s *Session) History() []MoveRecord {
	out := make([]MoveRecord, len(s.history))
	copy(out, s.history)
	return out
}

// LastMove returns the most recent non-pass move.
func (s *Session) LastMove() (MoveRecord, bool) {
	for i := len(s.history) - 1; i >= 0; i-- {
		if !s.history[i].Pass {
			return s.history[i], true
		}
	}
	return MoveRecord{}, false
}

// LegalMoves lists the moves of the side to play. Empty once the game is over.
func (s *Session) LegalMoves() []engine.Coord {
	if s.IsOver() {
		return nil
	}
	return s.opts.Rules.LegalMoves(&s.board, s.toMove)
}

// Scores returns the disk counts.
func (s *Session) Scores() (dark, light int) {
	dark, light, _ = s.board.Counts()
	return dark, light
}

// Margin returns the human's disks minus the engine's.
func (s *Session) Margin() int {
	return engine.Score(&s.board, s.opts.Human)
}

// Winner returns the side with more disks; draw is true on equal counts.
func (s *Session) Winner() (winner engine.Side, draw bool) {
	dark, light := s.Scores()
	switch {
	case dark > light:
		return engine.SideDark, false
	case light > dark:
		return engine.SideLight, false
	default:
		return engine.SideDark, true
	}
}

// PlayHuman plays the human's move at c.
func (s *Session) PlayHuman(c engine.Coord) error {
	if s.phase == PhaseGameOver {
		return ErrGameOver
	}
	if s.phase != PhaseAwaitingHuman {
		return ErrNotYourTurn
	}
	return s.play(c)
}

// Think returns a function that searches the current position for the
// engine. The returned function only touches its own board copy and may
// run on another goroutine.
func (s *Session) Think() func() EngineResult {
	board := s.board
	side := s.EngineSide()
	ply := len(s.history)
	rules, passing, depth := s.opts.Rules, s.opts.Passing, s.opts.Depth

	return func() EngineResult {
		start := time.Now()
		searcher := engine.NewSearcher(rules, passing)
		move, ok := searcher.BestMove(board, side, depth)
		return EngineResult{
			Ply:     ply,
			Side:    side,
			Move:    move,
			OK:      ok,
			Stats:   searcher.Stats(),
			Elapsed: time.Since(start),
		}
	}
}

// ApplyEngine plays a result produced by Think. A result with no move
// ends the game unless passing is enabled.
func (s *Session) ApplyEngine(res EngineResult) error {
	if s.phase == PhaseGameOver {
		return ErrGameOver
	}
	if s.phase != PhaseAwaitingEngine || res.Side != s.toMove {
		return ErrNotYourTurn
	}
	if res.Ply != len(s.history) {
		return ErrStaleResult
	}

	if !res.OK {
		s.logger.Info("engine has no move", "side", res.Side)
		if s.opts.Passing && !s.opts.Rules.IsTerminal(&s.board) {
			s.pass()
			return nil
		}
		s.finish()
		return nil
	}

	s.logger.Debug("engine move",
		"side", res.Side,
		"move", res.Move,
		"depth", s.opts.Depth,
		"nodes", res.Stats.Nodes,
		"leaves", res.Stats.Leaves,
		"cutoffs", res.Stats.Cutoffs,
		"elapsed", res.Elapsed,
	)
	return s.play(res.Move)
}

// PlayEngine searches and plays the engine's move synchronously.
func (s *Session) PlayEngine() (EngineResult, error) {
	if s.phase != PhaseAwaitingEngine {
		if s.phase == PhaseGameOver {
			return EngineResult{}, ErrGameOver
		}
		return EngineResult{}, ErrNotYourTurn
	}
	res := s.Think()()
	return res, s.ApplyEngine(res)
}

// Hint returns the engine's suggestion for the human at the session depth.
func (s *Session) Hint() (engine.Coord, bool) {
	if s.phase != PhaseAwaitingHuman {
		return engine.Coord{}, false
	}
	searcher := engine.NewSearcher(s.opts.Rules, s.opts.Passing)
	return searcher.BestMove(s.board, s.toMove, s.opts.Depth)
}

// play applies a move for the side to play and advances the turn.
func (s *Session) play(c engine.Coord) error {
	before := s.board.Count(s.toMove.Opponent().Cell())
	next, err := s.opts.Rules.Apply(s.board, s.toMove, c)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	s.board = next
	flipped := before - s.board.Count(s.toMove.Opponent().Cell())
	s.history = append(s.history, MoveRecord{Side: s.toMove, Move: c, Flipped: flipped})
	s.advance()
	return nil
}

// advance hands the turn to the opponent, handling passes and game end.
func (s *Session) advance() {
	if s.opts.Rules.IsTerminal(&s.board) {
		s.finish()
		return
	}

	s.toMove = s.toMove.Opponent()
	if s.opts.Rules.HasMove(&s.board, s.toMove) {
		s.phase = s.phaseFor(s.toMove)
		return
	}

	// Non-terminal, so the other side still has a move.
	if s.opts.Passing {
		s.pass()
		return
	}
	if s.toMove == s.EngineSide() {
		// Let the engine report that it has no move.
		s.phase = PhaseAwaitingEngine
		return
	}
	s.finish()
}

// pass records a pass for the side to play and gives the turn back.
func (s *Session) pass() {
	s.logger.Debug("pass", "side", s.toMove)
	s.history = append(s.history, MoveRecord{Side: s.toMove, Pass: true})
	s.toMove = s.toMove.Opponent()
	s.phase = s.phaseFor(s.toMove)
}

func (s *Session) finish() {
	s.phase = PhaseGameOver
	dark, light := s.Scores()
	s.logger.Info("game over", "dark", dark, "light", light, "moves", len(s.history))
}

func (s *Session) phaseFor(side engine.Side) Phase {
	if side == s.opts.Human {
		return PhaseAwaitingHuman
	}
	return PhaseAwaitingEngine
}
