package othello

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

// MatchOptions configures an engine-versus-engine game.
type MatchOptions struct {
	Rules      engine.Rules
	Passing    bool
	DarkDepth  int
	LightDepth int
	Logger     *log.Logger
}

// MatchResult is the outcome of SelfPlay.
type MatchResult struct {
	Board   engine.Board
	History []MoveRecord
	Nodes   map[engine.Side]int // nodes searched by each side
}

// SelfPlay lets the engine play both sides from the initial position.
// Without passing, the game ends as soon as the side to move is stuck.
func SelfPlay(opts MatchOptions) MatchResult {
	if opts.Rules.Directions == nil {
		opts.Rules = engine.Classic
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	depth := map[engine.Side]int{
		engine.SideDark:  max(opts.DarkDepth, 1),
		engine.SideLight: max(opts.LightDepth, 1),
	}
	res := MatchResult{
		Board: engine.Initial(),
		Nodes: make(map[engine.Side]int),
	}

	side := engine.SideDark
	for !opts.Rules.IsTerminal(&res.Board) {
		searcher := engine.NewSearcher(opts.Rules, opts.Passing)
		move, ok := searcher.BestMove(res.Board, side, depth[side])
		res.Nodes[side] += searcher.Stats().Nodes

		if !ok {
			if !opts.Passing {
				logger.Info("no move, game ends", "side", side)
				break
			}
			logger.Debug("pass", "side", side)
			res.History = append(res.History, MoveRecord{Side: side, Pass: true})
			side = side.Opponent()
			continue
		}

		before := res.Board.Count(side.Opponent().Cell())
		res.Board = opts.Rules.MustApply(res.Board, side, move)
		flipped := before - res.Board.Count(side.Opponent().Cell())
		res.History = append(res.History, MoveRecord{Side: side, Move: move, Flipped: flipped})

		logger.Info("move",
			"ply", len(res.History),
			"side", side,
			"move", move,
			"flipped", flipped,
			"nodes", searcher.Stats().Nodes,
		)
		side = side.Opponent()
	}

	dark, light, _ := res.Board.Counts()
	logger.Info("match over", "dark", dark, "light", light, "plies", len(res.History))
	return res
}

// ParseMoves splits a comma or space separated move list such as "d3,c5".
func ParseMoves(s string) ([]engine.Coord, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	moves := make([]engine.Coord, 0, len(fields))
	for _, f := range fields {
		c, err := engine.ParseCoord(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, c)
	}
	return moves, nil
}

// Replay plays a move list from the initial position, dark first. A side
// without a legal move passes automatically. It returns the final board
// and the side to move.
func Replay(rules engine.Rules, moves []engine.Coord) (engine.Board, engine.Side, error) {
	if rules.Directions == nil {
		rules = engine.Classic
	}
	board := engine.Initial()
	side := engine.SideDark

	for i, m := range moves {
		if !rules.HasMove(&board, side) {
			side = side.Opponent()
		}
		next, err := rules.Apply(board, side, m)
		if err != nil {
			return board, side, fmt.Errorf("move %d: %w", i+1, err)
		}
		board = next
		side = side.Opponent()
	}

	if !rules.HasMove(&board, side) && rules.HasMove(&board, side.Opponent()) {
		side = side.Opponent()
	}
	return board, side, nil
}
