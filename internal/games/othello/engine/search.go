package engine

import "math"

// Inf bounds every reachable score; disk differentials never exceed 64.
const Inf = math.MaxInt32

// Stats counts the work done by the most recent BestMove call.
type Stats struct {
	Nodes   int // AlphaBeta invocations
	Leaves  int // static evaluations
	Cutoffs int // alpha-beta prunes
}

// Searcher runs a fixed-depth minimax search with alpha-beta pruning.
// A Searcher keeps per-search counters and must not be shared between
// goroutines; boards passed in are never modified.
type Searcher struct {
	Rules Rules

	// Passing lets a side without a legal move pass inside the tree.
	// When false such a node yields -Inf or +Inf, the empty max/min.
	Passing bool

	// Maximizer is the side every leaf is scored for. BestMove sets it.
	Maximizer Side

	stats Stats
}

// NewSearcher returns a searcher for the given rule set.
func NewSearcher(rules Rules, passing bool) *Searcher {
	return &Searcher{Rules: rules, Passing: passing}
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// AlphaBeta returns the minimax value of b with toMove to play, searched
// depth plies deep and always scored from Maximizer's point of view.
func (s *Searcher) AlphaBeta(b Board, toMove Side, alpha, beta, depth int) int {
	s.stats.Nodes++
	if depth <= 0 || s.Rules.IsTerminal(&b) {
		s.stats.Leaves++
		return Score(&b, s.Maximizer)
	}

	moves := s.Rules.LegalMoves(&b, toMove)
	if len(moves) == 0 && s.Passing {
		return s.AlphaBeta(b, toMove.Opponent(), alpha, beta, depth-1)
	}

	if toMove == s.Maximizer {
		value := -Inf
		for _, m := range moves {
			child := s.Rules.MustApply(b, toMove, m)
			value = max(value, s.AlphaBeta(child, toMove.Opponent(), alpha, beta, depth-1))
			alpha = max(alpha, value)
			if alpha >= beta {
				s.stats.Cutoffs++
				break
			}
		}
		return value
	}

	value := Inf
	for _, m := range moves {
		child := s.Rules.MustApply(b, toMove, m)
		value = min(value, s.AlphaBeta(child, toMove.Opponent(), alpha, beta, depth-1))
		beta = min(beta, value)
		if alpha >= beta {
			s.stats.Cutoffs++
			break
		}
	}
	return value
}

// BestMove picks side's move by searching depth plies, the root ply
// included. Ties go to the earliest move in row-major order. A lone legal
// move is returned without searching. ok is false when side cannot move.
func (s *Searcher) BestMove(b Board, side Side, depth int) (move Coord, ok bool) {
	s.stats = Stats{}
	s.Maximizer = side

	moves := s.Rules.LegalMoves(&b, side)
	switch len(moves) {
	case 0:
		return Coord{}, false
	case 1:
		return moves[0], true
	}

	best := moves[0]
	bestScore := -Inf
	for _, m := range moves {
		child := s.Rules.MustApply(b, side, m)
		score := s.AlphaBeta(child, side.Opponent(), -Inf, Inf, depth-1)
		if score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best, true
}
