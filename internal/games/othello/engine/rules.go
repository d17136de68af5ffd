package engine

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by Apply when the move does not capture
// anything or targets an occupied square.
var ErrIllegalMove = errors.New("illegal move")

// Direction is a unit step on the board.
type Direction struct {
	DRow int
	DCol int
}

// Orthogonal holds the four directions scanned by classic rules.
var Orthogonal = []Direction{
	{DRow: 0, DCol: -1},
	{DRow: 0, DCol: 1},
	{DRow: -1, DCol: 0},
	{DRow: 1, DCol: 0},
}

// AllDirections adds the four diagonals required by tournament Othello.
var AllDirections = []Direction{
	{DRow: 0, DCol: -1},
	{DRow: 0, DCol: 1},
	{DRow: -1, DCol: 0},
	{DRow: 1, DCol: 0},
	{DRow: -1, DCol: -1},
	{DRow: -1, DCol: 1},
	{DRow: 1, DCol: -1},
	{DRow: 1, DCol: 1},
}

// Rules selects which directions can capture.
//
// Classic only scans rows and columns. Standard adds the diagonals and
// therefore plays differently from Classic in most positions.
type Rules struct {
	Directions []Direction
}

var (
	Classic  = Rules{Directions: Orthogonal}
	Standard = Rules{Directions: AllDirections}
)

// NewRules returns Standard when diagonals is true, Classic otherwise.
func NewRules(diagonals bool) Rules {
	if diagonals {
		return Standard
	}
	return Classic
}

// Name returns "classic" or "standard".
func (r Rules) Name() string {
	if len(r.Directions) == len(AllDirections) {
		return "standard"
	}
	return "classic"
}

// IsLegal reports whether side may play at c.
func (r Rules) IsLegal(b *Board, side Side, c Coord) bool {
	if !c.Valid() || b.At(c) != Empty {
		return false
	}
	own, opp := side.Cell(), side.Opponent().Cell()
	for _, d := range r.Directions {
		next := c.Step(d)
		if b.At(next) != opp {
			continue
		}
		for b.At(next) == opp {
			next = next.Step(d)
		}
		if b.At(next) == own {
			return true
		}
	}
	return false
}

// CapturedRun returns the opponent disks that a move by side at c would
// flip in direction d, or nil if the run is not closed by one of side's
// own disks.
func (r Rules) CapturedRun(b *Board, side Side, c Coord, d Direction) []Coord {
	own, opp := side.Cell(), side.Opponent().Cell()
	var run []Coord
	next := c.Step(d)
	for b.At(next) == opp {
		run = append(run, next)
		next = next.Step(d)
	}
	if len(run) == 0 || b.At(next) != own {
		return nil
	}
	return run
}

// LegalMoves lists side's legal moves in row-major order.
func (r Rules) LegalMoves(b *Board, side Side) []Coord {
	var moves []Coord
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			c := Coord{Row: row, Col: col}
			if r.IsLegal(b, side, c) {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

// HasMove reports whether side has at least one legal move.
func (r Rules) HasMove(b *Board, side Side) bool {
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if r.IsLegal(b, side, Coord{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// Apply plays side at c on a copy of b and returns the copy. The input
// board is left untouched. An illegal move yields ErrIllegalMove.
func (r Rules) Apply(b Board, side Side, c Coord) (Board, error) {
	if !r.IsLegal(&b, side, c) {
		return b, fmt.Errorf("engine: %s at %s: %w", side, c, ErrIllegalMove)
	}
	var flips []Coord
	for _, d := range r.Directions {
		flips = append(flips, r.CapturedRun(&b, side, c, d)...)
	}
	own := side.Cell()
	b.Set(c, own)
	for _, f := range flips {
		b.Set(f, own)
	}
	return b, nil
}

// MustApply is Apply for callers that already checked legality. It panics
// on an illegal move since that is a programming error.
func (r Rules) MustApply(b Board, side Side, c Coord) Board {
	next, err := r.Apply(b, side, c)
	if err != nil {
		panic(err)
	}
	return next
}

// IsTerminal reports whether neither side has a legal move anywhere.
func (r Rules) IsTerminal(b *Board) bool {
	return !r.HasMove(b, SideDark) && !r.HasMove(b, SideLight)
}
