// Package engine implements Othello rules and an alpha-beta move search.
// It has no I/O and no external dependencies so every function can be
// called from any goroutine as long as each caller owns its board value.
package engine

import (
	"fmt"
	"strings"
)

// Size is the number of playable rows and columns.
const Size = 8

// gridSize includes the one-cell sentinel ring around the playable area.
const gridSize = Size + 2

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Dark
	Light
	OffBoard // sentinel ring, never part of play
)

// String returns a single-character representation of the cell.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "."
	case Dark:
		return "X"
	case Light:
		return "O"
	default:
		return "?"
	}
}

// Side identifies a player.
type Side uint8

const (
	SideDark Side = iota
	SideLight
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideDark {
		return SideLight
	}
	return SideDark
}

// Cell returns the disk cell owned by the side.
func (s Side) Cell() Cell {
	if s == SideDark {
		return Dark
	}
	return Light
}

// String returns "dark" or "light".
func (s Side) String() string {
	if s == SideDark {
		return "dark"
	}
	return "light"
}

// ParseSide converts "dark"/"light" (also "black"/"white") to a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark", "black", "x":
		return SideDark, nil
	case "light", "white", "o":
		return SideLight, nil
	}
	return SideDark, fmt.Errorf("engine: unknown side %q", s)
}

// Coord addresses a square in board-internal coordinates (1..8 on the
// playable area, 0 and 9 on the sentinel ring).
type Coord struct {
	Row int
	Col int
}

// Valid reports whether the coordinate lies on the playable area.
func (c Coord) Valid() bool {
	return c.Row >= 1 && c.Row <= Size && c.Col >= 1 && c.Col <= Size
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Direction) Coord {
	return Coord{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String returns algebraic notation, column letter then row number ("d3").
func (c Coord) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col-1, c.Row)
}

// ParseCoord parses algebraic notation such as "d3" or "H8".
func ParseCoord(s string) (Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("engine: invalid coordinate %q", s)
	}
	c := Coord{Row: int(s[1]-'1') + 1, Col: int(s[0]-'a') + 1}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("engine: coordinate %q out of range", s)
	}
	return c, nil
}

// Board is a padded 10x10 grid. Board is an array value: assigning it
// copies every cell, which is what keeps search branches isolated.
type Board [gridSize][gridSize]Cell

// NewBoard returns an empty board with the sentinel ring in place.
func NewBoard() Board {
	var b Board
	for i := 0; i < gridSize; i++ {
		b[0][i] = OffBoard
		b[gridSize-1][i] = OffBoard
		b[i][0] = OffBoard
		b[i][gridSize-1] = OffBoard
	}
	return b
}

// Initial returns the standard starting position.
func Initial() Board {
	b := NewBoard()
	b[4][4], b[5][5] = Light, Light
	b[4][5], b[5][4] = Dark, Dark
	return b
}

// At returns the cell at c. c must be within 0..9 on both axes.
func (b *Board) At(c Coord) Cell {
	return b[c.Row][c.Col]
}

// Set stores cell at c. Writes to the sentinel ring are ignored so the
// padding invariant cannot be broken.
func (b *Board) Set(c Coord, cell Cell) {
	if !c.Valid() {
		return
	}
	b[c.Row][c.Col] = cell
}

// Count returns how many playable squares hold cell.
func (b *Board) Count(cell Cell) int {
	n := 0
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			if b[row][col] == cell {
				n++
			}
		}
	}
	return n
}

// Counts returns the dark, light and empty totals.
func (b *Board) Counts() (dark, light, empty int) {
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			switch b[row][col] {
			case Dark:
				dark++
			case Light:
				light++
			case Empty:
				empty++
			}
		}
	}
	return dark, light, empty
}

// Squares lists every playable coordinate in row-major order.
func Squares() []Coord {
	out := make([]Coord, 0, Size*Size)
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			out = append(out, Coord{Row: row, Col: col})
		}
	}
	return out
}

// String renders the playable area with file/rank labels.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 1; row <= Size; row++ {
		fmt.Fprintf(&sb, "%d", row)
		for col := 1; col <= Size; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from eight rows of eight characters using the
// symbols of Cell.String. Whitespace inside a row is ignored. It exists
// mostly to make positions readable in tests and on the command line.
func ParseBoard(rows ...string) (Board, error) {
	b := NewBoard()
	if len(rows) != Size {
		return b, fmt.Errorf("engine: need %d rows, got %d", Size, len(rows))
	}
	for i, raw := range rows {
		row := strings.ReplaceAll(raw, " ", "")
		if len(row) != Size {
			return b, fmt.Errorf("engine: row %d has %d cells, want %d", i+1, len(row), Size)
		}
		for j, ch := range row {
			var cell Cell
			switch ch {
			case '.', '-':
				cell = Empty
			case 'X', 'x', 'B', 'b':
				cell = Dark
			case 'O', 'o', 'W', 'w':
				cell = Light
			default:
				return b, fmt.Errorf("engine: row %d: unknown cell %q", i+1, ch)
			}
			b[i+1][j+1] = cell
		}
	}
	return b, nil
}
