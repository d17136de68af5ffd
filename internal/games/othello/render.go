package othello

import (
	"fmt"

	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

const (
	cellWidth  = 4 // columns per square including the left border
	cellHeight = 2 // rows per square including the top border

	boardW = engine.Size*cellWidth + 1
	boardH = engine.Size*cellHeight + 1

	boardTop   = 4 // title, score line, blank line, column labels
	minScreenW = boardW + 6
	minScreenH = boardTop + boardH + 3
)

const (
	darkDisk  = '●'
	lightDisk = '○'
	legalMark = '·'
	hintMark  = '*'
)

// Layout maps board squares to screen positions and back.
type Layout struct {
	Origin core.Point // top-left corner of the grid
}

// NewLayout centers the board horizontally on a w x h screen.
func NewLayout(w, h int) Layout {
	x := (w - boardW) / 2
	if x < 3 {
		x = 3 // room for row labels
	}
	return Layout{Origin: core.Point{X: x, Y: boardTop}}
}

// Bounds returns the screen area covered by the grid.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(l.Origin.X, l.Origin.Y, boardW, boardH)
}

// CellAt converts a screen position to a board square. Grid lines and
// positions outside the board map to nothing.
func (l Layout) CellAt(x, y int) (engine.Coord, bool) {
	if !l.Bounds().Contains(x, y) {
		return engine.Coord{}, false
	}
	dx, dy := x-l.Origin.X, y-l.Origin.Y
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return engine.Coord{}, false
	}
	return engine.Coord{Row: dy/cellHeight + 1, Col: dx/cellWidth + 1}, true
}

// CellCenter returns the screen position where a square's disk is drawn.
func (l Layout) CellCenter(c engine.Coord) core.Point {
	return core.Point{
		X: l.Origin.X + (c.Col-1)*cellWidth + cellWidth/2,
		Y: l.Origin.Y + (c.Row-1)*cellHeight + 1,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderSquares(dst)
	g.renderStatus(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightWhite)

	dark, light := g.session.Scores()
	score := fmt.Sprintf("%c Dark %2d    %c Light %2d    You: %s",
		darkDisk, dark, lightDisk, light, g.session.Human())
	dst.DrawTextCentered(1, score, core.ColorDefault)

	o := g.layout.Origin
	for col := 1; col <= engine.Size; col++ {
		p := g.layout.CellCenter(engine.Coord{Row: 1, Col: col})
		dst.SetColored(p.X, o.Y-1, rune('a'+col-1), core.ColorGray)
	}
	for row := 1; row <= engine.Size; row++ {
		p := g.layout.CellCenter(engine.Coord{Row: row, Col: 1})
		dst.SetColored(o.X-2, p.Y, rune('0'+row), core.ColorGray)
	}
}

// renderGrid draws the 8x8 frame with box-drawing characters.
func (g *Game) renderGrid(dst *core.Screen) {
	o := g.layout.Origin
	for y := 0; y <= engine.Size; y++ {
		for x := 0; x <= engine.Size; x++ {
			px := o.X + x*cellWidth
			py := o.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == engine.Size:
				corner = '┐'
			case y == engine.Size && x == 0:
				corner = '└'
			case y == engine.Size && x == engine.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == engine.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == engine.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGreen)

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGreen)
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGreen)
				}
			}
		}
	}
}

// renderSquares draws disks, legal-move markers, the hint and the cursor.
func (g *Game) renderSquares(dst *core.Screen) {
	board := g.session.Board()

	legal := make(map[engine.Coord]bool)
	if g.session.Phase() == PhaseAwaitingHuman && !g.thinking {
		for _, c := range g.session.LegalMoves() {
			legal[c] = true
		}
	}
	last, hasLast := g.session.LastMove()

	for _, c := range engine.Squares() {
		p := g.layout.CellCenter(c)
		switch board.At(c) {
		case engine.Dark:
			dst.SetColored(p.X, p.Y, darkDisk, core.ColorGray)
		case engine.Light:
			dst.SetColored(p.X, p.Y, lightDisk, core.ColorBrightWhite)
		default:
			if legal[c] {
				dst.SetColored(p.X, p.Y, legalMark, core.ColorBrightGreen)
			}
		}

		if hasLast && last.Move == c {
			dst.SetColored(p.X+1, p.Y, '\'', core.ColorRed)
		}
	}

	if g.hint != nil {
		p := g.layout.CellCenter(*g.hint)
		dst.SetColored(p.X, p.Y, hintMark, core.ColorBrightYellow)
	}

	if !g.session.IsOver() {
		p := g.layout.CellCenter(g.cursor)
		dst.SetColored(p.X-1, p.Y, '[', core.ColorYellow)
		dst.SetColored(p.X+1, p.Y, ']', core.ColorYellow)
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := g.layout.Origin.Y + boardH + 1

	msg := g.message
	switch {
	case msg != "":
	case g.session.IsOver():
		msg = g.outcome()
	case g.session.Phase() == PhaseAwaitingHuman:
		msg = fmt.Sprintf("Your move (%s) - cursor at %s", g.session.Human(), g.cursor)
	default:
		msg = "Engine to move"
	}
	color := core.ColorYellow
	if g.session.IsOver() {
		color = core.ColorBrightYellow
	}
	dst.DrawTextCentered(y, msg, color)

	help := "arrows/click: move  enter: play  h: hint  q: quit"
	if g.session.IsOver() {
		help = "r: play again  b: menu  q: quit"
	}
	dst.DrawTextCentered(y+1, help, core.ColorGray)
}
