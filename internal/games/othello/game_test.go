package othello

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-othello/internal/config"
	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

func newTestGame(human engine.Side) *Game {
	g := New(Settings{
		Difficulty: "easy",
		Depth:      2,
		Human:      human,
		Passing:    true,
	}, nil)
	g.Reset(core.DefaultConfig())
	return g
}

func TestLayoutCellAtRoundTrip(t *testing.T) {
	l := NewLayout(80, 24)
	for _, c := range engine.Squares() {
		p := l.CellCenter(c)
		got, ok := l.CellAt(p.X, p.Y)
		if !ok || got != c {
			t.Errorf("CellAt(CellCenter(%v)) = %v, %v", c, got, ok)
		}
	}
}

func TestLayoutCellAtEdges(t *testing.T) {
	l := Layout{Origin: core.Point{X: 10, Y: 4}}

	tests := []struct {
		name   string
		x, y   int
		want   engine.Coord
		wantOK bool
	}{
		{"first square", 11, 5, engine.Coord{Row: 1, Col: 1}, true},
		{"first square right edge", 13, 5, engine.Coord{Row: 1, Col: 1}, true},
		{"last square", 10 + 7*cellWidth + 2, 4 + 7*cellHeight + 1, engine.Coord{Row: 8, Col: 8}, true},
		{"left border", 10, 5, engine.Coord{}, false},
		{"top border", 12, 4, engine.Coord{}, false},
		{"inner vertical line", 14, 5, engine.Coord{}, false},
		{"outside left", 2, 5, engine.Coord{}, false},
		{"below board", 12, 4 + boardH + 1, engine.Coord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.CellAt(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CellAt(%d, %d) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStepConfirmPlaysAtCursor(t *testing.T) {
	g := newTestGame(engine.SideDark)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Step(in)

	if !res.EngineTurn {
		t.Fatal("EngineTurn = false after a legal human move")
	}
	if got := len(g.Session().History()); got != 1 {
		t.Fatalf("history length = %d, want 1", got)
	}
	if g.Session().History()[0].Move.String() != "d3" {
		t.Errorf("played %v, want d3", g.Session().History()[0].Move)
	}
}

func TestStepClickPlaysSquare(t *testing.T) {
	g := newTestGame(engine.SideDark)
	target := engine.Coord{Row: 5, Col: 6} // f5
	p := g.layout.CellCenter(target)

	in := core.NewInputFrame()
	in.Click(p.X, p.Y)
	g.Step(in)

	last, ok := g.Session().LastMove()
	if !ok || last.Move != target {
		t.Errorf("LastMove() = %v, %v, want %v", last, ok, target)
	}
	if g.cursor != target {
		t.Errorf("cursor = %v, want %v", g.cursor, target)
	}
}

func TestStepIllegalMoveKeepsTurn(t *testing.T) {
	g := newTestGame(engine.SideDark)
	g.cursor = engine.Coord{Row: 1, Col: 1}

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Step(in)

	if res.EngineTurn {
		t.Error("EngineTurn = true after an illegal move")
	}
	if !strings.Contains(g.message, "not a legal move") {
		t.Errorf("message = %q", g.message)
	}
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(engine.SideDark)
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	for i := 0; i < 12; i++ {
		g.Step(in)
	}
	if g.cursor.Row != 1 {
		t.Errorf("cursor row = %d, want 1", g.cursor.Row)
	}
}

func TestThinkingCycle(t *testing.T) {
	g := newTestGame(engine.SideLight)

	think := g.BeginThinking()
	if think == nil {
		t.Fatal("BeginThinking() = nil on the engine's turn")
	}
	if g.BeginThinking() != nil {
		t.Error("second BeginThinking() should return nil while busy")
	}
	if !g.State().Thinking {
		t.Error("State().Thinking = false during search")
	}

	res := g.FinishThinking(think())
	if res.EngineTurn || g.State().Thinking {
		t.Errorf("after FinishThinking: %+v", res)
	}
	if g.Session().Phase() != PhaseAwaitingHuman {
		t.Errorf("Phase() = %v, want awaiting-human", g.Session().Phase())
	}
}

func TestFinishThinkingAfterRestart(t *testing.T) {
	g := newTestGame(engine.SideLight)
	think := g.BeginThinking()
	g.Reset(core.DefaultConfig())

	// A result from the previous game must not land in the new one.
	g.session.history = append(g.session.history, MoveRecord{Side: engine.SideDark, Pass: true})
	g.FinishThinking(think())

	if got := len(g.Session().History()); got != 1 {
		t.Errorf("history length = %d, want 1", got)
	}
}

func TestHintMovesCursor(t *testing.T) {
	g := newTestGame(engine.SideDark)
	in := core.NewInputFrame()
	in.Set(core.ActionHint)
	g.Step(in)

	if g.hint == nil {
		t.Fatal("hint not set")
	}
	if g.cursor != *g.hint {
		t.Errorf("cursor = %v, want hint %v", g.cursor, *g.hint)
	}
	if !engine.Classic.IsLegal(&g.session.board, engine.SideDark, *g.hint) {
		t.Errorf("hint %v is not legal", *g.hint)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(engine.SideDark)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Othello - easy (classic rules)") {
		t.Error("title missing")
	}
	if strings.Count(out, string(darkDisk)) < 2 || strings.Count(out, string(lightDisk)) < 2 {
		t.Error("initial disks missing")
	}
	if strings.Count(out, string(legalMark)) != 4 {
		t.Errorf("legal markers = %d, want 4", strings.Count(out, string(legalMark)))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(engine.SideDark)
	g.Resize(30, 10)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("light"); got != "Light" {
		t.Errorf("capitalize(light) = %q, want Light", got)
	}
	if got := capitalize(""); got != "" {
		t.Errorf("capitalize(\"\") = %q", got)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultOthelloConfig()
	cfg.Rules.Diagonals = true

	s := SettingsFromConfig(cfg, config.DifficultyHard, engine.SideLight)
	want := Settings{Difficulty: "hard", Depth: 5, Human: engine.SideLight, Diagonals: true, Passing: true}
	if s != want {
		t.Errorf("SettingsFromConfig() = %+v, want %+v", s, want)
	}
	if got := ThinkDelay(cfg); got != 400*time.Millisecond {
		t.Errorf("ThinkDelay() = %v, want 400ms", got)
	}
}
