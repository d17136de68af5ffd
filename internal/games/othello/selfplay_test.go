package othello

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-othello/internal/games/othello/engine"
)

func TestSelfPlay(t *testing.T) {
	tests := []struct {
		name    string
		rules   engine.Rules
		passing bool
	}{
		{"classic with passing", engine.Classic, true},
		{"classic without passing", engine.Classic, false},
		{"standard with passing", engine.Standard, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := SelfPlay(MatchOptions{Rules: tt.rules, Passing: tt.passing, DarkDepth: 2, LightDepth: 1})

			dark, light, empty := res.Board.Counts()
			if dark+light+empty != 64 {
				t.Errorf("disk conservation broken: %d+%d+%d", dark, light, empty)
			}
			if len(res.History) == 0 {
				t.Fatal("no moves played")
			}
			if res.History[0].Side != engine.SideDark {
				t.Error("dark should move first")
			}
			if tt.passing && !tt.rules.IsTerminal(&res.Board) {
				t.Error("with passing the match should run to a terminal position")
			}
			if res.Nodes[engine.SideDark] == 0 {
				t.Error("node count not recorded")
			}

			// Replaying the non-pass moves reproduces the final board.
			var moves []engine.Coord
			for _, r := range res.History {
				if !r.Pass {
					moves = append(moves, r.Move)
				}
			}
			board, _, err := Replay(tt.rules, moves)
			if err != nil {
				t.Fatalf("Replay: %v", err)
			}
			if board != res.Board {
				t.Error("replay diverged from self-play")
			}
		})
	}
}

func TestSelfPlayDeterministic(t *testing.T) {
	opts := MatchOptions{Rules: engine.Classic, Passing: true, DarkDepth: 2, LightDepth: 2}
	a := SelfPlay(opts)
	b := SelfPlay(opts)
	if a.Board != b.Board || len(a.History) != len(b.History) {
		t.Error("self-play is not deterministic")
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("d3, c5 f6")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []string{"d3", "c5", "f6"}
	if len(moves) != len(want) {
		t.Fatalf("ParseMoves() = %v, want %v", moves, want)
	}
	for i, m := range moves {
		if m.String() != want[i] {
			t.Errorf("move %d = %v, want %s", i, m, want[i])
		}
	}

	if _, err := ParseMoves("d3,z9"); err == nil {
		t.Error("ParseMoves with a bad square should fail")
	}
	if moves, err := ParseMoves(""); err != nil || len(moves) != 0 {
		t.Errorf("ParseMoves(\"\") = %v, %v", moves, err)
	}
}

func TestReplay(t *testing.T) {
	moves, _ := ParseMoves("d3,c5")
	board, side, err := Replay(engine.Classic, moves)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if side != engine.SideDark {
		t.Errorf("side to move = %v, want dark", side)
	}
	dark, light, _ := board.Counts()
	if dark != 3 || light != 3 {
		t.Errorf("counts = (%d, %d), want (3, 3)", dark, light)
	}

	bad, _ := ParseMoves("d3,a1")
	if _, _, err := Replay(engine.Classic, bad); !errors.Is(err, engine.ErrIllegalMove) {
		t.Errorf("Replay(illegal) = %v, want ErrIllegalMove", err)
	}
}
