package engine

import (
	"errors"
	"reflect"
	"testing"
)

func mustBoard(t *testing.T, rows ...string) Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func TestOpeningMoves(t *testing.T) {
	b := Initial()
	want := []Coord{{3, 4}, {4, 3}, {5, 6}, {6, 5}} // d3 c4 f5 e6

	for _, rules := range []Rules{Classic, Standard} {
		t.Run(rules.Name(), func(t *testing.T) {
			got := rules.LegalMoves(&b, SideDark)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("LegalMoves(dark) = %v, want %v", got, want)
			}
		})
	}
}

func TestIsLegalOccupied(t *testing.T) {
	b := Initial()
	for _, c := range Squares() {
		if b.At(c) == Empty {
			continue
		}
		for _, s := range []Side{SideDark, SideLight} {
			if Standard.IsLegal(&b, s, c) {
				t.Errorf("IsLegal(%v, %v) = true on occupied square", s, c)
			}
		}
	}
}

func TestIsLegalNeedsCrossing(t *testing.T) {
	b := mustBoard(t,
		"X.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".......O",
	)
	// Adjacent own disk and empty/off-board ends never qualify
	for _, c := range []Coord{{1, 2}, {2, 1}, {8, 7}} {
		if Classic.IsLegal(&b, SideDark, c) {
			t.Errorf("IsLegal(dark, %v) = true, want false", c)
		}
	}
}

func TestClassicIgnoresDiagonals(t *testing.T) {
	b := mustBoard(t,
		"X.......",
		".O......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	c := Coord{3, 3}
	if Classic.IsLegal(&b, SideDark, c) {
		t.Error("classic rules should not capture along a diagonal")
	}
	if !Standard.IsLegal(&b, SideDark, c) {
		t.Error("standard rules should capture along a diagonal")
	}
}

func TestCapturedRun(t *testing.T) {
	b := mustBoard(t,
		"XOOO....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	left := Direction{DRow: 0, DCol: -1}
	right := Direction{DRow: 0, DCol: 1}

	got := Classic.CapturedRun(&b, SideDark, Coord{1, 5}, left)
	want := []Coord{{1, 4}, {1, 3}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CapturedRun(left) = %v, want %v", got, want)
	}

	if got := Classic.CapturedRun(&b, SideDark, Coord{1, 5}, right); got != nil {
		t.Errorf("CapturedRun(right) = %v, want nil", got)
	}

	// Light at the open end has no closing disk
	if got := Classic.CapturedRun(&b, SideLight, Coord{1, 5}, left); got != nil {
		t.Errorf("CapturedRun(light) = %v, want nil", got)
	}
}

func TestApplyOpeningMove(t *testing.T) {
	b := Initial()
	next, err := Classic.Apply(b, SideDark, Coord{3, 4})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}

	dark, light, empty := next.Counts()
	if dark != 4 || light != 1 || empty != 59 {
		t.Errorf("Counts() = (%d, %d, %d), want (4, 1, 59)", dark, light, empty)
	}
	if next.At(Coord{4, 4}) != Dark {
		t.Error("d4 should have been flipped to dark")
	}

	// Input board is a value and stays untouched
	if b != Initial() {
		t.Error("Apply modified its input board")
	}
}

func TestApplyIllegal(t *testing.T) {
	b := Initial()
	next, err := Classic.Apply(b, SideDark, Coord{1, 1})
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("Apply error = %v, want ErrIllegalMove", err)
	}
	if next != b {
		t.Error("illegal Apply should not change the board")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustApply should panic on an illegal move")
		}
	}()
	Classic.MustApply(b, SideDark, Coord{4, 4})
}

func TestApplyFlipsOnlyCapturedRuns(t *testing.T) {
	for _, rules := range []Rules{Classic, Standard} {
		t.Run(rules.Name(), func(t *testing.T) {
			b := Initial()
			side := SideDark
			for ply := 0; ply < 80; ply++ {
				moves := rules.LegalMoves(&b, side)
				if len(moves) == 0 {
					if rules.IsTerminal(&b) {
						return
					}
					side = side.Opponent()
					continue
				}
				for _, m := range moves {
					checkApply(t, rules, b, side, m)
				}
				// Walk the game forward with a deterministic but varied choice
				b = rules.MustApply(b, side, moves[ply%len(moves)])
				side = side.Opponent()
			}
		})
	}
}

func checkApply(t *testing.T, rules Rules, b Board, side Side, m Coord) {
	t.Helper()
	expected := map[Coord]bool{m: true}
	for _, d := range rules.Directions {
		for _, c := range rules.CapturedRun(&b, side, m, d) {
			expected[c] = true
		}
	}

	next := rules.MustApply(b, side, m)
	for _, c := range Squares() {
		if expected[c] {
			if next.At(c) != side.Cell() {
				t.Fatalf("%v at %v: %v should be %v", side, m, c, side.Cell())
			}
			continue
		}
		if next.At(c) != b.At(c) {
			t.Fatalf("%v at %v: %v changed from %v to %v", side, m, c, b.At(c), next.At(c))
		}
	}

	dark, light, empty := next.Counts()
	if dark+light+empty != Size*Size {
		t.Fatalf("disk conservation broken: %d+%d+%d", dark, light, empty)
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{
			name: "initial position",
			rows: []string{"........", "........", "........", "...OX...", "...XO...", "........", "........", "........"},
			want: false,
		},
		{
			name: "full board",
			rows: []string{"XXXXXXXX", "XXXXXXXX", "XXXXOOOO", "OOOOOOOO", "XXXXXXXX", "OOOOOOOO", "XXXXXXXX", "OOOOOOOO"},
			want: true,
		},
		{
			name: "one colour only",
			rows: []string{"XXX.....", "........", "........", "...X....", "........", "........", "........", "........"},
			want: true,
		},
		{
			name: "only one side can move",
			rows: []string{"XO......", "........", "........", "........", "........", "........", "........", "........"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows...)
			if got := Classic.IsTerminal(&b); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	b := mustBoard(t,
		"XXXO....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	if got := Score(&b, SideDark); got != 2 {
		t.Errorf("Score(dark) = %d, want 2", got)
	}
	if got := Score(&b, SideLight); got != -2 {
		t.Errorf("Score(light) = %d, want -2", got)
	}
}
