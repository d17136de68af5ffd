package engine

import "testing"

func TestInitialBoard(t *testing.T) {
	b := Initial()

	tests := []struct {
		c    Coord
		want Cell
	}{
		{Coord{4, 4}, Light},
		{Coord{5, 5}, Light},
		{Coord{4, 5}, Dark},
		{Coord{5, 4}, Dark},
		{Coord{1, 1}, Empty},
		{Coord{8, 8}, Empty},
	}
	for _, tt := range tests {
		if got := b.At(tt.c); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}

	dark, light, empty := b.Counts()
	if dark != 2 || light != 2 || empty != 60 {
		t.Errorf("Counts() = (%d, %d, %d), want (2, 2, 60)", dark, light, empty)
	}
}

func TestSentinelRing(t *testing.T) {
	b := Initial()
	for i := 0; i < gridSize; i++ {
		for _, c := range []Coord{{0, i}, {gridSize - 1, i}, {i, 0}, {i, gridSize - 1}} {
			if b.At(c) != OffBoard {
				t.Fatalf("At(%v) = %v, want OffBoard", c, b.At(c))
			}
		}
	}

	// Writes outside the playable area are dropped
	b.Set(Coord{0, 3}, Dark)
	if b.At(Coord{0, 3}) != OffBoard {
		t.Error("Set on the sentinel ring should be ignored")
	}
}

func TestOpponentInvolution(t *testing.T) {
	for _, s := range []Side{SideDark, SideLight} {
		if s.Opponent() == s {
			t.Errorf("%v.Opponent() returned itself", s)
		}
		if s.Opponent().Opponent() != s {
			t.Errorf("%v.Opponent().Opponent() = %v", s, s.Opponent().Opponent())
		}
	}
}

func TestCoordNotation(t *testing.T) {
	tests := []struct {
		text string
		want Coord
	}{
		{"a1", Coord{1, 1}},
		{"h8", Coord{8, 8}},
		{"d3", Coord{3, 4}},
		{"C4", Coord{4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseCoord(tt.text)
			if err != nil {
				t.Fatalf("ParseCoord(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoord(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}

	if got := (Coord{3, 4}).String(); got != "d3" {
		t.Errorf("String() = %q, want d3", got)
	}

	for _, bad := range []string{"", "i1", "a9", "a0", "d10", "zz"} {
		if _, err := ParseCoord(bad); err == nil {
			t.Errorf("ParseCoord(%q) should fail", bad)
		}
	}
}

func TestParseSide(t *testing.T) {
	if s, err := ParseSide("Black"); err != nil || s != SideDark {
		t.Errorf("ParseSide(Black) = %v, %v", s, err)
	}
	if s, err := ParseSide("light"); err != nil || s != SideLight {
		t.Errorf("ParseSide(light) = %v, %v", s, err)
	}
	if _, err := ParseSide("red"); err == nil {
		t.Error("ParseSide(red) should fail")
	}
}

func TestParseBoardRoundTrip(t *testing.T) {
	b, err := ParseBoard(
		"........",
		"........",
		"........",
		"...OX...",
		"...XO...",
		"........",
		"........",
		"........",
	)
	if err != nil {
		t.Fatalf("ParseBoard error: %v", err)
	}
	if b != Initial() {
		t.Errorf("ParseBoard did not reproduce the initial position:\n%s", b.String())
	}

	if _, err := ParseBoard("XO"); err == nil {
		t.Error("ParseBoard with one row should fail")
	}
}
