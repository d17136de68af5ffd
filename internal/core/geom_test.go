package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false}, // right edge is exclusive
		{2, 5, false}, // bottom edge is exclusive
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 1, 8, 5},
		{0, 1, 8, 1},
		{9, 1, 8, 8},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Click(7, 9)

	if !f.Has(ActionClick) {
		t.Error("Click should set ActionClick")
	}
	if f.Pointer != (Point{X: 7, Y: 9}) {
		t.Errorf("Pointer = %+v, want (7, 9)", f.Pointer)
	}

	f.Clear()
	if f.Has(ActionClick) || f.Pointer != (Point{}) {
		t.Error("Clear should reset actions and pointer")
	}

	var zero InputFrame
	if zero.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionConfirm)
	if !zero.Has(ActionConfirm) {
		t.Error("Set on zero frame should work")
	}
}
