package physics

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 2, 2), NewRect(1, 1, 2, 2), true},
		{"identical", NewRect(0, 0, 1, 1), NewRect(0, 0, 1, 1), true},
		{"contained", NewRect(0, 0, 4, 4), NewRect(1, 1, 1, 1), true},
		{"edge touching", NewRect(0, 0, 1, 1), NewRect(1, 0, 1, 1), false},
		{"corner touching", NewRect(0, 0, 1, 1), NewRect(1, 1, 1, 1), false},
		{"disjoint horizontal", NewRect(0, 0, 1, 1), NewRect(5, 0, 1, 1), false},
		{"disjoint vertical", NewRect(0, 0, 1, 1), NewRect(0, 5, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("bottom-left corner should be inside")
	}
	if r.Contains(6, 3) {
		t.Error("right edge should be outside")
	}
	if r.Contains(2, 8) {
		t.Error("top edge should be outside")
	}
	if !r.Contains(4, 5) {
		t.Error("interior point should be inside")
	}
	if r.Contains(1.9, 5) {
		t.Error("point left of box should be outside")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %v, want 10", got)
	}
}
