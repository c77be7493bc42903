package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping boxes",
			a:    NewRect(58, 278, 20, 80),
			b:    NewRect(60, 300, 30, 46),
			want: true,
		},
		{
			name: "same boxes far apart",
			a:    NewRect(58, 278, 20, 80),
			b:    NewRect(200, 300, 30, 46),
			want: false,
		},
		{
			name: "identical boxes",
			a:    NewRect(10, 10, 20, 20),
			b:    NewRect(10, 10, 20, 20),
			want: true,
		},
		{
			name: "touching edges do not intersect",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: false,
		},
		{
			name: "touching corners do not intersect",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 10, 10, 10),
			want: false,
		},
		{
			name: "one inside the other",
			a:    NewRect(0, 0, 100, 100),
			b:    NewRect(40, 40, 10, 10),
			want: true,
		},
		{
			name: "vertical separation",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(0, 50, 10, 10),
			want: false,
		},
		{
			name: "sub-pixel overlap",
			a:    NewRect(0, 0, 10.5, 10),
			b:    NewRect(10.4, 0, 10, 10),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(100, 200, 40, 80)
	in := r.Inset(8, 8, 8, 0)

	if in.X != 108 || in.Y != 208 {
		t.Errorf("Inset origin = (%f, %f), want (108, 208)", in.X, in.Y)
	}
	if in.W != 24 || in.H != 72 {
		t.Errorf("Inset size = (%f, %f), want (24, 72)", in.W, in.H)
	}
	if in.Bottom() != r.Bottom() {
		t.Errorf("Inset with zero bottom should keep the bottom edge: %f != %f", in.Bottom(), r.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %f, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %f, want 60", r.Bottom())
	}
	if cx, cy := r.Center(); cx != 25 || cy != 40 {
		t.Errorf("Center() = (%f, %f), want (25, 40)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(5, 5) {
		t.Error("Contains(5, 5) should be true")
	}
	if !r.Contains(0, 0) {
		t.Error("Contains(0, 0) should be true (top-left inclusive)")
	}
	if r.Contains(10, 5) {
		t.Error("Contains(10, 5) should be false (right exclusive)")
	}
	if r.Contains(-1, 5) {
		t.Error("Contains(-1, 5) should be false")
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5.0, 0, 4.0); got != 4.0 {
		t.Errorf("ClampF(5, 0, 4) = %f, want 4", got)
	}
	if got := ClampF(-1.0, 0, 4.0); got != 0 {
		t.Errorf("ClampF(-1, 0, 4) = %f, want 0", got)
	}
	if got := ClampF(2.5, 0, 4.0); got != 2.5 {
		t.Errorf("ClampF(2.5, 0, 4) = %f, want 2.5", got)
	}
}

func TestLerpF(t *testing.T) {
	if got := LerpF(0, 10, 0.5); got != 5 {
		t.Errorf("LerpF(0, 10, 0.5) = %f, want 5", got)
	}
	if got := LerpF(10, 20, 0); got != 10 {
		t.Errorf("LerpF(10, 20, 0) = %f, want 10", got)
	}
	if got := LerpF(10, 20, 1); got != 20 {
		t.Errorf("LerpF(10, 20, 1) = %f, want 20", got)
	}
}
