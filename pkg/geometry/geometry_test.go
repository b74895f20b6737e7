package geometry

import "testing"

func TestPoint_AddSub(t *testing.T) {
	p := Pt(3, -2)
	q := Pt(1, 5)

	if got := p.Add(q); got != Pt(4, 3) {
		t.Errorf("Add: expected (4,3), got %v", got)
	}
	if got := p.Sub(q); got != Pt(2, -7) {
		t.Errorf("Sub: expected (2,-7), got %v", got)
	}

	// Inputs unchanged
	if p != Pt(3, -2) || q != Pt(1, 5) {
		t.Error("expected operands to be unchanged")
	}
}

func TestNewRect(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.X() != 2 || r.Y() != 3 {
		t.Errorf("expected origin (2,3), got (%d,%d)", r.X(), r.Y())
	}
	if r.Width() != 10 || r.Height() != 5 {
		t.Errorf("expected 10x5, got %dx%d", r.Width(), r.Height())
	}
	if r.BottomRight != Pt(12, 8) {
		t.Errorf("expected bottom-right (12,8), got %v", r.BottomRight)
	}
}

func TestRectangle_ReversedCorners(t *testing.T) {
	// The two-corner constructor is permissive; reversed corners produce
	// negative derived dimensions rather than failing.
	r := NewRectCorners(Pt(10, 10), Pt(4, 4))

	if r.Width() != -6 || r.Height() != -6 {
		t.Errorf("expected -6x-6, got %dx%d", r.Width(), r.Height())
	}
	if !r.IsEmpty() {
		t.Error("expected reversed rectangle to report empty")
	}
}

func TestRectangle_Translate(t *testing.T) {
	r := NewRect(1, 1, 4, 4)

	moved := r.Translate(Pt(3, -1))
	if moved.TopLeft != Pt(4, 0) || moved.BottomRight != Pt(8, 4) {
		t.Errorf("Translate: got %v", moved)
	}

	back := moved.TranslateBack(Pt(3, -1))
	if back != r {
		t.Errorf("TranslateBack: expected %v, got %v", r, back)
	}
}

func TestRectangle_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rectangle
		want Rectangle
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRectCorners(Pt(5, 5), Pt(10, 10)),
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 2, 3, 3),
			want: NewRect(2, 2, 3, 3),
		},
		{
			name: "disjoint",
			a:    NewRect(0, 0, 4, 4),
			b:    NewRect(10, 10, 4, 4),
			want: Rectangle{},
		},
		{
			name: "touching edges is empty",
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(5, 0, 5, 5),
			want: Rectangle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			// Intersection commutes
			if rev := tt.b.Intersect(tt.a); rev != got {
				t.Errorf("not commutative: %v vs %v", got, rev)
			}
		})
	}
}

func TestRectangle_IntersectEmptyIffNoOverlap(t *testing.T) {
	a := NewRect(0, 0, 6, 6)
	overlapping := NewRect(3, 3, 6, 6)
	disjoint := NewRect(7, 7, 2, 2)

	if a.Intersect(overlapping).IsEmpty() {
		t.Error("expected overlap to yield a non-empty intersection")
	}
	got := a.Intersect(disjoint)
	if !got.IsEmpty() {
		t.Error("expected disjoint rectangles to yield an empty intersection")
	}
	// Canonical empty: zero area at the origin
	if got != (Rectangle{}) {
		t.Errorf("expected canonical empty rectangle, got %v", got)
	}
}

func TestRectangle_Union(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(10, -2, 4, 4)

	u := a.Union(b)
	if u.TopLeft != Pt(0, -2) || u.BottomRight != Pt(14, 4) {
		t.Errorf("unexpected union %v", u)
	}
	if !u.Contains(a) || !u.Contains(b) {
		t.Error("expected union to contain both inputs")
	}
	if rev := b.Union(a); rev != u {
		t.Errorf("not commutative: %v vs %v", u, rev)
	}
}
