package geom

import (
	"testing"
)

func TestBoundingRect(t *testing.T) {
	if _, ok := BoundingRect(nil); ok {
		t.Error("expected no bounding rect for no points")
	}

	r, ok := BoundingRect([]Point{Pt(3, -1), Pt(-2, 4), Pt(0, 0)})
	if !ok {
		t.Fatal("expected bounding rect")
	}
	diff(t, Rect{-2, -1, 3, 4}, r)
	if a := r.Area(); a != 25 {
		t.Errorf("got area %v, want 25", a)
	}
	diff(t, Pt(0.5, 1.5), r.Center())

	single, _ := BoundingRect([]Point{Pt(7, 7)})
	if single.Area() != 0 {
		t.Errorf("single point rect has area %v", single.Area())
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRectFromPoints(Pt(2, 2), Pt(0, 0))
	diff(t, Rect{0, 0, 2, 2}, a)
	diff(t, Rect{0, -1, 5, 2}, a.Union(Rect{1, -1, 5, 1}))
}
