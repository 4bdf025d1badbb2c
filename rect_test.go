package linechart

import (
	"testing"
)

func TestRectFromOrigin(t *testing.T) {
	r := NewRectFromOrigin(Pt(4, 50), Sz(50, 16))
	diff(t, Rect{4, 50, 54, 66}, r)
	diff(t, Sz(50, 16), r.Size())
	diff(t, Pt(29, 58), r.Center())
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 100, 200}
	for _, pt := range []Point{Pt(0, 0), Pt(100, 200), Pt(50, 200), Pt(0, 100)} {
		if !r.Contains(pt) {
			t.Errorf("%v should contain %v", r, pt)
		}
	}
	for _, pt := range []Point{Pt(-1, 0), Pt(100.5, 200), Pt(50, 201)} {
		if r.Contains(pt) {
			t.Errorf("%v shouldn't contain %v", r, pt)
		}
	}
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	diff(t, Rect{-5, 0, 10, 20}, r.Union(Rect{-5, 5, 5, 20}))
	diff(t, Rect{0, 0, 10, 30}, r.UnionPoint(Pt(5, 30)))
	diff(t, Rect{0, 0, 10, 10}, Rect{10, 10, 0, 0}.Abs())
}
