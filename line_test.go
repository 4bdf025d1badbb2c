package linechart

import (
	"math"
	"slices"
	"testing"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(3.0, 4.0)}
	if got := l.Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
}

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestLineOrientation(t *testing.T) {
	h := Line{Pt(0, 50), Pt(400, 50)}
	v := Line{Pt(90, 0), Pt(90, 120)}
	if !h.IsHorizontal() || h.IsVertical() {
		t.Errorf("%v: want horizontal", h)
	}
	if !v.IsVertical() || v.IsHorizontal() {
		t.Errorf("%v: want vertical", v)
	}
}

func TestLinePathElements(t *testing.T) {
	l := Line{Pt(1, 2), Pt(3, 4)}
	diff(t, []PathElement{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4))}, slices.Collect(l.PathElements()))
	diff(t, Pt(2, 3), l.Eval(0.5))
	diff(t, Rect{1, 2, 3, 4}, Line{Pt(3, 4), Pt(1, 2)}.BoundingBox())
}
