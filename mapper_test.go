package linechart

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMapPointsExample(t *testing.T) {
	pts, err := MapPoints([]int{10, 20, 15, 30, 5}, Sz(300, 200), 60)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{
		Pt(30, 160),
		Pt(90, 80),
		Pt(150, 120),
		Pt(210, 0),
		Pt(270, 200),
	}
	diff(t, want, pts, cmpopts.EquateApprox(0, 1e-9))
}

func TestMapPointsOrdering(t *testing.T) {
	values := []int{5, 3, 9, 9, -4, 0, 12, 7}
	pts, err := MapPoints(values, Sz(480, 123), 37.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != len(values) {
		t.Fatalf("got %d points for %d values", len(pts), len(values))
	}
	if pts[0].X != LeadingMargin(37.5) {
		t.Errorf("first point at x=%g, want %g", pts[0].X, LeadingMargin(37.5))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			t.Errorf("x not increasing at %d: %g <= %g", i, pts[i].X, pts[i-1].X)
		}
		if d := pts[i].X - pts[i-1].X; math.Abs(d-37.5) > 1e-9 {
			t.Errorf("got spacing %g at %d, want 37.5", d, i)
		}
	}
}

func TestMapPointsRange(t *testing.T) {
	const h = 173.0
	values := []int{42, -17, 8, 99, 99, 3, -17, 50}
	pts, err := MapPoints(values, Sz(0, h), 60)
	if err != nil {
		t.Fatal(err)
	}
	for i, pt := range pts {
		if pt.Y < 0 || pt.Y > h {
			t.Errorf("point %d at y=%g outside [0, %g]", i, pt.Y, h)
		}
		switch values[i] {
		case 99:
			if pt.Y != 0 {
				t.Errorf("maximum at y=%g, want 0", pt.Y)
			}
		case -17:
			if pt.Y != h {
				t.Errorf("minimum at y=%g, want %g", pt.Y, h)
			}
		}
	}
	// Larger samples are higher up.
	if !(pts[0].Y < pts[2].Y && pts[2].Y < pts[5].Y) {
		t.Errorf("y coordinates don't follow the samples: %v", pts)
	}
}

func TestMapPointsFlat(t *testing.T) {
	for _, values := range [][]int{{7}, {7, 7, 7, 7}, {0, 0}, {-3, -3, -3}} {
		pts, err := MapPoints(values, Sz(100, 150), 60)
		if err != nil {
			t.Fatal(err)
		}
		for i, pt := range pts {
			if math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
				t.Fatalf("%v: point %d is not finite: %v", values, i, pt)
			}
			if pt.Y != 75 {
				t.Errorf("%v: point %d at y=%g, want 75", values, i, pt.Y)
			}
		}
	}
}

func TestMapPointsEmpty(t *testing.T) {
	pts, err := MapPoints(nil, Sz(100, 100), 60)
	if err != nil {
		t.Fatal(err)
	}
	if pts == nil || len(pts) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", pts)
	}
}

func TestMapPointsInvalid(t *testing.T) {
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := MapPoints([]int{1, 2}, Sz(100, h), 60); !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("height %g: got error %v, want %v", h, err, ErrInvalidRegion)
		}
	}
	for _, s := range []float64{0, -60, math.NaN(), math.Inf(1)} {
		if _, err := MapPoints([]int{1, 2}, Sz(100, 100), s); !errors.Is(err, ErrInvalidSpacing) {
			t.Errorf("spacing %g: got error %v, want %v", s, err, ErrInvalidSpacing)
		}
	}
}

func TestExtent(t *testing.T) {
	if _, _, ok := Extent(nil); ok {
		t.Error("empty slice shouldn't have an extent")
	}
	lo, hi, ok := Extent([]int{4, -2, 9, 0})
	if !ok || lo != -2 || hi != 9 {
		t.Errorf("got (%d, %d, %t), want (-2, 9, true)", lo, hi, ok)
	}
}
