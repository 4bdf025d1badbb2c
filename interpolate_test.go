package linechart

import (
	"errors"
	"slices"
	"testing"
)

func TestInterpolateTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {Pt(1, 1)}} {
		if _, err := Interpolate(pts); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("%v: got error %v, want %v", pts, err, ErrTooFewPoints)
		}
	}
}

func TestInterpolateTwoPoints(t *testing.T) {
	segs, err := Interpolate([]Point{Pt(0, 100), Pt(100, 0)})
	if err != nil {
		t.Fatal(err)
	}
	// Without interior points the control points stay on the edge.
	diff(t, []CurveSegment{{Pt(30, 70), Pt(70, 30)}}, segs)
}

func TestInterpolatePeak(t *testing.T) {
	segs, err := Interpolate([]Point{Pt(0, 0), Pt(10, 10), Pt(20, 0)})
	if err != nil {
		t.Fatal(err)
	}
	want := []CurveSegment{
		{Pt(3, 3), Pt(7, 10)},
		{Pt(13, 10), Pt(17, 3)},
	}
	diff(t, want, segs)
}

func TestInterpolateContinuity(t *testing.T) {
	const epsilon = 1e-9
	pts, err := MapPoints([]int{10, 20, 15, 30, 5, 5, 18, -3, 40}, Sz(0, 200), 60)
	if err != nil {
		t.Fatal(err)
	}
	segs, err := Interpolate(pts)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != len(pts)-1 {
		t.Fatalf("got %d segments for %d points", len(segs), len(pts))
	}
	for i := 1; i < len(pts); i++ {
		c := segs[i-1].Cubic(pts[i-1], pts[i])
		assertNear(t, c.Eval(0), pts[i-1], epsilon)
		assertNear(t, c.Eval(1), pts[i], epsilon)
	}
	// At interior points the outgoing tangent of one segment equals the
	// incoming tangent of the next.
	for i := 1; i < len(pts)-1; i++ {
		_, in := segs[i-1].Cubic(pts[i-1], pts[i]).Tangents()
		out, _ := segs[i].Cubic(pts[i], pts[i+1]).Tangents()
		assertVecNear(t, in, out, epsilon)
	}
}

func TestInterpolateEndControlsStayOnEdge(t *testing.T) {
	pts := []Point{Pt(30, 160), Pt(90, 80), Pt(150, 120), Pt(210, 0)}
	segs, err := Interpolate(pts)
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, segs[0].Control1, pts[0].Lerp(pts[1], Smoothing), 1e-9)
	last := len(segs) - 1
	assertNear(t, segs[last].Control2, pts[last+1].Lerp(pts[last], Smoothing), 1e-9)
}

func TestInterpolatePure(t *testing.T) {
	pts := []Point{Pt(30, 160), Pt(90, 80), Pt(150, 120), Pt(210, 0), Pt(270, 200)}
	orig := slices.Clone(pts)
	a, err := Interpolate(pts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Interpolate(pts)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a, b)
	diff(t, orig, pts)
}
