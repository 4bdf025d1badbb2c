package linechart

import (
	"errors"
	"testing"
)

var examplePoints = []Point{Pt(30, 160), Pt(90, 80), Pt(150, 120), Pt(210, 0), Pt(270, 200)}

func TestLinePathPolyline(t *testing.T) {
	if p := LinePath(examplePoints[:1], nil); p != nil {
		t.Errorf("got %v for a single point, want nil", p)
	}
	want := BezPath{
		MoveTo(Pt(30, 160)),
		LineTo(Pt(90, 80)),
		LineTo(Pt(150, 120)),
		LineTo(Pt(210, 0)),
		LineTo(Pt(270, 200)),
	}
	diff(t, want, LinePath(examplePoints, nil))
	// A mismatched segment slice falls back to straight edges.
	diff(t, want, LinePath(examplePoints, make([]CurveSegment, 2)))
}

func TestLinePathCurve(t *testing.T) {
	segs, err := Interpolate(examplePoints)
	if err != nil {
		t.Fatal(err)
	}
	p := LinePath(examplePoints, segs)
	if len(p) != len(examplePoints) {
		t.Fatalf("got %d elements, want %d", len(p), len(examplePoints))
	}
	diff(t, MoveTo(examplePoints[0]), p[0])
	for i, el := range p[1:] {
		want := CubicTo(segs[i].Control1, segs[i].Control2, examplePoints[i+1])
		diff(t, want, el)
	}

	cp, err := CurvePath(examplePoints)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, p, cp)

	if _, err := CurvePath(examplePoints[:1]); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
}

func TestFillPathClosed(t *testing.T) {
	region := Sz(300, 200)
	segs, _ := Interpolate(examplePoints)
	for _, s := range [][]CurveSegment{nil, segs} {
		p := FillPath(examplePoints, region, s)
		start, _ := p.Start()
		diff(t, Pt(30, 200), start)
		if p[len(p)-1].Kind != ClosePathKind {
			t.Fatalf("fill path isn't closed: %v", p)
		}
		// The explicit return along the baseline ends where the path started.
		back, _ := p[len(p)-2].EndPoint()
		diff(t, start, back)
		down, _ := p[len(p)-3].EndPoint()
		diff(t, Pt(270, 200), down)
		diff(t, LineTo(examplePoints[0]), p[1])

		bounds := Rect{0, 0, region.Width, region.Height}
		for _, el := range p {
			if pt, ok := el.EndPoint(); ok && !bounds.Contains(pt) {
				t.Errorf("fill vertex %v outside the region", pt)
			}
		}
	}
}

func TestFillPathDegenerate(t *testing.T) {
	if p := FillPath(nil, Sz(100, 100), nil); p != nil {
		t.Errorf("got %v for no points, want nil", p)
	}
	p := FillPath([]Point{Pt(30, 50)}, Sz(60, 100), nil)
	want := BezPath{
		MoveTo(Pt(30, 100)),
		LineTo(Pt(30, 50)),
		LineTo(Pt(30, 100)),
		LineTo(Pt(30, 100)),
		ClosePath(),
	}
	diff(t, want, p)
}
