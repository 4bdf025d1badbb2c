package linechart

import (
	"iter"
	"slices"
	"strings"
	"testing"
)

func TestElementsToSegmentsClosePathReferstoLastMove(t *testing.T) {
	last := func(seq iter.Seq[PathSegment]) PathSegment {
		var el PathSegment
		for el = range seq {
		}
		return el
	}
	var p BezPath
	p.MoveTo(Pt(5.0, 5.0))
	p.LineTo(Pt(15.0, 15.0))
	p.MoveTo(Pt(10.0, 10.0))
	p.LineTo(Pt(15.0, 15.0))
	p.ClosePath()

	want := Line{Pt(15, 15), Pt(10, 10)}.Seg()
	diff(t, want, last(p.Segments()))
}

func TestSegmentsToElements(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.CubicTo(Pt(12, 3), Pt(18, 3), Pt(20, 0))
	p.MoveTo(Pt(50, 50))
	p.LineTo(Pt(60, 60))

	diff(t, p, BezPath(slices.Collect(Elements(p.Segments()))))
}

func TestControlBox(t *testing.T) {
	// a sort of map ping looking thing drawn with a single cubic
	var p BezPath
	p.MoveTo(Pt(200, 300))
	p.CubicTo(Pt(50, 50), Pt(350, 50), Pt(200, 300))
	want := Rect{50, 50, 350, 300}
	diff(t, p.ControlBox(), want)
}

func TestStartEnd(t *testing.T) {
	var p BezPath
	if _, ok := p.End(); ok {
		t.Error("empty path shouldn't have an end point")
	}
	p.MoveTo(Pt(1, 1))
	p.LineTo(Pt(5, 1))
	p.CubicTo(Pt(6, 2), Pt(7, 3), Pt(8, 8))
	if end, _ := p.End(); end != Pt(8, 8) {
		t.Errorf("got end %v, want %v", end, Pt(8, 8))
	}
	p.ClosePath()
	if end, _ := p.End(); end != Pt(1, 1) {
		t.Errorf("got end %v after closing, want %v", end, Pt(1, 1))
	}
	if start, _ := p.Start(); start != Pt(1, 1) {
		t.Errorf("got start %v, want %v", start, Pt(1, 1))
	}
}

func TestExtend(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 100))
	p.LineTo(Pt(30, 40))

	var o BezPath
	o.MoveTo(Pt(30, 40))
	o.LineTo(Pt(90, 10))
	p.Extend(o)
	diff(t, BezPath{MoveTo(Pt(0, 100)), LineTo(Pt(30, 40)), LineTo(Pt(90, 10))}, p)

	// A path starting elsewhere begins a new subpath.
	var q BezPath
	q.MoveTo(Pt(200, 0))
	q.LineTo(Pt(210, 0))
	p.Extend(q)
	diff(t, 5, p.Len())
	diff(t, MoveToKind, p[3].Kind)
}

func TestBezPathTransform(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(30, 0))
	p.CubicTo(Pt(40, 10), Pt(50, 20), Pt(60, 30))
	p.ClosePath()

	got := p.Transform(Translate(Vec(0, 40)))
	want := BezPath{
		MoveTo(Pt(30, 40)),
		CubicTo(Pt(40, 50), Pt(50, 60), Pt(60, 70)),
		ClosePath(),
	}
	diff(t, want, got)

	var empty BezPath
	if empty.Transform(Identity) != nil {
		t.Error("transforming a nil path should return nil")
	}
}

func TestHasSegments(t *testing.T) {
	p := BezPath{MoveTo(Pt(1, 1)), ClosePath()}
	if p.HasSegments() {
		t.Error("path of MoveTo and ClosePath shouldn't have segments")
	}
	p = BezPath{MoveTo(Pt(1, 1)), LineTo(Pt(2, 2))}
	if !p.HasSegments() {
		t.Error("path with LineTo should have segments")
	}
}

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10.5, 20))
	p.CubicTo(Pt(1, 2), Pt(3, 4), Pt(5, 6))
	p.ClosePath()
	diff(t, "M0,0 L10.5,20 C1,2 3,4 5,6 Z", p.SVG(SVGOptions{}))

	p = BezPath{MoveTo(Pt(1.0/3.0, 2)), LineTo(Pt(0.5, 1.26))}
	diff(t, "M0.33,2 L0.5,1.26", p.SVG(SVGOptions{MaxPrecision: 2}))

	var sb strings.Builder
	if err := p.WriteSVG(&sb, SVGOptions{MaxPrecision: 1}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M0.3,2 L0.5,1.3", sb.String())
}
