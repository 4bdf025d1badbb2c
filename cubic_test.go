package linechart

import (
	"testing"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(4, 2), Pt(6, 0)}
	start, end := c.Tangents()
	diff(t, Vec(3, 6), start)
	diff(t, Vec(6, -6), end)
	assertVecNear(t, c.Deriv(0), start, 1e-12)
	assertVecNear(t, c.Deriv(1), end, 1e-12)
}

func TestCubicBezEndpoints(t *testing.T) {
	c := CubicBez{Pt(30, 160), Pt(48, 112), Pt(72, 96), Pt(90, 0)}
	diff(t, c.P0, c.Eval(0))
	diff(t, c.P3, c.Eval(1))

	pts := c.Sample(8)
	if len(pts) != 9 {
		t.Fatalf("got %d samples, want 9", len(pts))
	}
	diff(t, c.P0, pts[0])
	diff(t, c.P3, pts[8])
}

func TestCubicBezSubdivide(t *testing.T) {
	const epsilon = 1e-9
	c := CubicBez{Pt(0, 0), Pt(10, 40), Pt(50, -20), Pt(60, 10)}
	left, right := c.Subdivide()
	for i := range 11 {
		ts := float64(i) / 10
		assertNear(t, left.Eval(ts), c.Eval(ts/2), epsilon)
		assertNear(t, right.Eval(ts), c.Eval(0.5+ts/2), epsilon)
	}
}
