package linechart

import (
	"iter"
	"math"
	"slices"
)

// Circle is used for the concentric dot markers drawn on each point.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies within the circle, including its outline.
func (c Circle) Contains(pt Point) bool {
	return c.Center.Sub(pt).Hypot2() <= c.Radius*c.Radius
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 { return 2 * c.Radius }

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}

func (c Circle) Path() BezPath { return slices.Collect(c.PathElements()) }

// PathElements approximates the circle with four cubic Béziers. The error is
// below 2e-4 of the radius, which is invisible at marker sizes.
func (c Circle) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		// Solution from http://spencermortensen.com/articles/bezier-circle/
		const (
			n         = 4
			armLength = 0.551915024494
		)

		x, y := c.Center.Splat()
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
