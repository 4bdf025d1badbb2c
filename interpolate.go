package linechart

import "errors"

// ErrTooFewPoints is returned when a curve is requested through fewer than two
// points.
var ErrTooFewPoints = errors.New("linechart: at least two points are required")

// Smoothing is the fraction of an edge used to place the temporary control
// points before they are smoothed.
const Smoothing = 0.3

// CurveSegment holds the two control points of the cubic Bézier drawn between
// points i-1 and i.
type CurveSegment struct {
	Control1 Point
	Control2 Point
}

// Cubic returns the Bézier curve from p0 to p1 shaped by seg.
func (seg CurveSegment) Cubic(p0, p1 Point) CubicBez {
	return CubicBez{p0, seg.Control1, seg.Control2, p1}
}

// Interpolate computes control points for a smooth curve that passes through
// every point. The result has one segment per pair of adjacent points;
// segment i-1 belongs to the edge between points i-1 and i.
//
// Control points first lie on the straight edge, a fraction [Smoothing] away
// from each end. At every interior point A, the control point on each side is
// then replaced by the average of itself and the reflection of the other side's
// control point through A. Both new control points are reflections of each
// other through A, so the curve has a continuous tangent at A. The control
// points adjacent to the first and last point are left on the edge.
func Interpolate(points []Point) ([]CurveSegment, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	segs := make([]CurveSegment, len(points)-1)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := b.Sub(a).Mul(Smoothing)
		segs[i-1] = CurveSegment{
			Control1: a.Translate(d),
			Control2: b.Translate(d.Negate()),
		}
	}

	for i := 1; i < len(points)-1; i++ {
		var (
			a = points[i]
			// Both are still the temporary values: iteration i-1 only wrote
			// segs[i-1].Control1 and segs[i-2].Control2.
			m  = segs[i-1].Control2
			n  = segs[i].Control1
			mm = m.Reflect(a)
			nn = n.Reflect(a)
		)
		segs[i].Control1 = mm.Midpoint(n)
		segs[i-1].Control2 = nn.Midpoint(m)
	}
	return segs, nil
}
