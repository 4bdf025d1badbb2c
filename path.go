package linechart

// LinePath returns the path of the chart line through points.
//
// With nil segments the path is a polyline. Otherwise segments must hold one
// entry per edge, as returned by [Interpolate], and every edge is drawn as a
// cubic Bézier; a slice of any other length falls back to the polyline.
//
// Fewer than two points have no line, and LinePath returns nil.
func LinePath(points []Point, segments []CurveSegment) BezPath {
	if len(points) < 2 {
		return nil
	}
	p := make(BezPath, 0, len(points))
	p.MoveTo(points[0])
	appendEdges(&p, points, segments)
	return p
}

// CurvePath interpolates points and returns the smoothed line through them.
func CurvePath(points []Point) (BezPath, error) {
	segs, err := Interpolate(points)
	if err != nil {
		return nil, err
	}
	return LinePath(points, segs), nil
}

// FillPath returns the closed outline of the area between the chart line and
// the bottom of region, used as the mask of the gradient fill.
//
// The outline starts on the baseline below the first point, rises to it,
// follows the line (straight or curved, as selected by segments), drops to the
// baseline below the last point and returns along the baseline to the start.
//
// FillPath returns nil when there are no points.
func FillPath(points []Point, region Size, segments []CurveSegment) BezPath {
	if len(points) == 0 {
		return nil
	}
	var (
		base  = region.Height
		first = points[0]
		last  = points[len(points)-1]
		start = Pt(first.X, base)
		p     = make(BezPath, 0, len(points)+4)
	)
	p.MoveTo(start)
	p.LineTo(first)
	appendEdges(&p, points, segments)
	p.LineTo(Pt(last.X, base))
	p.LineTo(start)
	p.ClosePath()
	return p
}

func appendEdges(p *BezPath, points []Point, segments []CurveSegment) {
	curved := segments != nil && len(segments) == len(points)-1
	for i := 1; i < len(points); i++ {
		if curved {
			seg := segments[i-1]
			p.CubicTo(seg.Control1, seg.Control2, points[i])
		} else {
			p.LineTo(points[i])
		}
	}
}
