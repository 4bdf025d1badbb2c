package linechart

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRegion is returned when the drawing region has no positive,
	// finite height to normalize values into.
	ErrInvalidRegion = errors.New("linechart: drawing region must have a positive height")
	// ErrInvalidSpacing is returned when the horizontal distance between
	// samples is not positive.
	ErrInvalidSpacing = errors.New("linechart: spacing must be positive")
)

// Extent returns the smallest and largest value of values. ok is false for an
// empty slice.
func Extent(values []int) (lo, hi int, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, true
}

// LeadingMargin returns the horizontal offset of the first point, which is
// half the spacing between points.
func LeadingMargin(spacing float64) float64 {
	return spacing / 2
}

// MapPoints converts samples into points inside region. Sample i is placed at
// x = i·spacing + spacing/2. Its y coordinate is normalized so that the
// largest sample touches the top of the region (y = 0) and the smallest one
// touches the bottom (y = region.Height).
//
// When all samples are equal there is no range to normalize by, and every
// point is placed at mid-height.
//
// An empty slice maps to an empty result.
func MapPoints(values []int, region Size, spacing float64) ([]Point, error) {
	if !region.Drawable() {
		return nil, ErrInvalidRegion
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, ErrInvalidSpacing
	}
	lo, hi, ok := Extent(values)
	if !ok {
		return []Point{}, nil
	}

	var (
		h      = region.Height
		span   = float64(hi) - float64(lo)
		margin = LeadingMargin(spacing)
		out    = make([]Point, len(values))
	)
	for i, v := range values {
		y := h / 2
		if span != 0 {
			y = h * (1 - (float64(v)-float64(lo))/span)
		}
		out[i] = Pt(float64(i)*spacing+margin, y)
	}
	return out, nil
}
