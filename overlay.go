package linechart

import (
	"slices"
)

const (
	// DotOuterDiameter is the diameter of the filled outer disc of a dot marker.
	DotOuterDiameter = 12.0
	// DotInnerDiameter is the diameter of the contrasting disc inset into it.
	DotInnerDiameter = 6.0

	// GridLineWidth is the stroke width of all grid lines.
	GridLineWidth = 0.5

	GridLabelFontSize  = 12.0
	ValueLabelFontSize = 20.0
)

var (
	// GridFractions are the heights, relative to the drawing region, of the
	// horizontal grid lines, from top to bottom.
	GridFractions = [5]float64{0, 0.25, 0.5, 0.75, 1}

	// GridDash is the dash pattern (on, off) of the interior horizontal grid lines.
	GridDash = []float64{4, 4}

	gridLabelSize  = Sz(50, 16)
	gridLabelInset = 4.0

	valueLabelSize   = Sz(30, 22)
	valueLabelOffset = Vec(-8, 17)
)

// Dot is a two-layer concentric marker centred on a point.
type Dot struct {
	Center Point
	Outer  Circle
	Inner  Circle
}

// GridLine is a straight guide line. Lines with a nil Dash are solid.
type GridLine struct {
	Line
	Dash  []float64
	Width float64
}

// Dashed reports whether the line is drawn with a dash pattern.
func (g GridLine) Dashed() bool { return len(g.Dash) > 0 }

// Label is a piece of text placed in a box whose top-left corner is Origin.
type Label struct {
	Origin   Point
	Size     Size
	Text     string
	FontSize float64
}

// Bounds returns the box the text is laid out in.
func (l Label) Bounds() Rect {
	return NewRectFromOrigin(l.Origin, l.Size)
}

// Dots returns one marker per point.
func Dots(points []Point) []Dot {
	if len(points) == 0 {
		return nil
	}
	out := make([]Dot, len(points))
	for i, pt := range points {
		out[i] = Dot{
			Center: pt,
			Outer:  Circle{Center: pt, Radius: DotOuterDiameter / 2},
			Inner:  Circle{Center: pt, Radius: DotInnerDiameter / 2},
		}
	}
	return out
}

// VerticalGrid returns one line per point, spanning the full height of region
// at the point's x coordinate.
func VerticalGrid(points []Point, region Size) []GridLine {
	if len(points) == 0 {
		return nil
	}
	out := make([]GridLine, len(points))
	for i, pt := range points {
		out[i] = GridLine{
			Line:  Line{Pt(pt.X, 0), Pt(pt.X, region.Height)},
			Width: GridLineWidth,
		}
	}
	return out
}

// HorizontalGrid returns the five horizontal grid lines at [GridFractions] of
// the region's height, each spanning the region's width, and their labels.
//
// labels are in ascending order; the top line gets labels[4] and the bottom
// line labels[0]. The top and bottom lines are solid, the interior ones dashed.
func HorizontalGrid(region Size, labels [5]string) ([]GridLine, []Label) {
	lines := make([]GridLine, 0, len(GridFractions))
	texts := make([]Label, 0, len(GridFractions))
	for i, f := range GridFractions {
		y := f * region.Height
		gl := GridLine{
			Line:  Line{Pt(0, y), Pt(region.Width, y)},
			Width: GridLineWidth,
		}
		if f > 0 && f < 1 {
			gl.Dash = slices.Clone(GridDash)
		}
		lines = append(lines, gl)
		texts = append(texts, Label{
			Origin:   Pt(gridLabelInset, y),
			Size:     gridLabelSize,
			Text:     labels[len(labels)-1-i],
			FontSize: GridLabelFontSize,
		})
	}
	return lines, texts
}

// ValueLabels returns one label per point showing the sample it was mapped
// from, placed below and to the right of the point. points and values must
// have the same length; extra entries of the longer slice are ignored.
func ValueLabels(points []Point, values []int, format LabelFormat) []Label {
	n := min(len(points), len(values))
	if n == 0 {
		return nil
	}
	out := make([]Label, n)
	for i := range n {
		out[i] = Label{
			Origin:   points[i].Translate(valueLabelOffset),
			Size:     valueLabelSize,
			Text:     format.Format(values[i]),
			FontSize: ValueLabelFontSize,
		}
	}
	return out
}
