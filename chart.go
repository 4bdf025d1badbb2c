package linechart

import (
	"fmt"
	"math"
	"slices"
)

// Layout holds the fixed distances of the chart.
type Layout struct {
	// Spacing is the horizontal distance between adjacent samples.
	Spacing float64
	// TopMargin and BottomMargin are reserved above and below the drawing
	// region for labels.
	TopMargin    float64
	BottomMargin float64
}

// DefaultLayout is used in place of a zero Layout.
var DefaultLayout = Layout{
	Spacing:      60,
	TopMargin:    40,
	BottomMargin: 40,
}

func (l Layout) orDefault() Layout {
	if l == (Layout{}) {
		return DefaultLayout
	}
	return l
}

// Region returns the drawing region for n samples inside a frame: n spacings
// wide and as tall as the frame without its margins.
func (l Layout) Region(n int, frame Size) Size {
	h := frame.Shrink(l.TopMargin, l.BottomMargin).Height
	return Sz(float64(n)*l.Spacing, h)
}

// Config selects which elements of the chart are drawn. It is passed by value
// to every render pass.
type Config struct {
	DrawCurve          bool
	DrawLineShadow     bool
	DrawDots           bool
	DrawHorizontalGrid bool
	DrawVerticalGrid   bool
	DrawValueLabels    bool

	// GridLabels, when it has exactly five entries, replaces the labels
	// derived from the data. Entries are in ascending order.
	GridLabels  []string
	LabelFormat LabelFormat

	// A zero Layout means DefaultLayout.
	Layout Layout
}

// DefaultConfig returns a configuration that draws a smoothed line with its
// shadow, dots, value labels and the horizontal grid.
func DefaultConfig() Config {
	return Config{
		DrawCurve:          true,
		DrawLineShadow:     true,
		DrawDots:           true,
		DrawHorizontalGrid: true,
		DrawValueLabels:    true,
		Layout:             DefaultLayout,
	}
}

// Shadow describes the drop shadow cast by the chart line.
type Shadow struct {
	Offset  Vec2
	Blur    float64
	Opacity float64
}

// DefaultShadow is the shadow attached to the line when DrawLineShadow is set.
var DefaultShadow = Shadow{Offset: Vec(0, 2), Blur: 3, Opacity: 1}

// ContentWidth returns the scrollable width of a chart of n samples: one
// spacing per sample plus one spacing of padding on either side.
func ContentWidth(n int, spacing float64) float64 {
	return float64(n)*spacing + 2*spacing
}

// Scene is the complete set of drawing primitives produced by one render pass.
// A Scene is never modified after it has been returned.
//
// Points, paths and overlays are in region coordinates, with y = 0 at the top
// of the drawing region. Hosts apply [Scene.DataTransform] to place them in
// the frame.
type Scene struct {
	Frame  Size
	Region Size
	Config Config

	Values   []int
	Points   []Point
	Segments []CurveSegment

	Line   BezPath
	Shadow *Shadow
	Fill   BezPath

	Dots           []Dot
	VerticalGrid   []GridLine
	HorizontalGrid []GridLine
	GridLabels     []Label
	ValueLabels    []Label

	ContentWidth float64
}

// Empty reports whether the scene has no data to draw.
func (s *Scene) Empty() bool {
	return s == nil || len(s.Points) == 0
}

// DataTransform maps region coordinates to frame coordinates.
func (s *Scene) DataTransform() Affine {
	return Translate(Vec(0, s.Config.Layout.orDefault().TopMargin))
}

// ScrollOffset returns the horizontal scroll position that shows the most
// recent samples, or 0 when the content fits in the frame.
func (s *Scene) ScrollOffset() float64 {
	return math.Max(0, s.ContentWidth-s.Frame.Width)
}

// Bounds returns the full content area in frame coordinates.
func (s *Scene) Bounds() Rect {
	return Rect{0, 0, s.ContentWidth, s.Frame.Height}
}

// Viewport returns the part of the content visible in the frame when scrolled
// to [Scene.ScrollOffset].
func (s *Scene) Viewport() Rect {
	return NewRectFromOrigin(Pt(s.ScrollOffset(), 0), s.Frame)
}

func (s *Scene) String() string {
	return fmt.Sprintf("Scene{%d points, frame %s, content width %g}", len(s.Points), s.Frame, s.ContentWidth)
}

// Render runs one full pass over values and returns the resulting scene. It
// has no side effects.
//
// Render fails with [ErrInvalidRegion] when the frame leaves no height for the
// drawing region after the margins are removed, and with [ErrInvalidSpacing]
// when the layout's spacing is not positive. Empty values produce an empty
// scene.
func Render(values []int, frame Size, cfg Config) (*Scene, error) {
	layout := cfg.Layout.orDefault()
	cfg.Layout = layout
	cfg.GridLabels = slices.Clone(cfg.GridLabels)

	region := layout.Region(len(values), frame)
	points, err := MapPoints(values, region, layout.Spacing)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Frame:        frame,
		Region:       region,
		Config:       cfg,
		Values:       slices.Clone(values),
		Points:       points,
		ContentWidth: ContentWidth(len(values), layout.Spacing),
	}
	if len(points) == 0 {
		return s, nil
	}

	if len(points) >= 2 {
		if cfg.DrawCurve {
			// Cannot fail with at least two points.
			s.Segments, _ = Interpolate(points)
		}
		s.Line = LinePath(points, s.Segments)
		s.Fill = FillPath(points, region, s.Segments)
		if cfg.DrawLineShadow {
			sh := DefaultShadow
			s.Shadow = &sh
		}
	}

	if cfg.DrawDots {
		s.Dots = Dots(points)
	}
	if cfg.DrawVerticalGrid {
		s.VerticalGrid = VerticalGrid(points, region)
	}
	if cfg.DrawHorizontalGrid {
		span := Sz(math.Max(s.ContentWidth, frame.Width), region.Height)
		s.HorizontalGrid, s.GridLabels = HorizontalGrid(span, GridLabels(values, cfg))
	}
	if cfg.DrawValueLabels {
		s.ValueLabels = ValueLabels(points, values, cfg.LabelFormat)
	}
	return s, nil
}
