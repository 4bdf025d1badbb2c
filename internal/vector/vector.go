// Package vector writes chart scenes as SVG documents.
package vector

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/linechart"
	"honnef.co/go/linechart/internal/config"
)

// ErrNoScene is returned when asked to write a nil scene.
var ErrNoScene = errors.New("vector: no scene")

const gradientStops = 8

// Options controls how a scene is written.
type Options struct {
	Palette config.Palette
	// Viewport limits the document to the frame, scrolled to the newest
	// samples.
	Viewport bool
	// Precision is the maximum number of decimals of coordinates. 0 writes
	// coordinates exactly.
	Precision int
}

// DefaultOptions writes the whole content with the default palette and two
// decimals.
func DefaultOptions() Options {
	return Options{Palette: config.DefaultPalette(), Precision: 2}
}

type svgDoc struct {
	XMLName xml.Name `xml:"http://www.w3.org/2000/svg svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Defs    defs     `xml:"defs"`
	Rect    rect     `xml:"rect"`
	Groups  []group  `xml:"g"`
}

type defs struct {
	Gradient linearGradient `xml:"linearGradient"`
	Filter   *filter        `xml:"filter,omitempty"`
}

type linearGradient struct {
	ID    string `xml:"id,attr"`
	Units string `xml:"gradientUnits,attr"`
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
	Stops []stop `xml:"stop"`
}

type stop struct {
	Offset string `xml:"offset,attr"`
	Color  string `xml:"stop-color,attr"`
}

type filter struct {
	ID     string       `xml:"id,attr"`
	X      string       `xml:"x,attr"`
	Y      string       `xml:"y,attr"`
	Width  string       `xml:"width,attr"`
	Height string       `xml:"height,attr"`
	Shadow feDropShadow `xml:"feDropShadow"`
}

type feDropShadow struct {
	DX           string `xml:"dx,attr"`
	DY           string `xml:"dy,attr"`
	StdDeviation string `xml:"stdDeviation,attr"`
	FloodColor   string `xml:"flood-color,attr"`
	FloodOpacity string `xml:"flood-opacity,attr"`
}

type rect struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

// group children are written in field order, which is the paint order.
type group struct {
	Transform     string   `xml:"transform,attr,omitempty"`
	Stroke        string   `xml:"stroke,attr,omitempty"`
	StrokeOpacity string   `xml:"stroke-opacity,attr,omitempty"`
	Groups        []group  `xml:"g"`
	Lines         []line   `xml:"line"`
	Paths         []path   `xml:"path"`
	Circles       []circle `xml:"circle"`
	Texts         []text   `xml:"text"`
}

type line struct {
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
	Width string `xml:"stroke-width,attr"`
	Dash  string `xml:"stroke-dasharray,attr,omitempty"`
}

type path struct {
	D        string `xml:"d,attr"`
	Fill     string `xml:"fill,attr"`
	Stroke   string `xml:"stroke,attr"`
	Width    string `xml:"stroke-width,attr,omitempty"`
	LineCap  string `xml:"stroke-linecap,attr,omitempty"`
	LineJoin string `xml:"stroke-linejoin,attr,omitempty"`
	Filter   string `xml:"filter,attr,omitempty"`
}

type circle struct {
	CX   string `xml:"cx,attr"`
	CY   string `xml:"cy,attr"`
	R    string `xml:"r,attr"`
	Fill string `xml:"fill,attr"`
}

type text struct {
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	FontSize string `xml:"font-size,attr"`
	Fill     string `xml:"fill,attr"`
	Anchor   string `xml:"text-anchor,attr,omitempty"`
	Baseline string `xml:"dominant-baseline,attr"`
	Text     string `xml:",chardata"`
}

type formatter int

func (prec formatter) num(v float64) string {
	if prec <= 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', int(prec), 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (prec formatter) translate(v linechart.Vec2) string {
	return "translate(" + prec.num(v.X) + " " + prec.num(v.Y) + ")"
}

func (prec formatter) grid(lines []linechart.GridLine) []line {
	out := make([]line, 0, len(lines))
	for _, gl := range lines {
		dash := make([]string, len(gl.Dash))
		for i, d := range gl.Dash {
			dash[i] = prec.num(d)
		}
		out = append(out, line{
			X1:    prec.num(gl.P0.X),
			Y1:    prec.num(gl.P0.Y),
			X2:    prec.num(gl.P1.X),
			Y2:    prec.num(gl.P1.Y),
			Width: prec.num(gl.Width),
			Dash:  strings.Join(dash, " "),
		})
	}
	return out
}

func (prec formatter) labels(labels []linechart.Label, fill string, centered bool) []text {
	out := make([]text, 0, len(labels))
	for _, l := range labels {
		b := l.Bounds()
		t := text{
			X:        prec.num(b.X0),
			Y:        prec.num(b.Center().Y),
			FontSize: prec.num(l.FontSize),
			Fill:     fill,
			Baseline: "central",
			Text:     l.Text,
		}
		if centered {
			t.X = prec.num(b.Center().X)
			t.Anchor = "middle"
		}
		out = append(out, t)
	}
	return out
}

// Write writes scene to w as a standalone SVG document.
//
// Like the raster host, the horizontal grid and its labels stay fixed while
// the rest of the chart scrolls when opts.Viewport is set. Paths use the path
// data produced by [linechart.BezPath.SVG].
func Write(w io.Writer, scene *linechart.Scene, opts Options) error {
	if scene == nil {
		return ErrNoScene
	}
	var (
		prec  = formatter(opts.Precision)
		p     = opts.Palette
		svg   = linechart.SVGOptions{MaxPrecision: opts.Precision}
		width = scene.ContentWidth
		top   = scene.DataTransform().Translation()
	)
	scrolled := top
	if opts.Viewport {
		width = scene.Frame.Width
		scrolled = top.Add(linechart.Vec(-scene.ScrollOffset(), 0))
	}

	doc := svgDoc{
		Width:   prec.num(width),
		Height:  prec.num(scene.Frame.Height),
		ViewBox: "0 0 " + prec.num(width) + " " + prec.num(scene.Frame.Height),
		Rect: rect{
			X:      "0",
			Y:      "0",
			Width:  prec.num(width),
			Height: prec.num(scene.Frame.Height),
			Fill:   p.Background.Hex(),
		},
	}

	// userSpaceOnUse resolves against the fill path's own coordinates, which
	// are region coordinates.
	doc.Defs.Gradient = linearGradient{
		ID:    "fill",
		Units: "userSpaceOnUse",
		X1:    "0",
		Y1:    "0",
		X2:    "0",
		Y2:    prec.num(scene.Region.Height),
	}
	for i := range gradientStops + 1 {
		t := float64(i) / gradientStops
		doc.Defs.Gradient.Stops = append(doc.Defs.Gradient.Stops,
			stop{Offset: prec.num(t), Color: p.FillAt(t).Hex()})
	}
	if sh := scene.Shadow; sh != nil {
		doc.Defs.Filter = &filter{
			ID: "shadow", X: "-10%", Y: "-10%", Width: "120%", Height: "120%",
			Shadow: feDropShadow{
				DX:           prec.num(sh.Offset.X),
				DY:           prec.num(sh.Offset.Y),
				StdDeviation: prec.num(sh.Blur),
				FloodColor:   p.Shadow.Hex(),
				FloodOpacity: prec.num(sh.Opacity),
			},
		}
	}

	gridOpacity := prec.num(p.GridOpacity)
	fixedGrid := group{
		Transform:     prec.translate(top),
		Stroke:        p.Grid.Hex(),
		StrokeOpacity: gridOpacity,
		Lines:         prec.grid(scene.HorizontalGrid),
	}

	data := group{
		Transform: prec.translate(scrolled),
		Groups: []group{{
			Stroke:        p.Grid.Hex(),
			StrokeOpacity: gridOpacity,
			Lines:         prec.grid(scene.VerticalGrid),
		}},
		Texts: prec.labels(scene.ValueLabels, p.Label.Hex(), true),
	}
	if len(scene.Fill) > 0 {
		data.Paths = append(data.Paths, path{D: scene.Fill.SVG(svg), Fill: "url(#fill)", Stroke: "none"})
	}
	if len(scene.Line) > 0 {
		lp := path{
			D:        scene.Line.SVG(svg),
			Fill:     "none",
			Stroke:   p.Line.Hex(),
			Width:    prec.num(p.LineWidth),
			LineCap:  "round",
			LineJoin: "round",
		}
		if scene.Shadow != nil {
			lp.Filter = "url(#shadow)"
		}
		data.Paths = append(data.Paths, lp)
	}
	for _, d := range scene.Dots {
		x, y := prec.num(d.Center.X), prec.num(d.Center.Y)
		data.Circles = append(data.Circles,
			circle{CX: x, CY: y, R: prec.num(d.Outer.Radius), Fill: p.DotOuter.Hex()},
			circle{CX: x, CY: y, R: prec.num(d.Inner.Radius), Fill: p.DotInner.Hex()})
	}

	fixedLabels := group{
		Transform: prec.translate(top),
		Texts:     prec.labels(scene.GridLabels, p.Label.Hex(), false),
	}
	doc.Groups = []group{fixedGrid, data, fixedLabels}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
