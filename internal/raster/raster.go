// Package raster draws chart scenes into images.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"honnef.co/go/linechart"
	"honnef.co/go/linechart/internal/config"
)

// ErrNoScene is returned when asked to draw a nil scene.
var ErrNoScene = errors.New("raster: no scene")

// gradientStops is the number of colour stops sampled from the palette's
// Lab blend for the fill gradient.
const gradientStops = 8

// Options controls how a scene is drawn.
type Options struct {
	Palette config.Palette
	// Viewport draws only the frame, scrolled to the newest samples, instead
	// of the whole content.
	Viewport bool
}

// DefaultOptions draws the whole content with the default palette.
func DefaultOptions() Options {
	return Options{Palette: config.DefaultPalette()}
}

// Size returns the pixel size of the image Draw produces for scene.
func Size(scene *linechart.Scene, opts Options) (w, h int) {
	width := scene.ContentWidth
	if opts.Viewport {
		width = scene.Frame.Width
	}
	return int(math.Ceil(width)), int(math.Ceil(scene.Frame.Height))
}

// Draw renders scene into a new image.
//
// Layers are drawn back to front: background, grid, gradient fill, line
// shadow, line, dots and labels. The horizontal grid and its labels stay in
// place when the viewport is scrolled; everything else scrolls with the data.
func Draw(scene *linechart.Scene, opts Options) (image.Image, error) {
	dc, err := draw(scene, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders scene and encodes it as PNG to w.
func WritePNG(w io.Writer, scene *linechart.Scene, opts Options) error {
	dc, err := draw(scene, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func draw(scene *linechart.Scene, opts Options) (*gg.Context, error) {
	if scene == nil {
		return nil, ErrNoScene
	}
	w, h := Size(scene, opts)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: empty image %dx%d", w, h)
	}
	p := opts.Palette

	dc := gg.NewContext(w, h)
	dc.SetColor(p.Background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	fixed := scene.DataTransform()
	scrolled := fixed
	if opts.Viewport {
		scrolled = fixed.ThenTranslate(linechart.Vec(-scene.ScrollOffset(), 0))
	}

	drawGrid(dc, scene.HorizontalGrid, fixed, p)
	drawGrid(dc, scene.VerticalGrid, scrolled, p)
	drawFill(dc, scene, scrolled, p)
	drawLine(dc, scene, scrolled, p)
	drawDots(dc, scene.Dots, scrolled, p)
	drawLabels(dc, scene.GridLabels, fixed, p.Label)
	drawLabels(dc, scene.ValueLabels, scrolled, p.Label)
	return dc, nil
}

// appendPath replays p, transformed by aff, as the current path of dc.
func appendPath(dc *gg.Context, p linechart.BezPath, aff linechart.Affine) {
	for _, el := range p.Transform(aff) {
		switch el.Kind {
		case linechart.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case linechart.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case linechart.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case linechart.ClosePathKind:
			dc.ClosePath()
		}
	}
}

func withAlpha(c colorful.Color, a float64) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))}
}

func drawGrid(dc *gg.Context, lines []linechart.GridLine, aff linechart.Affine, p config.Palette) {
	if len(lines) == 0 {
		return
	}
	dc.SetColor(withAlpha(p.Grid, p.GridOpacity))
	for _, gl := range lines {
		l := gl.Transform(aff)
		dc.SetLineWidth(gl.Width)
		dc.SetDash(gl.Dash...)
		dc.DrawLine(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
		dc.Stroke()
	}
	dc.SetDash()
}

func drawFill(dc *gg.Context, scene *linechart.Scene, aff linechart.Affine, p config.Palette) {
	if len(scene.Fill) == 0 {
		return
	}
	top := linechart.Pt(0, 0).Transform(aff)
	bottom := linechart.Pt(0, scene.Region.Height).Transform(aff)
	grad := gg.NewLinearGradient(0, top.Y, 0, bottom.Y)
	for i := range gradientStops + 1 {
		t := float64(i) / gradientStops
		grad.AddColorStop(t, p.FillAt(t))
	}
	appendPath(dc, scene.Fill, aff)
	dc.SetFillStyle(grad)
	dc.Fill()
}

func drawLine(dc *gg.Context, scene *linechart.Scene, aff linechart.Affine, p config.Palette) {
	if len(scene.Line) == 0 {
		return
	}
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	if sh := scene.Shadow; sh != nil {
		// Approximate the blur with concentric strokes of falling opacity.
		steps := max(1, int(math.Ceil(sh.Blur)))
		shifted := aff.ThenTranslate(sh.Offset)
		for i := steps; i >= 1; i-- {
			a := sh.Opacity * (1 - float64(i-1)/float64(steps)) / float64(steps)
			dc.SetColor(withAlpha(p.Shadow, a))
			dc.SetLineWidth(p.LineWidth + 2*float64(i))
			appendPath(dc, scene.Line, shifted)
			dc.Stroke()
		}
	}
	dc.SetColor(p.Line)
	dc.SetLineWidth(p.LineWidth)
	appendPath(dc, scene.Line, aff)
	dc.Stroke()
}

func drawDots(dc *gg.Context, dots []linechart.Dot, aff linechart.Affine, p config.Palette) {
	for _, d := range dots {
		c := d.Center.Transform(aff)
		dc.SetColor(p.DotOuter)
		dc.DrawCircle(c.X, c.Y, d.Outer.Radius)
		dc.Fill()
		dc.SetColor(p.DotInner)
		dc.DrawCircle(c.X, c.Y, d.Inner.Radius)
		dc.Fill()
	}
}

// drawLabels centres each label's text in its box. The bitmap face has a
// fixed size, so FontSize only matters to hosts with scalable fonts.
func drawLabels(dc *gg.Context, labels []linechart.Label, aff linechart.Affine, c colorful.Color) {
	if len(labels) == 0 {
		return
	}
	dc.SetColor(c)
	for _, l := range labels {
		center := l.Bounds().Center().Transform(aff)
		dc.DrawStringAnchored(l.Text, center.X, center.Y, 0.5, 0.5)
	}
}
