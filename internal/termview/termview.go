// Package termview previews chart scenes in a terminal.
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"honnef.co/go/linechart"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Config configures a terminal preview.
type Config struct {
	Title  string
	Width  int
	Height int
	Color  asciigraph.AnsiColor
	// SamplesPerSegment is the number of points taken from every segment of
	// the chart line.
	SamplesPerSegment int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Width:             72,
		Height:            12,
		Color:             asciigraph.Yellow,
		SamplesPerSegment: 8,
	}
}

// Series traces the chart line of scene and returns the traced points in
// sample units, so that the plot's axis shows the original values. Straight
// and smoothed lines are traced the same way; a scene with a single point
// yields that sample.
func Series(scene *linechart.Scene, samplesPerSegment int) []float64 {
	if scene.Empty() {
		return nil
	}
	lo, hi, _ := linechart.Extent(scene.Values)
	var (
		h    = scene.Region.Height
		base = float64(lo)
		span = float64(hi) - float64(lo)
	)
	toValue := func(y float64) float64 {
		if span == 0 {
			return base
		}
		return base + (h-y)/h*span
	}

	if len(scene.Line) == 0 {
		return []float64{toValue(scene.Points[0].Y)}
	}
	n := max(1, samplesPerSegment)
	var out []float64
	first := true
	for seg := range scene.Line.Segments() {
		var pts []linechart.Point
		if seg.Kind == linechart.LineKind {
			pts = []linechart.Point{seg.P0, seg.P1}
		} else {
			pts = seg.Cubic().Sample(n)
		}
		if !first {
			// Shared with the end of the previous segment.
			pts = pts[1:]
		}
		first = false
		for _, pt := range pts {
			out = append(out, toValue(pt.Y))
		}
	}
	return out
}

// Caption summarizes the samples of scene in one line.
func Caption(scene *linechart.Scene) string {
	lo, hi, ok := linechart.Extent(scene.Values)
	if !ok {
		return "no samples"
	}
	format := scene.Config.LabelFormat
	return fmt.Sprintf("%s samples · min %s · max %s · last %s",
		humanize.Comma(int64(len(scene.Values))),
		format.Format(lo), format.Format(hi),
		format.Format(scene.Values[len(scene.Values)-1]))
}

// View renders the preview of scene.
func View(scene *linechart.Scene, cfg Config) string {
	if cfg.Width < 20 {
		cfg.Width = 20
	}
	if cfg.Height < 3 {
		cfg.Height = 3
	}

	var header string
	if cfg.Title != "" {
		header = titleStyle.Render(cfg.Title)
	}

	var body string
	data := Series(scene, cfg.SamplesPerSegment)
	if len(data) == 0 {
		body = lipgloss.NewStyle().
			Width(cfg.Width).
			Height(cfg.Height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(mutedStyle.Render("No samples to plot"))
	} else {
		if len(data) == 1 {
			// asciigraph needs two points to draw a line.
			data = append(data, data[0])
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(cfg.Height),
			asciigraph.Width(cfg.Width),
			asciigraph.Precision(0),
			asciigraph.SeriesColors(cfg.Color),
		)
		body = strings.TrimRight(graph, "\n")
	}

	footer := mutedStyle.Render(Caption(scene))
	parts := []string{body, footer}
	if header != "" {
		parts = append([]string{header}, parts...)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
