package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ThemeConfig holds the colours of the chart as hex strings
type ThemeConfig struct {
	Background  string  `mapstructure:"background"`
	Line        string  `mapstructure:"line"`
	LineWidth   float64 `mapstructure:"line_width"`
	Shadow      string  `mapstructure:"shadow"`
	FillTop     string  `mapstructure:"fill_top"`
	FillBottom  string  `mapstructure:"fill_bottom"`
	Grid        string  `mapstructure:"grid"`
	GridOpacity float64 `mapstructure:"grid_opacity"`
	DotOuter    string  `mapstructure:"dot_outer"`
	DotInner    string  `mapstructure:"dot_inner"`
	Label       string  `mapstructure:"label"`
}

// DefaultTheme draws a yellow line over an orange to white gradient on white.
var DefaultTheme = ThemeConfig{
	Background:  "#ffffff",
	Line:        "#ffff00",
	LineWidth:   1,
	Shadow:      "#000000",
	FillTop:     "#ffa500",
	FillBottom:  "#ffffff",
	Grid:        "#000000",
	GridOpacity: 0.3,
	DotOuter:    "#ffff00",
	DotInner:    "#ffffff",
	Label:       "#000000",
}

// Palette is a parsed theme, ready for use by the output hosts.
type Palette struct {
	Background  colorful.Color
	Line        colorful.Color
	LineWidth   float64
	Shadow      colorful.Color
	FillTop     colorful.Color
	FillBottom  colorful.Color
	Grid        colorful.Color
	GridOpacity float64
	DotOuter    colorful.Color
	DotInner    colorful.Color
	Label       colorful.Color
}

// Palette parses the theme's colours.
func (t ThemeConfig) Palette() (Palette, error) {
	p := Palette{
		LineWidth:   t.LineWidth,
		GridOpacity: t.GridOpacity,
	}
	fields := []struct {
		key string
		hex string
		dst *colorful.Color
	}{
		{"theme.background", t.Background, &p.Background},
		{"theme.line", t.Line, &p.Line},
		{"theme.shadow", t.Shadow, &p.Shadow},
		{"theme.fill_top", t.FillTop, &p.FillTop},
		{"theme.fill_bottom", t.FillBottom, &p.FillBottom},
		{"theme.grid", t.Grid, &p.Grid},
		{"theme.dot_outer", t.DotOuter, &p.DotOuter},
		{"theme.dot_inner", t.DotInner, &p.DotInner},
		{"theme.label", t.Label, &p.Label},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s must be a hex colour like #ffa500, got %q", f.key, f.hex)
		}
		*f.dst = c
	}
	if t.LineWidth <= 0 {
		return Palette{}, fmt.Errorf("theme.line_width must be > 0, got %v", t.LineWidth)
	}
	if t.GridOpacity < 0 || t.GridOpacity > 1 {
		return Palette{}, fmt.Errorf("theme.grid_opacity must be between 0 and 1, got %v", t.GridOpacity)
	}
	return p, nil
}

// DefaultPalette returns the parsed [DefaultTheme].
func DefaultPalette() Palette {
	p, err := DefaultTheme.Palette()
	if err != nil {
		panic(err)
	}
	return p
}

// FillAt returns the colour of the fill gradient at t, where 0 is the top of
// the drawing region and 1 its bottom. Colours are blended in Lab space.
func (p Palette) FillAt(t float64) colorful.Color {
	return p.FillTop.BlendLab(p.FillBottom, t).Clamped()
}
