package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"honnef.co/go/linechart"
)

// Config represents the root configuration structure
type Config struct {
	Chart   ChartConfig  `mapstructure:"chart"`
	Layout  LayoutConfig `mapstructure:"layout"`
	Theme   ThemeConfig  `mapstructure:"theme"`
	Source  SourceConfig `mapstructure:"source"`
	Output  OutputConfig `mapstructure:"output"`
	Debug   bool         `mapstructure:"debug"`
	LogFile string       `mapstructure:"log_file"`
}

// ChartConfig selects the elements drawn on the chart
type ChartConfig struct {
	Curve          bool     `mapstructure:"curve"`
	Shadow         bool     `mapstructure:"shadow"`
	Dots           bool     `mapstructure:"dots"`
	HorizontalGrid bool     `mapstructure:"horizontal_grid"`
	VerticalGrid   bool     `mapstructure:"vertical_grid"`
	ValueLabels    bool     `mapstructure:"value_labels"`
	GridLabels     []string `mapstructure:"grid_labels"`
	LabelFormat    string   `mapstructure:"label_format"`
}

// LayoutConfig holds the frame size and fixed distances, in pixels
type LayoutConfig struct {
	Width        float64 `mapstructure:"width"`
	Height       float64 `mapstructure:"height"`
	Spacing      float64 `mapstructure:"spacing"`
	TopMargin    float64 `mapstructure:"top_margin"`
	BottomMargin float64 `mapstructure:"bottom_margin"`
}

// SourceConfig tells the loaders where to find samples in tabular files
type SourceConfig struct {
	Sheet  string `mapstructure:"sheet"`
	Column int    `mapstructure:"column"`
}

// OutputConfig holds settings shared by the output hosts
type OutputConfig struct {
	Viewport  bool `mapstructure:"viewport"`
	Precision int  `mapstructure:"precision"`
}

// Load reads the configuration from the YAML file at path, or from
// config.yaml in the usual locations when path is empty, merged with
// LINECHART_* environment variables and any flags bound to v.
//
// A missing config file isn't an error; the defaults apply.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/linechart")
	}

	// Environment variable support
	v.SetEnvPrefix("LINECHART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	ApplyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets default configuration values
func ApplyDefaults(v *viper.Viper) {
	// Chart defaults
	v.SetDefault("chart.curve", true)
	v.SetDefault("chart.shadow", true)
	v.SetDefault("chart.dots", true)
	v.SetDefault("chart.horizontal_grid", true)
	v.SetDefault("chart.vertical_grid", false)
	v.SetDefault("chart.value_labels", true)
	v.SetDefault("chart.grid_labels", []string{})
	v.SetDefault("chart.label_format", "plain")

	// Layout defaults
	v.SetDefault("layout.width", 480)
	v.SetDefault("layout.height", 320)
	v.SetDefault("layout.spacing", linechart.DefaultLayout.Spacing)
	v.SetDefault("layout.top_margin", linechart.DefaultLayout.TopMargin)
	v.SetDefault("layout.bottom_margin", linechart.DefaultLayout.BottomMargin)

	// Theme defaults
	v.SetDefault("theme.background", DefaultTheme.Background)
	v.SetDefault("theme.line", DefaultTheme.Line)
	v.SetDefault("theme.line_width", DefaultTheme.LineWidth)
	v.SetDefault("theme.shadow", DefaultTheme.Shadow)
	v.SetDefault("theme.fill_top", DefaultTheme.FillTop)
	v.SetDefault("theme.fill_bottom", DefaultTheme.FillBottom)
	v.SetDefault("theme.grid", DefaultTheme.Grid)
	v.SetDefault("theme.grid_opacity", DefaultTheme.GridOpacity)
	v.SetDefault("theme.dot_outer", DefaultTheme.DotOuter)
	v.SetDefault("theme.dot_inner", DefaultTheme.DotInner)
	v.SetDefault("theme.label", DefaultTheme.Label)

	// Source defaults
	v.SetDefault("source.sheet", "")
	v.SetDefault("source.column", 0)

	// Output defaults
	v.SetDefault("output.viewport", false)
	v.SetDefault("output.precision", 2)

	v.SetDefault("debug", false)
	v.SetDefault("log_file", "")
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	l := cfg.Layout
	if l.Spacing <= 0 {
		return fmt.Errorf("layout.spacing must be > 0, got %v", l.Spacing)
	}
	if l.TopMargin < 0 {
		return fmt.Errorf("layout.top_margin must be >= 0, got %v", l.TopMargin)
	}
	if l.BottomMargin < 0 {
		return fmt.Errorf("layout.bottom_margin must be >= 0, got %v", l.BottomMargin)
	}
	if l.Width <= 0 {
		return fmt.Errorf("layout.width must be > 0, got %v", l.Width)
	}
	if l.Height <= l.TopMargin+l.BottomMargin {
		return fmt.Errorf("layout.height (%v) must exceed top_margin + bottom_margin (%v)",
			l.Height, l.TopMargin+l.BottomMargin)
	}

	if n := len(cfg.Chart.GridLabels); n != 0 && n != 5 {
		return fmt.Errorf("chart.grid_labels must have exactly 5 entries, got %d", n)
	}
	if _, err := linechart.ParseLabelFormat(cfg.Chart.LabelFormat); err != nil {
		validFormats := []string{linechart.LabelPlain.String(), linechart.LabelComma.String()}
		return fmt.Errorf("chart.label_format must be one of: %v, got %s", validFormats, cfg.Chart.LabelFormat)
	}

	if cfg.Source.Column < 0 {
		return fmt.Errorf("source.column must be >= 0, got %d", cfg.Source.Column)
	}
	if cfg.Output.Precision < 0 {
		return fmt.Errorf("output.precision must be >= 0, got %d", cfg.Output.Precision)
	}

	if _, err := cfg.Theme.Palette(); err != nil {
		return err
	}
	return nil
}

// Frame returns the size of the chart frame.
func (c *Config) Frame() linechart.Size {
	return linechart.Sz(c.Layout.Width, c.Layout.Height)
}

// ChartConfig converts the chart and layout sections into the configuration
// of a render pass.
func (c *Config) ChartConfig() linechart.Config {
	// Validated by ValidateConfig.
	format, _ := linechart.ParseLabelFormat(c.Chart.LabelFormat)
	return linechart.Config{
		DrawCurve:          c.Chart.Curve,
		DrawLineShadow:     c.Chart.Shadow,
		DrawDots:           c.Chart.Dots,
		DrawHorizontalGrid: c.Chart.HorizontalGrid,
		DrawVerticalGrid:   c.Chart.VerticalGrid,
		DrawValueLabels:    c.Chart.ValueLabels,
		GridLabels:         slices.Clone(c.Chart.GridLabels),
		LabelFormat:        format,
		Layout: linechart.Layout{
			Spacing:      c.Layout.Spacing,
			TopMargin:    c.Layout.TopMargin,
			BottomMargin: c.Layout.BottomMargin,
		},
	}
}
