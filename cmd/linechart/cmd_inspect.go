package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"honnef.co/go/linechart"
)

// sceneDump is the YAML form of a scene printed by inspect.
type sceneDump struct {
	Frame        [2]float64   `yaml:"frame,flow"`
	Region       [2]float64   `yaml:"region,flow"`
	ContentWidth float64      `yaml:"content_width"`
	ScrollOffset float64      `yaml:"scroll_offset"`
	Values       []int        `yaml:"values,flow"`
	Points       [][2]float64 `yaml:"points,omitempty"`
	Line         string       `yaml:"line,omitempty"`
	Fill         string       `yaml:"fill,omitempty"`
	Shadow       *shadowDump  `yaml:"shadow,omitempty"`
	Dots         int          `yaml:"dots"`
	VerticalGrid int          `yaml:"vertical_grid"`
	Grid         []gridDump   `yaml:"horizontal_grid,omitempty"`
	ValueLabels  []string     `yaml:"value_labels,flow,omitempty"`
}

type shadowDump struct {
	Offset  [2]float64 `yaml:"offset,flow"`
	Blur    float64    `yaml:"blur"`
	Opacity float64    `yaml:"opacity"`
}

type gridDump struct {
	Y      float64 `yaml:"y"`
	Label  string  `yaml:"label"`
	Dashed bool    `yaml:"dashed"`
}

func dumpScene(scene *linechart.Scene, precision int) sceneDump {
	svgOpts := linechart.SVGOptions{MaxPrecision: precision}
	d := sceneDump{
		Frame:        [2]float64{scene.Frame.Width, scene.Frame.Height},
		Region:       [2]float64{scene.Region.Width, scene.Region.Height},
		ContentWidth: scene.ContentWidth,
		ScrollOffset: scene.ScrollOffset(),
		Values:       scene.Values,
		Dots:         len(scene.Dots),
		VerticalGrid: len(scene.VerticalGrid),
	}
	if d.Values == nil {
		d.Values = []int{}
	}
	for _, pt := range scene.Points {
		d.Points = append(d.Points, [2]float64{pt.X, pt.Y})
	}
	if len(scene.Line) > 0 {
		d.Line = scene.Line.SVG(svgOpts)
	}
	if len(scene.Fill) > 0 {
		d.Fill = scene.Fill.SVG(svgOpts)
	}
	if sh := scene.Shadow; sh != nil {
		d.Shadow = &shadowDump{
			Offset:  [2]float64{sh.Offset.X, sh.Offset.Y},
			Blur:    sh.Blur,
			Opacity: sh.Opacity,
		}
	}
	for i, gl := range scene.HorizontalGrid {
		g := gridDump{Y: gl.P0.Y, Dashed: gl.Dashed()}
		if i < len(scene.GridLabels) {
			g.Label = scene.GridLabels[i].Text
		}
		d.Grid = append(d.Grid, g)
	}
	for _, l := range scene.ValueLabels {
		d.ValueLabels = append(d.ValueLabels, l.Text)
	}
	return d
}

// newInspectCmd creates the inspect subcommand
func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the geometry of the chart as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.scene(cmd, args)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(dumpScene(scene, a.cfg.Output.Precision)); err != nil {
				return fmt.Errorf("encode scene: %w", err)
			}
			return enc.Close()
		},
	}
}
