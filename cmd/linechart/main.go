// Command linechart renders line and curve charts of integer samples to PNG
// and SVG files, or previews them in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"honnef.co/go/linechart"
	"honnef.co/go/linechart/internal/config"
	"honnef.co/go/linechart/internal/logger"
	"honnef.co/go/linechart/internal/source"
)

var version = "dev"

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "linechart",
		Short: "Render line and curve charts of integer samples",
		Long: `linechart turns a series of integer samples into a scrollable line chart.

Samples are read from a CSV, XLSX, YAML or plain text file, or from stdin
when no file or "-" is given.

  linechart render samples.csv -o chart.png -o chart.svg
  linechart preview samples.txt
  linechart inspect samples.yaml`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if warns, errs := logger.GetCounts(); warns+errs > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d warnings and %d errors logged\n", warns, errs)
			}
			logger.Close()
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file path (default ./config.yaml or ~/.config/linechart/config.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "write logs to a rotating file instead of stderr")
	flags.Bool("curve", true, "smooth the line through the samples")
	flags.Bool("shadow", true, "draw a drop shadow under the line")
	flags.Bool("dots", true, "mark every sample with a dot")
	flags.Bool("hgrid", true, "draw the horizontal grid and its labels")
	flags.Bool("vgrid", false, "draw a vertical grid line through every sample")
	flags.Bool("labels", true, "print the value of every sample")
	flags.String("label-format", "plain", "label format: plain or comma")
	flags.String("sheet", "", "spreadsheet to read samples from (XLSX)")
	flags.Int("column", 0, "zero-based column holding the samples (CSV, XLSX)")

	for key, name := range map[string]string{
		"debug":                 "debug",
		"log_file":              "log-file",
		"chart.curve":           "curve",
		"chart.shadow":          "shadow",
		"chart.dots":            "dots",
		"chart.horizontal_grid": "hgrid",
		"chart.vertical_grid":   "vgrid",
		"chart.value_labels":    "labels",
		"chart.label_format":    "label-format",
		"source.sheet":          "sheet",
		"source.column":         "column",
	} {
		// Lookup can't fail for the flags defined above.
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newRenderCmd(a),
		newPreviewCmd(a),
		newInspectCmd(a),
	)
	return rootCmd
}

// setup loads the configuration and initializes logging.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logLevel := logger.LevelInfo
	if cfg.Debug {
		logLevel = logger.LevelDebug
	}
	logger.InitLogger(logLevel, cfg.LogFile)
	logger.Debug("linechart starting", "version", version, "config", a.v.ConfigFileUsed())
	return nil
}

// scene loads the samples named by args and renders them.
func (a *app) scene(cmd *cobra.Command, args []string) (*linechart.Scene, error) {
	path := source.Stdin
	if len(args) > 0 {
		path = args[0]
	}
	values, err := source.Load(path, cmd.InOrStdin(), source.Options{
		Sheet:  a.cfg.Source.Sheet,
		Column: a.cfg.Source.Column,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("samples loaded", "source", path, "count", len(values))

	surface := linechart.NewSurface(a.cfg.Frame(),
		linechart.WithLogger(logger.Get()),
		linechart.WithConfig(a.cfg.ChartConfig()))
	return surface.SetData(values)
}

func (a *app) palette() config.Palette {
	// Validated by config.Load.
	p, _ := a.cfg.Theme.Palette()
	return p
}
