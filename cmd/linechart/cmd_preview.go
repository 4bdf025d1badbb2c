package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/linechart/internal/termview"
)

// newPreviewCmd creates the preview subcommand
func newPreviewCmd(a *app) *cobra.Command {
	tcfg := termview.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Plot samples in the terminal",
		Long: `Trace the chart line of the samples in file, or on stdin, and plot it in
the terminal. Smoothed charts show the interpolated curve.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.scene(cmd, args)
			if err != nil {
				return err
			}
			if tcfg.Title == "" && len(args) > 0 {
				tcfg.Title = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), termview.View(scene, tcfg))
			return nil
		},
	}
	cmd.Flags().StringVar(&tcfg.Title, "title", "", "title shown above the plot (default the file name)")
	cmd.Flags().IntVar(&tcfg.Width, "width", tcfg.Width, "plot width in columns")
	cmd.Flags().IntVar(&tcfg.Height, "height", tcfg.Height, "plot height in rows")
	cmd.Flags().IntVar(&tcfg.SamplesPerSegment, "resolution", tcfg.SamplesPerSegment, "points traced per segment of the line")
	return cmd
}
