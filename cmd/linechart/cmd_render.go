package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/linechart"
	"honnef.co/go/linechart/internal/logger"
	"honnef.co/go/linechart/internal/raster"
	"honnef.co/go/linechart/internal/vector"
)

// newRenderCmd creates the render subcommand
func newRenderCmd(a *app) *cobra.Command {
	var outputs []string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render samples to PNG and SVG files",
		Long: `Render the samples in file, or on stdin, to every output given with --out.
The output format follows the file extension: .png or .svg.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(outputs) == 0 {
				return fmt.Errorf("no outputs: use --out to name at least one .png or .svg file")
			}
			for _, out := range outputs {
				if _, err := writerFor(out); err != nil {
					return err
				}
			}

			scene, err := a.scene(cmd, args)
			if err != nil {
				return err
			}

			sizes := make([]int64, len(outputs))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, out := range outputs {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					n, err := a.write(out, scene)
					sizes[i] = n
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, out := range outputs {
				fmt.Fprintf(w, "wrote %s (%s, %s samples)\n",
					out, humanize.Bytes(uint64(sizes[i])), humanize.Comma(int64(len(scene.Values))))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&outputs, "out", "o", nil, "output file, .png or .svg (repeatable)")
	cmd.Flags().Bool("viewport", false, "draw only the frame, scrolled to the newest samples")
	cmd.Flags().Int("precision", 2, "maximum decimals of SVG coordinates")
	_ = a.v.BindPFlag("output.viewport", cmd.Flags().Lookup("viewport"))
	_ = a.v.BindPFlag("output.precision", cmd.Flags().Lookup("precision"))
	return cmd
}

type writeFunc func(w io.Writer, scene *linechart.Scene, a *app) error

func writePNG(w io.Writer, scene *linechart.Scene, a *app) error {
	return raster.WritePNG(w, scene, raster.Options{
		Palette:  a.palette(),
		Viewport: a.cfg.Output.Viewport,
	})
}

func writeSVG(w io.Writer, scene *linechart.Scene, a *app) error {
	return vector.Write(w, scene, vector.Options{
		Palette:   a.palette(),
		Viewport:  a.cfg.Output.Viewport,
		Precision: a.cfg.Output.Precision,
	})
}

func writerFor(path string) (writeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return writePNG, nil
	case ".svg":
		return writeSVG, nil
	default:
		return nil, fmt.Errorf("%s: unsupported output format %q", path, ext)
	}
}

// write renders scene to the file at path and returns the number of bytes
// written.
func (a *app) write(path string, scene *linechart.Scene) (int64, error) {
	fn, err := writerFor(path)
	if err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	cw := &countingWriter{w: f}
	if err := fn(cw, scene, a); err != nil {
		f.Close()
		return cw.n, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return cw.n, fmt.Errorf("close output: %w", err)
	}
	logger.Debug("output written", "path", path, "bytes", cw.n)
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
