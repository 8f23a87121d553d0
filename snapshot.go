package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshvictor1024/mandelzoom/pkg/escape"
	"github.com/joshvictor1024/mandelzoom/pkg/snapshot"
	"github.com/joshvictor1024/mandelzoom/pkg/types"
	"github.com/joshvictor1024/mandelzoom/pkg/viewport"
)

func snapshotCmd(opts *options) *cobra.Command {
	var (
		output string
		center types.Pointf64
		zooms  int
		factor int
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to an image file without opening a window",
		Example: `  mandelzoom snapshot -o mandel.png
  mandelzoom snapshot --re -0.743 --im 0.131 --zoom 400 --gradient inferno -o spiral.tiff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), opts.Debug)
			escape.SetLogger(log)

			if _, err := snapshot.FormatFromPath(output); err != nil {
				return err
			}

			s, err := newScene(cfg, log)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("re") || cmd.Flags().Changed("im") {
				s.view.SetOffset(center)
			}
			for i := 0; i < zooms; i++ {
				s.view.Zoom(factor)
			}

			start := time.Now()
			if err := s.renderer.Render(s.view, s.buf); err != nil {
				return err
			}
			if err := snapshot.Save(output, s.buf); err != nil {
				return err
			}
			log.Info("snapshot saved",
				"file", output,
				"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
				"budget", s.view.Budget(),
				"magnification", s.view.Magnification(),
				"took", time.Since(start),
			)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "mandel.png", "output file (.png, .bmp, .tif, .tiff)")
	f.Float64Var(&center.X, "re", viewport.DefaultOffset.X, "real part of the image centre")
	f.Float64Var(&center.Y, "im", viewport.DefaultOffset.Y, "imaginary part of the image centre")
	f.IntVar(&zooms, "zoom", 0, "zoom steps to apply before rendering")
	f.IntVar(&factor, "zoom-factor", 2, "factor of each zoom step")
	return cmd
}
