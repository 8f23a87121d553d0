package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/joshvictor1024/mandelzoom/pkg/config"
	"github.com/joshvictor1024/mandelzoom/pkg/escape"
	"github.com/joshvictor1024/mandelzoom/pkg/palette"
	"github.com/joshvictor1024/mandelzoom/pkg/viewport"
)

func init() {
	// SDL video calls must stay on the main thread
	runtime.LockOSThread()
}

// flags shared by the viewer and the snapshot command
type options struct {
	ConfigFile string
	Preset     string
	Width      int
	Height     int
	Workers    int
	Iterations uint
	Gradient   string
	Debug      bool
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&o.ConfigFile, "config", "c", "", "TOML config file")
	f.StringVarP(&o.Preset, "preset", "p", config.DefaultPreset,
		"preset when no config file is given ("+strings.Join(config.Presets(), ", ")+")")
	f.IntVar(&o.Width, "width", 0, "buffer width in pixels")
	f.IntVar(&o.Height, "height", 0, "buffer height in pixels")
	f.IntVar(&o.Workers, "workers", 0, "render workers (0 = GOMAXPROCS)")
	f.UintVar(&o.Iterations, "iterations", 0, "fixed iteration budget instead of the preset heuristic")
	f.StringVar(&o.Gradient, "gradient", "", "colour table gradient ("+strings.Join(palette.Names(), ", ")+")")
	f.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// resolve loads the config and applies flag overrides on top.
func (o *options) resolve() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.ConfigFile != "" {
		cfg, err = config.Load(o.ConfigFile)
	} else {
		cfg, err = config.Preset(o.Preset)
	}
	if err != nil {
		return config.Config{}, err
	}
	if o.Width > 0 {
		cfg.Window.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Window.Height = o.Height
	}
	if o.Workers > 0 {
		cfg.Workers = o.Workers
	}
	if o.Iterations > 0 {
		cfg.Budget = config.Budget{Heuristic: "fixed", Base: o.Iterations}
	}
	if o.Gradient != "" {
		cfg.Color = config.Color{Mode: "table", Gradient: o.Gradient}
	}
	return cfg, cfg.Validate()
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "mandelzoom",
		Short: "Interactive Mandelbrot set viewer",
		Long: `mandelzoom recomputes the Mandelbrot set for every frame of an SDL window.

  left mouse    drift towards the cursor (and zoom, except in explore)
  space         toggle auto-zoom (explore preset)
  right mouse   reset the view (also: r)
  middle mouse  log the current offset
  q, escape     quit`,
		Example: `  # Classic preset in a 1500x1000 window
  mandelzoom

  # Colour table and auto-zoom
  mandelzoom --preset explore --gradient ocean

  # Settings from a file
  mandelzoom -c mandelzoom.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, newLogger(cmd.ErrOrStderr(), opts.Debug))
		},
	}
	opts.register(rootCmd)
	rootCmd.AddCommand(snapshotCmd(&opts))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := fang.Execute(ctx, rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

func sdlInit(windowTitle string, w, h int32) (*sdl.Window, *sdl.Renderer, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, nil, errors.Wrap(err, "sdl init")
	}
	sdl.StopTextInput()

	window, err := sdl.CreateWindow(
		windowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		w, h, sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, nil, errors.Wrap(err, "create window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, nil, errors.Wrap(err, "create renderer")
	}

	return window, renderer, nil
}

func sdlClose(window *sdl.Window, renderer *sdl.Renderer) {
	renderer.Destroy()
	window.Destroy()
	sdl.Quit()
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	escape.SetLogger(log)

	s, err := newScene(cfg, log)
	if err != nil {
		return err
	}

	w, h := int32(cfg.Window.Width), int32(cfg.Window.Height)
	window, renderer, err := sdlInit("Mandelbrot", w, h)
	if err != nil {
		return err
	}
	defer sdlClose(window, renderer)

	c, err := newCanvas(renderer, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer c.close()

	log.Info("viewer started",
		"preset", cfg.Preset,
		"size", fmt.Sprintf("%dx%d", w, h),
		"controls", s.view.Controls(),
		"workers", s.renderer.Workers(),
	)

	eq := newEventQueue(w, h)
	for {
		select {
		case <-ctx.Done():
			log.Info("interrupted")
			return nil
		default:
		}

		eq.poll()
		if eq.closed {
			log.Info("window closed")
			return nil
		}
		running := true
		eq.drain(func(e viewport.Event) {
			if !s.handle(e) {
				running = false
			}
		})
		if !running {
			return nil
		}

		if err := s.frame(); err != nil {
			return err
		}
		if err := c.present(s.buf); err != nil {
			return err
		}
	}
}
