package main

import (
	"image"
	"log/slog"

	"github.com/joshvictor1024/mandelzoom/pkg/config"
	"github.com/joshvictor1024/mandelzoom/pkg/escape"
	"github.com/joshvictor1024/mandelzoom/pkg/viewport"
)

// scene is everything that survives from one frame to the next.
type scene struct {
	view     *viewport.Viewport
	renderer *escape.Renderer
	buf      *image.RGBA
	log      *slog.Logger

	floorLogged bool
}

func newScene(cfg config.Config, log *slog.Logger) (*scene, error) {
	opts, err := cfg.ViewportOptions()
	if err != nil {
		return nil, err
	}
	view, err := viewport.New(cfg.Window.Width, cfg.Window.Height, opts)
	if err != nil {
		return nil, err
	}
	colors, err := cfg.Colorizer()
	if err != nil {
		return nil, err
	}
	return &scene{
		view:     view,
		renderer: escape.NewRenderer(colors, cfg.Workers),
		buf:      image.NewRGBA(image.Rect(0, 0, cfg.Window.Width, cfg.Window.Height)),
		log:      log,
	}, nil
}

// handle applies one input event; it returns false once quit was requested
func (s *scene) handle(e viewport.Event) bool {
	next, effect := viewport.Apply(*s.view, e)
	*s.view = next

	switch effect {
	case viewport.Quit:
		s.log.Info("quit requested")
		return false
	case viewport.PrintOffset:
		off := s.view.Offset()
		s.log.Info("offset",
			"re", off.X,
			"im", off.Y,
			"pixel_size", s.view.PixelSize(),
			"budget", s.view.Budget(),
		)
	}
	if k, ok := e.(viewport.KeyPress); ok && k.Key == "space" {
		s.log.Debug("auto-zoom", "on", s.view.AutoZoom())
	}
	return true
}

// frame advances auto-zoom and recomputes the whole buffer
func (s *scene) frame() error {
	s.view.Tick()
	if s.view.AtFloor() != s.floorLogged {
		s.floorLogged = s.view.AtFloor()
		if s.floorLogged {
			s.log.Warn("zoom reached float64 precision floor",
				"pixel_size", s.view.PixelSize(),
				"magnification", s.view.Magnification(),
			)
		}
	}
	return s.renderer.Render(s.view, s.buf)
}
