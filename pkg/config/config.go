// Package config loads viewer settings from TOML files and presets.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/joshvictor1024/mandelzoom/pkg/escape"
	"github.com/joshvictor1024/mandelzoom/pkg/palette"
	"github.com/joshvictor1024/mandelzoom/pkg/types"
	"github.com/joshvictor1024/mandelzoom/pkg/viewport"
)

// Config is the on-disk shape of a mandelzoom.toml file.
type Config struct {
	// Preset is applied before the rest of the file.
	Preset string `toml:"preset"`

	Workers  int      `toml:"workers"`
	Window   Window   `toml:"window"`
	Budget   Budget   `toml:"budget"`
	Color    Color    `toml:"color"`
	Controls Controls `toml:"controls"`
}

type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Budget struct {
	// Heuristic is one of "log", "step" or "fixed".
	Heuristic string  `toml:"heuristic"`
	Factor    float64 `toml:"factor"`

	// Base is the flat budget of "step" and the constant of "fixed".
	Base uint `toml:"base"`
}

type Color struct {
	Mode     string `toml:"mode"` // "linear" or "table"
	Gradient string `toml:"gradient"`
}

type Controls struct {
	Mode           string  `toml:"mode"` // "panzoom" or "explore"
	PanGain        float64 `toml:"pan_gain"`
	ZoomFactor     int     `toml:"zoom_factor"`
	AutoZoomFactor int     `toml:"auto_zoom_factor"`
	AspectX        float64 `toml:"aspect_x"`
	AspectY        float64 `toml:"aspect_y"`
}

const DefaultPreset = "classic"

var presets = map[string]func(*Config){
	"flat": func(c *Config) {
		c.Budget = Budget{Heuristic: "step", Base: 20}
		c.Color = Color{Mode: "linear"}
		c.Controls.Mode = "panzoom"
	},
	"classic": func(c *Config) {
		c.Budget = Budget{Heuristic: "log", Factor: 16}
		c.Color = Color{Mode: "linear"}
		c.Controls.Mode = "panzoom"
	},
	"explore": func(c *Config) {
		c.Budget = Budget{Heuristic: "log", Factor: 32}
		c.Color = Color{Mode: "table", Gradient: "inferno"}
		c.Controls.Mode = "explore"
	},
}

// Presets lists the known preset names.
func Presets() []string {
	return []string{"flat", "classic", "explore"}
}

// Default is the classic preset at 1500x1000.
func Default() Config {
	c, _ := Preset(DefaultPreset)
	return c
}

// Preset returns the defaults with the named preset applied.
func Preset(name string) (Config, error) {
	apply, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q (have %s)", name, strings.Join(Presets(), ", "))
	}
	c := Config{
		Preset: strings.ToLower(name),
		Window: Window{Width: 1500, Height: 1000},
		Controls: Controls{
			PanGain:        10,
			ZoomFactor:     2,
			AutoZoomFactor: 1,
			AspectX:        3,
			AspectY:        2,
		},
	}
	apply(&c)
	return c, nil
}

// Load reads path on top of its preset (or DefaultPreset).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return Parse(string(data))
}

// Parse decodes TOML text on top of its preset.
func Parse(text string) (Config, error) {
	var head struct {
		Preset string `toml:"preset"`
	}
	if _, err := toml.Decode(text, &head); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	name := head.Preset
	if name == "" {
		name = DefaultPreset
	}
	c, err := Preset(name)
	if err != nil {
		return Config{}, err
	}
	md, err := toml.Decode(text, &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("unknown config keys: %v", undecoded)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers: must not be negative, got %d", c.Workers)
	}
	if _, err := c.ViewportBudget(); err != nil {
		return err
	}
	if _, err := c.controls(); err != nil {
		return err
	}
	switch c.Color.Mode {
	case "linear":
	case "table":
		if _, err := palette.NewTable(c.Color.Gradient); err != nil {
			return errors.Wrap(err, "color")
		}
	default:
		return errors.Errorf("color: unknown mode %q", c.Color.Mode)
	}
	if c.Controls.ZoomFactor < 1 || c.Controls.AutoZoomFactor < 1 {
		return errors.New("controls: zoom factors must be at least 1")
	}
	if c.Controls.AspectX <= 0 || c.Controls.AspectY <= 0 {
		return errors.New("controls: aspect must be positive")
	}
	return nil
}

// ViewportBudget builds the iteration budget heuristic.
func (c Config) ViewportBudget() (viewport.Budget, error) {
	switch c.Budget.Heuristic {
	case "log":
		if c.Budget.Factor <= 0 {
			return nil, errors.Errorf("budget: log factor must be positive, got %g", c.Budget.Factor)
		}
		return viewport.Log{Factor: c.Budget.Factor}, nil
	case "step":
		base := c.Budget.Base
		if base == 0 {
			base = 20
		}
		ref := viewport.DefaultRangeX.Span() / float64(c.Window.Width)
		return viewport.Step{Base: base, Reference: ref}, nil
	case "fixed":
		if c.Budget.Base == 0 {
			return nil, errors.New("budget: fixed needs base >= 1")
		}
		return viewport.Fixed(c.Budget.Base), nil
	default:
		return nil, errors.Errorf("budget: unknown heuristic %q", c.Budget.Heuristic)
	}
}

func (c Config) controls() (viewport.Controls, error) {
	switch c.Controls.Mode {
	case "panzoom":
		return viewport.PanZoom, nil
	case "explore":
		return viewport.Explore, nil
	default:
		return 0, errors.Errorf("controls: unknown mode %q", c.Controls.Mode)
	}
}

// ViewportOptions translates the config for viewport.New.
func (c Config) ViewportOptions() (viewport.Options, error) {
	b, err := c.ViewportBudget()
	if err != nil {
		return viewport.Options{}, err
	}
	ctl, err := c.controls()
	if err != nil {
		return viewport.Options{}, err
	}
	return viewport.Options{
		Budget:         b,
		PanGain:        c.Controls.PanGain,
		Aspect:         types.Pointf64{X: c.Controls.AspectX, Y: c.Controls.AspectY},
		Controls:       ctl,
		ZoomFactor:     c.Controls.ZoomFactor,
		AutoZoomFactor: c.Controls.AutoZoomFactor,
	}, nil
}

// Colorizer builds the colour mapping.
func (c Config) Colorizer() (escape.Colorizer, error) {
	if c.Color.Mode == "table" {
		t, err := palette.NewTable(c.Color.Gradient)
		if err != nil {
			return nil, errors.Wrap(err, "color")
		}
		return t, nil
	}
	return palette.Linear{}, nil
}
