// Package viewport holds the visible window into the complex plane and the
// input-driven transitions that move it.
package viewport

import (
	"fmt"
	"math"

	"github.com/joshvictor1024/mandelzoom/pkg/types"
)

// Controls selects what the left mouse button does.
type Controls int

const (
	// PanZoom zooms and drifts towards the cursor while the button is held.
	PanZoom Controls = iota
	// Explore only drifts towards the cursor; zooming is left to auto-zoom.
	Explore
)

func (c Controls) String() string {
	if c == Explore {
		return "explore"
	}
	return "panzoom"
}

// Range is a closed interval on one axis of the plane.
type Range struct {
	Min, Max float64
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

func (r Range) Center() float64 {
	return r.Min + r.Span()/2
}

func around(center, span float64) Range {
	return Range{Min: center - span/2, Max: center + span/2}
}

var (
	DefaultRangeX = Range{Min: -2, Max: 1}
	DefaultRangeY = Range{Min: -1, Max: 1}
	DefaultOffset = types.Pointf64{X: -0.5, Y: 0}
)

// epsilon is the spacing of float64 values around 1.
const epsilon = 0x1p-52

// Options tune a Viewport. Zero fields take the defaults of DefaultOptions.
type Options struct {
	Budget Budget

	// PanGain multiplies the cursor displacement in Pan.
	PanGain float64

	// Aspect is the per-side shrink, in pixels per zoom factor, of the
	// horizontal and vertical range.
	Aspect types.Pointf64

	Controls       Controls
	ZoomFactor     int
	AutoZoomFactor int
}

func DefaultOptions() Options {
	return Options{
		Budget:         Log{Factor: 16},
		PanGain:        10,
		Aspect:         types.Pointf64{X: 3, Y: 2},
		Controls:       PanZoom,
		ZoomFactor:     2,
		AutoZoomFactor: 1,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Budget == nil {
		o.Budget = d.Budget
	}
	if o.PanGain == 0 {
		o.PanGain = d.PanGain
	}
	if o.Aspect.X <= 0 || o.Aspect.Y <= 0 {
		o.Aspect = d.Aspect
	}
	if o.ZoomFactor < 1 {
		o.ZoomFactor = d.ZoomFactor
	}
	if o.AutoZoomFactor < 1 {
		o.AutoZoomFactor = d.AutoZoomFactor
	}
	return o
}

// Viewport is safe to copy; Apply relies on that.
type Viewport struct {
	w, h      int
	opts      Options
	x, y      Range
	offset    types.Pointf64
	pixelSize float64
	budget    uint
	autoZoom  bool
	atFloor   bool
}

func New(w, h int, opts Options) (*Viewport, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("viewport: invalid size %dx%d", w, h)
	}
	v := &Viewport{w: w, h: h, opts: opts.withDefaults()}
	v.Reset()
	return v, nil
}

// Reset restores the default framing. Auto-zoom is left as it was.
func (v *Viewport) Reset() {
	v.x = DefaultRangeX
	v.y = DefaultRangeY
	v.offset = DefaultOffset
	v.atFloor = false
	v.updateScale()
}

// Pan moves the offset towards the normalised cursor position (cx, cy).
func (v *Viewport) Pan(cx, cy float64) {
	d := types.Pointf64{X: cx, Y: cy}.Sub(types.Pointf64{X: 0.5, Y: 0.5})
	v.offset = v.offset.Add(d.Mul(v.opts.PanGain * v.pixelSize))
}

// Zoom shrinks both ranges around their centres. The horizontal range loses
// Aspect.X*factor pixels on each side, the vertical one Aspect.Y*factor.
func (v *Viewport) Zoom(factor int) {
	if factor < 1 {
		factor = 1
	}
	sx := v.opts.Aspect.X * float64(factor) * v.pixelSize
	sy := v.opts.Aspect.Y * float64(factor) * v.pixelSize
	x := Range{Min: v.x.Min + sx, Max: v.x.Max - sx}
	y := Range{Min: v.y.Min + sy, Max: v.y.Max - sy}

	floor := v.MinPixelSize()
	ps := x.Span() / float64(v.w)
	if ps >= floor && y.Span() > 0 && !math.IsInf(ps, 0) {
		v.x, v.y = x, y
		v.updateScale()
		return
	}
	if v.atFloor {
		return
	}

	ratio := v.y.Span() / v.x.Span()
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = DefaultRangeY.Span() / DefaultRangeX.Span()
	}
	span := floor * float64(v.w)
	prevX, prevY, prevPS := v.x, v.y, v.pixelSize
	v.x = around(v.x.Center(), span)
	v.y = around(v.y.Center(), span*ratio)
	v.atFloor = true
	v.updateScale()
	// rounding in around can land a hair above the previous size
	if v.pixelSize > prevPS {
		v.x, v.y = prevX, prevY
		v.updateScale()
	}
}

// MinPixelSize is the smallest pixel size at which neighbouring pixels still
// map to distinct float64 coordinates around the current offset.
func (v *Viewport) MinPixelSize() float64 {
	m := math.Max(1, math.Max(math.Abs(v.offset.X), math.Abs(v.offset.Y)))
	return 4 * epsilon * m
}

func (v *Viewport) ToggleAutoZoom() {
	v.autoZoom = !v.autoZoom
}

func (v *Viewport) AutoZoom() bool {
	return v.autoZoom
}

// Tick advances auto-zoom by one frame.
func (v *Viewport) Tick() {
	if v.autoZoom {
		v.Zoom(v.opts.AutoZoomFactor)
	}
}

func (v *Viewport) updateScale() {
	v.pixelSize = math.Max(v.x.Span()/float64(v.w), v.MinPixelSize())
	v.budget = v.opts.Budget.Iterations(v.pixelSize)
	if v.budget < 1 {
		v.budget = 1
	}
}

func (v *Viewport) Width() int             { return v.w }
func (v *Viewport) Height() int            { return v.h }
func (v *Viewport) PixelSize() float64     { return v.pixelSize }
func (v *Viewport) Offset() types.Pointf64 { return v.offset }
func (v *Viewport) Budget() uint           { return v.budget }
func (v *Viewport) RangeX() Range          { return v.x }
func (v *Viewport) RangeY() Range          { return v.y }
func (v *Viewport) Controls() Controls     { return v.opts.Controls }
func (v *Viewport) AtFloor() bool          { return v.atFloor }

// SetOffset recentres the view without changing its scale.
func (v *Viewport) SetOffset(p types.Pointf64) {
	v.offset = p
	v.updateScale()
}

// Zoom factor relative to the default framing.
func (v *Viewport) Magnification() float64 {
	return DefaultRangeX.Span() / float64(v.w) / v.pixelSize
}
