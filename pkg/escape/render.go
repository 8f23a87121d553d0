// Package escape computes escape-time iteration counts for every pixel of a
// viewport and colours them into a pixel buffer.
package escape

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joshvictor1024/mandelzoom/pkg/palette"
	"github.com/joshvictor1024/mandelzoom/pkg/viewport"
)

// Colorizer maps an escape count to a display colour. maxIt is the budget the
// count was computed with; it == maxIt means the point never escaped.
type Colorizer interface {
	Color(it, maxIt uint) color.RGBA
}

// Renderer recomputes the whole buffer on every call. Rows are split into
// bands which are rendered concurrently; no band reads another band's pixels.
type Renderer struct {
	colors  Colorizer
	workers int

	// cached for the last buffer height
	bands  []band
	height int
}

// NewRenderer uses palette.Linear when colors is nil and GOMAXPROCS workers
// when workers <= 0.
func NewRenderer(colors Colorizer, workers int) *Renderer {
	if colors == nil {
		colors = palette.Linear{}
	}
	return &Renderer{
		colors:  colors,
		workers: workerCount(workers),
		height:  -1,
	}
}

func (r *Renderer) Workers() int {
	return r.workers
}

// Render fills buf, whose bounds must match the viewport size.
func (r *Renderer) Render(v *viewport.Viewport, buf *image.RGBA) error {
	b := buf.Bounds()
	if b.Dx() != v.Width() || b.Dy() != v.Height() {
		return fmt.Errorf("escape: buffer is %dx%d, viewport is %dx%d",
			b.Dx(), b.Dy(), v.Width(), v.Height())
	}
	start := time.Now()

	p := newPlane(v)
	err := r.run(p.h, func(bd band) {
		for y := bd.y0; y < bd.y1; y++ {
			cim := p.im(y)
			row := buf.Pix[buf.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < p.w; x++ {
				c := r.colors.Color(Iterate(p.re(x), cim, p.maxIt), p.maxIt)
				o := x * 4
				row[o+0] = c.R
				row[o+1] = c.G
				row[o+2] = c.B
				row[o+3] = 255
			}
		}
	})

	Logger().Debug("frame rendered",
		"took", time.Since(start),
		"budget", p.maxIt,
		"pixel_size", p.ps,
	)
	return err
}

// Counts stores the raw escape count of every pixel in dst, row by row.
func (r *Renderer) Counts(v *viewport.Viewport, dst []uint) error {
	if len(dst) != v.Width()*v.Height() {
		return fmt.Errorf("escape: need %d counts, got %d", v.Width()*v.Height(), len(dst))
	}
	p := newPlane(v)
	return r.run(p.h, func(bd band) {
		for y := bd.y0; y < bd.y1; y++ {
			cim := p.im(y)
			row := dst[y*p.w : (y+1)*p.w]
			for x := range row {
				row[x] = Iterate(p.re(x), cim, p.maxIt)
			}
		}
	})
}

func (r *Renderer) run(h int, fn func(band)) error {
	if h != r.height {
		r.bands = splitRows(h, BAND_HEIGHT)
		r.height = h
	}
	var g errgroup.Group
	g.SetLimit(r.workers)
	for _, bd := range r.bands {
		g.Go(func() error {
			fn(bd)
			return nil
		})
	}
	return g.Wait()
}

// plane is the pixel to complex-plane mapping of one frame.
// Pixel (w/2, h/2) lands exactly on the offset.
type plane struct {
	w, h         int
	ps           float64
	re0, im0     float64
	maxIt        uint
	halfW, halfH int
}

func newPlane(v *viewport.Viewport) plane {
	off := v.Offset()
	return plane{
		w:     v.Width(),
		h:     v.Height(),
		ps:    v.PixelSize(),
		re0:   off.X,
		im0:   off.Y,
		maxIt: v.Budget(),
		halfW: v.Width() / 2,
		halfH: v.Height() / 2,
	}
}

func (p plane) re(x int) float64 {
	return p.re0 + p.ps*float64(x-p.halfW)
}

func (p plane) im(y int) float64 {
	return p.im0 + p.ps*float64(y-p.halfH)
}
