package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshvictor1024/mandelzoom/pkg/types"
)

func newTestViewport(t *testing.T, w, h int, opts Options) *Viewport {
	t.Helper()
	v, err := New(w, h, opts)
	require.NoError(t, err)
	return v
}

func TestNewRejectsBadSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := New(size[0], size[1], Options{})
		assert.Error(t, err, "size %v", size)
	}
}

func TestDefaults(t *testing.T) {
	v := newTestViewport(t, 1500, 1000, Options{})

	assert.Equal(t, DefaultRangeX, v.RangeX())
	assert.Equal(t, DefaultRangeY, v.RangeY())
	assert.Equal(t, types.Pointf64{X: -0.5, Y: 0}, v.Offset())
	assert.InDelta(t, 0.002, v.PixelSize(), 1e-15)
	assert.Equal(t, uint(43), v.Budget())
	assert.False(t, v.AutoZoom())
	assert.InDelta(t, 1, v.Magnification(), 1e-12)
}

func TestPan(t *testing.T) {
	v := newTestViewport(t, 1500, 1000, Options{})

	v.Pan(0.5, 0.5)
	assert.Equal(t, DefaultOffset, v.Offset())

	v.Pan(1, 0)
	assert.InDelta(t, -0.49, v.Offset().X, 1e-12)
	assert.InDelta(t, -0.01, v.Offset().Y, 1e-12)

	// scale is untouched
	assert.InDelta(t, 0.002, v.PixelSize(), 1e-15)
}

func TestZoomShrinksAsymmetrically(t *testing.T) {
	v := newTestViewport(t, 1500, 1000, Options{})

	v.Zoom(2)
	assert.InDelta(t, -1.988, v.RangeX().Min, 1e-12)
	assert.InDelta(t, 0.988, v.RangeX().Max, 1e-12)
	assert.InDelta(t, -0.992, v.RangeY().Min, 1e-12)
	assert.InDelta(t, 0.992, v.RangeY().Max, 1e-12)
	assert.InDelta(t, 2.976/1500, v.PixelSize(), 1e-15)
	assert.Equal(t, Log{Factor: 16}.Iterations(v.PixelSize()), v.Budget())
	assert.False(t, v.AtFloor())
}

func TestZoomCustomAspect(t *testing.T) {
	v := newTestViewport(t, 1000, 1000, Options{Aspect: types.Pointf64{X: 1, Y: 1}})

	v.Zoom(1)
	ps := 3.0 / 1000
	assert.InDelta(t, -2+ps, v.RangeX().Min, 1e-12)
	assert.InDelta(t, -1+ps, v.RangeY().Min, 1e-12)
}

func TestZoomReachesFloor(t *testing.T) {
	v := newTestViewport(t, 1500, 1000, Options{Budget: Log{Factor: 32}})

	prev := v.PixelSize()
	prevBudget := v.Budget()
	for i := 0; i < 10000; i++ {
		v.Zoom(2)
		ps := v.PixelSize()
		require.False(t, math.IsNaN(ps), "step %d", i)
		require.Greater(t, ps, 0.0, "step %d", i)
		require.LessOrEqual(t, ps, prev, "step %d", i)
		require.GreaterOrEqual(t, v.Budget(), prevBudget, "step %d", i)
		require.Greater(t, v.RangeX().Span(), 0.0)
		require.Greater(t, v.RangeY().Span(), 0.0)
		prev, prevBudget = ps, v.Budget()
	}
	assert.True(t, v.AtFloor())
	assert.InDelta(t, v.MinPixelSize(), v.PixelSize(), v.MinPixelSize()*1e-3)

	v.Zoom(5)
	assert.GreaterOrEqual(t, v.PixelSize(), v.MinPixelSize())
	assert.GreaterOrEqual(t, v.Budget(), uint(1))
}

func TestZoomOvershootOnTinyBuffer(t *testing.T) {
	// 6 pixels of shrink per side does not fit into a 4 pixel wide view
	v := newTestViewport(t, 4, 4, Options{})

	v.Zoom(2)
	assert.True(t, v.AtFloor())
	assert.Greater(t, v.PixelSize(), 0.0)
	assert.Greater(t, v.RangeX().Span(), 0.0)
	assert.Greater(t, v.RangeY().Span(), 0.0)
	assert.InDelta(t, DefaultRangeX.Center(), v.RangeX().Center(), 1e-12)
}

func TestFloorScalesWithOffset(t *testing.T) {
	v := newTestViewport(t, 100, 100, Options{})
	base := v.MinPixelSize()

	v.SetOffset(types.Pointf64{X: -8, Y: 0.1})
	assert.InDelta(t, 8*base, v.MinPixelSize(), 1e-30)
}

func TestReset(t *testing.T) {
	v := newTestViewport(t, 1500, 1000, Options{})
	fresh := *v

	v.Zoom(2)
	v.Pan(0.9, 0.1)
	v.ToggleAutoZoom()
	v.Reset()

	assert.Equal(t, fresh.RangeX(), v.RangeX())
	assert.Equal(t, fresh.RangeY(), v.RangeY())
	assert.Equal(t, fresh.Offset(), v.Offset())
	assert.Equal(t, fresh.PixelSize(), v.PixelSize())
	assert.Equal(t, fresh.Budget(), v.Budget())
	assert.True(t, v.AutoZoom(), "auto-zoom is orthogonal to reset")
}

func TestTick(t *testing.T) {
	v := newTestViewport(t, 1500, 1000, Options{AutoZoomFactor: 1})

	v.Tick()
	assert.InDelta(t, 0.002, v.PixelSize(), 1e-15)

	v.ToggleAutoZoom()
	v.Tick()
	assert.InDelta(t, (3-6*0.002)/1500, v.PixelSize(), 1e-15)

	v.ToggleAutoZoom()
	ps := v.PixelSize()
	v.Tick()
	assert.Equal(t, ps, v.PixelSize())
}
