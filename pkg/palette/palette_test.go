package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		it, maxIt uint
		want      color.RGBA
	}{
		{0, 50, color.RGBA{0, 0, 255, 255}},
		{25, 50, color.RGBA{127, 127, 128, 255}},
		{50, 50, color.RGBA{255, 255, 0, 255}},
		{70, 50, color.RGBA{255, 255, 0, 255}},
		{0, 0, color.RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Linear{}.Color(tt.it, tt.maxIt), "it=%d maxIt=%d", tt.it, tt.maxIt)
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(50, 50), "inside")
	assert.Equal(t, 0, Index(99, 50), "past budget")
	assert.Equal(t, 1, Index(0, 50))
	assert.Equal(t, 250, Index(49, 50))
	assert.Equal(t, 1+127, Index(1, 2))

	for maxIt := uint(1); maxIt < 600; maxIt += 7 {
		prev := 0
		for it := uint(0); it < maxIt; it++ {
			i := Index(it, maxIt)
			require.GreaterOrEqual(t, i, 1)
			require.Less(t, i, TableSize)
			require.GreaterOrEqual(t, i, prev)
			prev = i
		}
	}
}

func TestNewTable(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			tbl, err := NewTable(name)
			require.NoError(t, err)
			assert.Equal(t, name, tbl.Name())
			assert.Equal(t, color.RGBA{A: 255}, tbl.Color(10, 10))
			for i := 0; i < TableSize; i++ {
				assert.Equal(t, uint8(255), tbl.At(i).A)
			}
		})
	}
}

func TestNewTableCaseInsensitive(t *testing.T) {
	tbl, err := NewTable("Inferno")
	require.NoError(t, err)
	assert.Equal(t, "inferno", tbl.Name())
}

func TestNewTableUnknown(t *testing.T) {
	_, err := NewTable("plaid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plaid")
	assert.Contains(t, err.Error(), "inferno")
}

func TestGrayTableEnds(t *testing.T) {
	tbl, err := NewTable("gray")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, tbl.At(1))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, tbl.At(TableSize-1))
	assert.Equal(t, tbl.At(1), tbl.Color(0, 100))
}

func TestStops(t *testing.T) {
	g := Stops(color.RGBA{0, 0, 0, 255}, color.RGBA{200, 100, 0, 255}, color.RGBA{200, 200, 200, 255})
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, g(0))
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, g(0.25))
	assert.Equal(t, color.RGBA{200, 100, 0, 255}, g(0.5))
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, g(1))
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, g(3))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, g(-1))

	single := Stops(color.RGBA{1, 2, 3, 255})
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, single(0.7))
}

func TestHSV(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, HSV(0))
	assert.Equal(t, color.RGBA{127, 255, 0, 255}, HSV(0.25))
	assert.Equal(t, color.RGBA{0, 255, 255, 255}, HSV(0.5))
}
