// Package palette maps escape counts to colours.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
)

// Linear shades by the fraction of the budget used: (v, v, 255-v) with
// v = 255*it/maxIt. Points that never escape come out (255, 255, 0).
type Linear struct{}

func (Linear) Color(it, maxIt uint) color.RGBA {
	if maxIt == 0 {
		maxIt = 1
	}
	if it > maxIt {
		it = maxIt
	}
	v := uint8(255 * uint64(it) / uint64(maxIt))
	return color.RGBA{R: v, G: v, B: 255 - v, A: 255}
}

// TableSize is the number of entries in a Table.
const TableSize = 256

// Table is a lookup table built once from a gradient. Entry 0 is reserved for
// points inside the set; escaped points use entries 1..255.
type Table struct {
	name    string
	entries [TableSize]color.RGBA
}

// NewTable samples the named gradient into a table.
func NewTable(name string) (*Table, error) {
	g, ok := gradients[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("palette: unknown gradient %q (have %s)", name, strings.Join(Names(), ", "))
	}
	t := &Table{name: strings.ToLower(name)}
	t.entries[0] = color.RGBA{A: 255}
	for i := 1; i < TableSize; i++ {
		t.entries[i] = g(float64(i-1) / float64(TableSize-2))
	}
	return t, nil
}

func (t *Table) Name() string {
	return t.name
}

// At returns entry i.
func (t *Table) At(i int) color.RGBA {
	return t.entries[i]
}

// Index returns the table entry used for an escape count.
func Index(it, maxIt uint) int {
	if maxIt == 0 || it >= maxIt {
		return 0
	}
	return 1 + int(uint64(it)*(TableSize-1)/uint64(maxIt))
}

func (t *Table) Color(it, maxIt uint) color.RGBA {
	return t.entries[Index(it, maxIt)]
}

// Gradient maps s in [0,1] to a colour.
type Gradient func(s float64) color.RGBA

var gradients = map[string]Gradient{
	"gray":    Stops(color.RGBA{A: 255}, color.RGBA{R: 255, G: 255, B: 255, A: 255}),
	"inferno": Stops(hex(0x000004), hex(0x420a68), hex(0x932667), hex(0xdd513a), hex(0xfca50a), hex(0xfcffa4)),
	"ocean":   Stops(hex(0x000764), hex(0x206bcb), hex(0xedffff), hex(0xffaa00), hex(0x000200)),
	"fire":    Stops(hex(0x000000), hex(0x8b0000), hex(0xff4500), hex(0xffd700), hex(0xffffff)),
	"hsv":     HSV,
}

// Names lists the gradients NewTable accepts.
func Names() []string {
	names := make([]string, 0, len(gradients))
	for n := range gradients {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Stops returns a gradient that interpolates linearly between evenly spaced
// colours.
func Stops(cs ...color.RGBA) Gradient {
	if len(cs) == 1 {
		return func(float64) color.RGBA { return cs[0] }
	}
	return func(s float64) color.RGBA {
		s = clamp01(s)
		i, frac := math.Modf(s * float64(len(cs)-1))
		if int(i) >= len(cs)-1 {
			return cs[len(cs)-1]
		}
		return lerp(cs[int(i)], cs[int(i)+1], frac)
	}
}

func lerp(a, b color.RGBA, f float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// HSV sweeps the hue once at full saturation and value.
func HSV(s float64) color.RGBA {
	h := clamp01(s)
	i := int(h * 6)
	f := h*6 - float64(i)
	q := 1 - f
	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = 1, f, 0
	case 1:
		r, g, b = q, 1, 0
	case 2:
		r, g, b = 0, 1, f
	case 3:
		r, g, b = 0, q, 1
	case 4:
		r, g, b = f, 0, 1
	case 5:
		r, g, b = 1, 0, q
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

func clamp01(s float64) float64 {
	if !(s > 0) {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
