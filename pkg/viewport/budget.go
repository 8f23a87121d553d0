package viewport

import "math"

// Budget derives the per-pixel iteration budget from the pixel size.
// Implementations must return at least 1 and must not decrease as the
// pixel size shrinks.
type Budget interface {
	Iterations(pixelSize float64) uint
}

// Log is the logarithmic heuristic -trunc(log10(pixelSize) * Factor).
type Log struct {
	Factor float64
}

func (b Log) Iterations(pixelSize float64) uint {
	if !(pixelSize > 0) {
		return 1
	}
	n := -math.Trunc(math.Log10(pixelSize) * b.Factor)
	if !(n >= 1) { // also catches NaN
		return 1
	}
	if n > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint(n)
}

// Step starts from a flat Base and adds another Base each time the pixel
// size halves below Reference.
type Step struct {
	Base      uint
	Reference float64
}

func (b Step) Iterations(pixelSize float64) uint {
	base := b.Base
	if base < 1 {
		base = 1
	}
	if !(pixelSize > 0) || pixelSize >= b.Reference {
		return base
	}
	halvings := math.Floor(math.Log2(b.Reference / pixelSize))
	if math.IsInf(halvings, 0) || math.IsNaN(halvings) {
		return base
	}
	return base * (1 + uint(halvings))
}

// Fixed ignores the pixel size.
type Fixed uint

func (b Fixed) Iterations(float64) uint {
	if b < 1 {
		return 1
	}
	return uint(b)
}
