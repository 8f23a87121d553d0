package escape

import "runtime"

// BAND_HEIGHT is the number of rows one worker renders per task.
const BAND_HEIGHT int = 16

// band is a half-open row range [y0, y1) of the buffer
type band struct {
	y0, y1 int
}

// splitRows cuts h rows into bands of at most bandH rows.
// The last band is shorter if h is not divisible.
func splitRows(h, bandH int) []band {
	if bandH <= 0 {
		panic("band height must be positive")
	}
	bands := make([]band, 0, (h+bandH-1)/bandH)
	for y := 0; y < h; y += bandH {
		y1 := y + bandH
		if y1 > h {
			y1 = h
		}
		bands = append(bands, band{y0: y, y1: y1})
	}
	return bands
}

func workerCount(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
