package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetValues(t *testing.T) {
	tests := []struct {
		name      string
		budget    Budget
		pixelSize float64
		want      uint
	}{
		{"log16 default", Log{Factor: 16}, 0.002, 43},
		{"log32 default", Log{Factor: 32}, 0.002, 86},
		{"log16 deep", Log{Factor: 16}, 2e-10, 155},
		{"log coarse", Log{Factor: 16}, 2, 1},
		{"log zero", Log{Factor: 16}, 0, 1},
		{"log nan", Log{Factor: 16}, math.NaN(), 1},
		{"step at reference", Step{Base: 20, Reference: 0.002}, 0.002, 20},
		{"step coarser", Step{Base: 20, Reference: 0.002}, 0.01, 20},
		{"step halved", Step{Base: 20, Reference: 0.002}, 0.001, 40},
		{"step almost halved", Step{Base: 20, Reference: 0.002}, 0.0011, 20},
		{"step quartered", Step{Base: 20, Reference: 0.002}, 0.0005, 60},
		{"fixed", Fixed(50), 1e-9, 50},
		{"fixed zero", Fixed(0), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.budget.Iterations(tt.pixelSize))
		})
	}
}

func TestBudgetMonotonic(t *testing.T) {
	budgets := map[string]Budget{
		"log16": Log{Factor: 16},
		"log32": Log{Factor: 32},
		"step":  Step{Base: 20, Reference: 0.002},
		"fixed": Fixed(20),
	}
	for name, b := range budgets {
		t.Run(name, func(t *testing.T) {
			prev := uint(0)
			for ps := 10.0; ps > 1e-17; ps *= 0.9 {
				n := b.Iterations(ps)
				assert.GreaterOrEqual(t, n, uint(1))
				assert.GreaterOrEqual(t, n, prev, "pixel size %g", ps)
				prev = n
			}
		})
	}
}
