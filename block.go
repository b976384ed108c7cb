package logsumexp

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// LnSumExpBlock returns log(Σ exp(v_i)) over a materialized float64 block
// using a two-pass reduction: one classification-and-max pass, then an
// exp-shift into scratch summed with the SIMD-dispatched vecmath kernel.
// The result matches [LnSumExp] for every input class, including all
// ±Inf/NaN placements.
//
// scratch must hold at least len(v) elements and is clobbered. A nil
// scratch falls back to the single-pass streaming reduction, which
// allocates nothing.
func LnSumExpBlock(v, scratch []float64) float64 {
	if scratch == nil {
		return LnSumExp(v)
	}

	if len(scratch) < len(v) {
		panic("logsumexp: scratch shorter than input block")
	}

	m := math.Inf(-1)
	saturated := false

	for _, x := range v {
		switch {
		case saturated:
			if math.IsNaN(x) {
				return x
			}
		case math.IsNaN(x):
			return x
		case math.IsInf(x, 1):
			saturated = true
		case x > m:
			// -Inf never exceeds m, so it cannot become the shift.
			m = x
		}
	}

	if saturated {
		return math.Inf(1)
	}

	if math.IsInf(m, -1) {
		return m
	}

	s := scratch[:len(v)]
	for i, x := range v {
		// x - m <= 0 throughout; -Inf entries map to exp(-Inf) = 0.
		s[i] = exp(x - m)
	}

	return m + log(vecmath.Sum(s))
}
