package testutil

import "math"

// LogRange returns [log(0), log(1), ..., log(n-1)]. The first entry is
// -Inf, which a correct log-domain reduction must treat as a zero term.
func LogRange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Log(float64(i))
	}

	return out
}

// LogProbs returns n pseudo-random log-probabilities in roughly
// [-depth, 0), deterministic for a given seed. A cheap LCG keeps the
// fixtures reproducible without pulling math/rand into every test.
func LogProbs(n int, depth float64, seed uint64) []float64 {
	out := make([]float64, n)
	s := seed

	for i := range out {
		s = s*6364136223846793005 + 1442695040888963407
		u := float64(s>>11) / (1 << 53)
		out[i] = -u * depth
	}

	return out
}

// Permuted returns a copy of v reordered by the same LCG. Used to check
// that reductions are order-independent up to rounding.
func Permuted(v []float64, seed uint64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	s := seed

	for i := len(out) - 1; i > 0; i-- {
		s = s*6364136223846793005 + 1442695040888963407
		j := int(s % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}

	return out
}
