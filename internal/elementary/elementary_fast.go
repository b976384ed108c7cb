//go:build fastmath

package elementary

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// Exp returns e**x using the algo-approx fast kernel. Non-finite arguments
// fall back to the standard library; the approximation is only defined over
// a finite range.
func Exp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.Exp(x)
	}

	return approx.FastExp(x)
}

// Log returns the natural logarithm of x using the algo-approx fast kernel.
// Non-positive and non-finite arguments fall back to the standard library.
func Log(x float64) float64 {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 1) {
		return math.Log(x)
	}

	return approx.FastLog(x)
}

// Log1p returns log(1+x). The fast build loses the near-zero accuracy of
// math.Log1p; callers opting into fastmath accept that trade.
func Log1p(x float64) float64 { return Log(1 + x) }

// Expm1 returns exp(x)-1, with the same near-zero caveat as Log1p.
func Expm1(x float64) float64 { return Exp(x) - 1 }
