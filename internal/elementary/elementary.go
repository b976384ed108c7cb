//go:build !fastmath

package elementary

import "math"

// Exp returns e**x.
func Exp(x float64) float64 { return math.Exp(x) }

// Log returns the natural logarithm of x.
func Log(x float64) float64 { return math.Log(x) }

// Log1p returns log(1+x), accurate for x near zero.
func Log1p(x float64) float64 { return math.Log1p(x) }

// Expm1 returns exp(x)-1, accurate for x near zero.
func Expm1(x float64) float64 { return math.Expm1(x) }
