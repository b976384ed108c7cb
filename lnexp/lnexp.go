package lnexp

import (
	"math"

	"github.com/cwbudde/algo-logsumexp/internal/elementary"
)

// Float is the constraint satisfied by the floating-point widths this
// package instantiates: float32 and float64.
type Float interface {
	~float32 | ~float64
}

// Region cutoffs for Ln1pExp. Below lowerCutoff, log(1+exp(x)) equals
// exp(x) to full precision; above upperCutoff it equals x. Between midCutoff
// and upperCutoff the form x + exp(-x) avoids evaluating log1p on a value
// whose fractional part has been absorbed.
const (
	lowerCutoff = -37.0
	midCutoff   = 18.0
	upperCutoff = 33.3
)

// Ln1pExp returns log(1+exp(x)) without intermediate overflow or underflow.
//
// Special cases are:
//
//	Ln1pExp(+Inf) = +Inf
//	Ln1pExp(-Inf) = 0
//	Ln1pExp(NaN)  = NaN
func Ln1pExp[T Float](x T) T {
	v := float64(x)

	switch {
	case math.IsNaN(v):
		return x
	case v < lowerCutoff:
		// Includes -Inf: exp(-Inf) = 0.
		return T(elementary.Exp(v))
	case v <= midCutoff:
		return T(elementary.Log1p(elementary.Exp(v)))
	case v <= upperCutoff:
		return T(v + elementary.Exp(-v))
	default:
		// Includes +Inf.
		return x
	}
}

// LnExpM1 returns log(exp(x)-1), the inverse of Ln1pExp on positive
// arguments.
//
// Special cases are:
//
//	LnExpM1(+Inf)  = +Inf
//	LnExpM1(0)     = -Inf
//	LnExpM1(x < 0) = NaN (exp(x)-1 is negative)
//	LnExpM1(NaN)   = NaN
func LnExpM1[T Float](x T) T {
	v := float64(x)

	switch {
	case math.IsNaN(v):
		return x
	case v > upperCutoff:
		// Includes +Inf: exp(x)-1 equals exp(x) to full precision.
		return x
	case v > math.Ln2:
		// exp(-v) < 1/2 here, so log1p(-exp(-v)) is well conditioned.
		return T(v + elementary.Log1p(-elementary.Exp(-v)))
	case v > 0:
		return T(elementary.Log(elementary.Expm1(v)))
	case v == 0:
		return T(math.Inf(-1))
	default:
		return T(math.NaN())
	}
}
