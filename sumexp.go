package logsumexp

import "iter"

// LnSumExp returns log(Σ exp(v_i)) over the slice in a single pass with
// O(1) auxiliary state.
//
// Special cases are:
//
//	LnSumExp(empty)               = -Inf
//	LnSumExp(containing NaN)      = NaN, even alongside +Inf
//	LnSumExp(containing +Inf)     = +Inf when no NaN is present
//	-Inf entries never affect the result
func LnSumExp[T Float](v []T) T {
	return LnSumExpSeq(func(yield func(T) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	})
}

// LnSumExpSeq returns log(Σ exp(v_i)) over a single-use sequence. The
// sequence is consumed at most once, in order, with no buffering or
// re-iteration, so lazily generated producers are fine. Special cases match
// [LnSumExp].
//
// The reduction carries a running maximum mOld and a running sum of
// exp(v_i - mOld) terms. Each time a new maximum appears the accumulated
// sum is rescaled by exp(mOld - mNew) before the new term is added, which
// keeps every term in (0,1] and the sum below the element count, so no
// intermediate value can overflow regardless of input magnitudes.
//
// A +Inf element forces the result to +Inf but cannot short-circuit: a NaN
// later in the sequence must still win, so the remainder is scanned without
// accumulation. A NaN element returns immediately; the remainder is left
// unconsumed.
func LnSumExpSeq[T Float](seq iter.Seq[T]) T {
	mOld := inf[T](-1)
	sum := T(0)
	saturated := false

	for v := range seq {
		switch {
		case saturated:
			// Only a NaN can change the outcome now.
			if isNaN(v) {
				return v
			}
		case isInf(v, -1):
			// exp(-Inf) = 0: contributes nothing.
		case isInf(v, 1):
			saturated = true
		case isNaN(v):
			return v
		default:
			mNew := max(mOld, v)
			sum = sum*exp(mOld-mNew) + exp(v-mNew)
			mOld = mNew
		}
	}

	if saturated {
		return inf[T](1)
	}

	if isInf(mOld, -1) {
		// No finite element seen: log of an empty sum. Returning directly
		// also keeps the fastmath log kernel away from a zero argument.
		return mOld
	}

	return mOld + log(sum)
}

// LnSumExpWeighted returns log(Σ w_i*exp(v_i)) with the weights given on
// the log scale: lnW[i] = log(w_i). A -Inf weight drops its element, which
// makes zero weights exact. Panics if the slices differ in length.
// Special cases otherwise match [LnSumExp] applied to v[i]+lnW[i].
func LnSumExpWeighted[T Float](v, lnW []T) T {
	if len(v) != len(lnW) {
		panic("logsumexp: value and weight slices differ in length")
	}

	return LnSumExpSeq(func(yield func(T) bool) {
		for i := range v {
			if !yield(v[i] + lnW[i]) {
				return
			}
		}
	})
}
