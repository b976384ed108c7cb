// Package lnexp provides numerically stable evaluation of compositions of
// exp and log that lose precision or overflow when written naively.
//
// The central primitive is [Ln1pExp], which evaluates log(1+exp(x)) across
// the full float range: for large positive x the naive form overflows even
// though the result is simply x, and for large negative x the result is
// exp(x) to within one ulp while the naive form collapses to log(1) = 0.
//
// Cutoffs follow Maechler's classic accuracy analysis of log1p/expm1
// compositions. All computation runs in float64; float32 arguments are
// widened, evaluated, and rounded once on return.
package lnexp
