// Package logsumexp provides numerically stable log-domain summation:
// evaluation of log(exp(a)+exp(b)) and of log(Σ exp(v_i)) over a sequence,
// without the overflow and underflow of the naive forms.
//
// Probabilities held on the log scale are added with [LnAddExp] and reduced
// with [LnSumExp]; both shift by the running maximum so that every
// exponentiated term stays in (0,1]. The sequence reduction is a single
// forward pass with O(1) state, following the online normalizer scheme of
// Milakov & Gimelshein (2018), extended with exact IEEE-754 handling of
// ±Inf and NaN at any position in the input.
//
// # Usage
//
// Reduce a materialized slice, or any single-use iterator:
//
//	p := logsumexp.LnSumExp([]float64{-1053.2, -1051.7, -1060.0})
//
//	seq := func(yield func(float64) bool) { ... }
//	p := logsumexp.LnSumExpSeq(seq)
//
// For block-oriented pipelines that can afford a scratch buffer,
// [LnSumExpBlock] runs a two-pass SIMD-backed reduction over float64 data.
// [Accumulator] reduces data that arrives incrementally and supports merging
// partial reductions.
//
// All operations are instantiable for float32 and float64. Abnormal
// outcomes are in-band IEEE values: NaN anywhere in the input yields NaN, a
// +Inf term yields +Inf (unless a NaN is also present), and the empty
// reduction yields -Inf, the log of an empty sum. There is no error channel.
package logsumexp
