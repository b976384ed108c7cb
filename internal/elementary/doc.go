// Package elementary provides the scalar exp/log kernels shared by the
// logsumexp and lnexp packages.
//
// The default build uses the standard library. Building with the "fastmath"
// tag swaps in the algo-approx kernels, trading a small amount of accuracy
// for speed in hot reduction loops.
package elementary
