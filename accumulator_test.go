package logsumexp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-logsumexp/internal/testutil"
)

// The accumulator must mirror the one-shot reduction bit-for-bit: it runs
// the identical per-element update.
func TestAccumulatorMirrorsLnSumExp(t *testing.T) {
	pInf := math.Inf(1)
	nInf := math.Inf(-1)
	nan := math.NaN()

	fixtures := [][]float64{
		{},
		{0.5},
		{0.5, 1.0, -2.25},
		{nInf, 0.5, nInf, nInf},
		{pInf, 0.5, 1.0, nInf},
		{pInf, 0.5, nan, 1.0},
		{nan, pInf},
		{1000.0, 1002.0, 998.0},
		testutil.LogRange(10),
	}

	for _, v := range fixtures {
		acc := NewAccumulator[float64]()
		acc.AddSlice(v)

		testutil.RequireSame(t, acc.Result(), LnSumExp(v))

		if acc.Count() != len(v) {
			t.Fatalf("count %d, want %d", acc.Count(), len(v))
		}
	}
}

func TestAccumulatorResultIsNonConsuming(t *testing.T) {
	acc := NewAccumulator[float64]()
	acc.Add(math.Log(20))
	testutil.RequireNear(t, acc.Result(), math.Log(20), 1e-12)

	acc.Add(math.Log(25))
	testutil.RequireNear(t, acc.Result(), math.Log(45), 1e-12)
}

func TestAccumulatorReset(t *testing.T) {
	acc := NewAccumulator[float64]()
	acc.AddSlice([]float64{0.5, math.NaN()})
	acc.Reset()

	testutil.RequireSame(t, acc.Result(), math.Inf(-1))

	if acc.Count() != 0 {
		t.Fatalf("count after reset: %d", acc.Count())
	}

	acc.Add(0.5)
	testutil.RequireSame(t, acc.Result(), 0.5)
}

// Merging two partial reductions must equal reducing the concatenation, for
// every split point.
func TestAccumulatorMergeSplits(t *testing.T) {
	v := append(testutil.LogProbs(40, 50.0, 3), math.Inf(-1), -3.0)
	want := LnSumExp(v)

	for cut := 0; cut <= len(v); cut++ {
		a := NewAccumulator[float64]()
		a.AddSlice(v[:cut])

		b := NewAccumulator[float64]()
		b.AddSlice(v[cut:])

		a.Merge(b)
		testutil.RequireNear(t, a.Result(), want, 1e-11)

		if a.Count() != len(v) {
			t.Fatalf("cut %d: count %d, want %d", cut, a.Count(), len(v))
		}
	}
}

func TestAccumulatorMergeDominance(t *testing.T) {
	pInf := math.Inf(1)
	nan := math.NaN()

	build := func(v ...float64) *Accumulator[float64] {
		acc := NewAccumulator[float64]()
		acc.AddSlice(v)

		return acc
	}

	// NaN dominates saturation regardless of which side carries it.
	a := build(pInf)
	a.Merge(build(nan))
	testutil.RequireSame(t, a.Result(), nan)

	a = build(nan)
	a.Merge(build(pInf))
	testutil.RequireSame(t, a.Result(), nan)

	// Saturation survives a merge with finite data.
	a = build(pInf)
	a.Merge(build(0.5, 1.0))
	testutil.RequireSame(t, a.Result(), pInf)

	a = build(0.5, 1.0)
	a.Merge(build(pInf))
	testutil.RequireSame(t, a.Result(), pInf)

	// Merging with an empty accumulator is the identity.
	a = build(0.5, 1.0)
	a.Merge(NewAccumulator[float64]())
	testutil.RequireSame(t, a.Result(), LnSumExp([]float64{0.5, 1.0}))

	a = NewAccumulator[float64]()
	a.Merge(build(0.5, 1.0))
	testutil.RequireSame(t, a.Result(), LnSumExp([]float64{0.5, 1.0}))
}

func TestAccumulatorFloat32(t *testing.T) {
	acc := NewAccumulator[float32]()
	acc.AddSlice([]float32{0.5, 1.0, float32(math.Inf(-1))})

	want := LnSumExp([]float32{0.5, 1.0})
	testutil.RequireSame(t, float64(acc.Result()), float64(want))
}
