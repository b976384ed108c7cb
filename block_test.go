package logsumexp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-logsumexp/internal/testutil"
)

func TestLnSumExpBlockSpecialValues(t *testing.T) {
	pInf := math.Inf(1)
	nInf := math.Inf(-1)
	nan := math.NaN()

	fixtures := [][]float64{
		{},
		{0.5},
		{nInf, 0.5, nInf, nInf},
		{nInf, nInf},
		{pInf, 0.5, 1.0, nInf},
		{0.5, 1.0, pInf},
		{pInf, 0.5, nan, 1.0},
		{nan},
		{0.5, nan},
	}

	scratch := make([]float64, 8)

	for _, v := range fixtures {
		testutil.RequireSame(t, LnSumExpBlock(v, scratch), LnSumExp(v))
	}
}

func TestLnSumExpBlockMatchesStreaming(t *testing.T) {
	v := testutil.LogProbs(513, 40.0, 11)
	scratch := make([]float64, len(v))

	// The SIMD sum may reorder additions, so compare within tolerance
	// rather than bit-for-bit.
	testutil.RequireNear(t, LnSumExpBlock(v, scratch), LnSumExp(v), 1e-11)
}

func TestLnSumExpBlockNilScratch(t *testing.T) {
	v := []float64{0.5, 1.0, -2.25}
	testutil.RequireSame(t, LnSumExpBlock(v, nil), LnSumExp(v))
}

func TestLnSumExpBlockShortScratch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on short scratch")
		}
	}()

	LnSumExpBlock(make([]float64, 4), make([]float64, 2))
}
