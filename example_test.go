package logsumexp_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-logsumexp"
)

func ExampleLnAddExp() {
	x := logsumexp.LnAddExp(0.5, 1.0)
	fmt.Printf("%.4f\n", x)

	// The naive form overflows long before the stable one.
	fmt.Println(logsumexp.LnAddExp(1023.0, 511.0))

	// Output:
	// 1.4741
	// 1023
}

func ExampleLnSumExp() {
	// Mean of probabilities held on the log scale.
	probs := []float64{0.1, 0.2, 0.3, 0.4, 0.5}

	logs := make([]float64, len(probs))
	for i, p := range probs {
		logs[i] = math.Log(p)
	}

	logMean := logsumexp.LnSumExp(logs) - math.Log(float64(len(probs)))
	fmt.Printf("%.1f\n", math.Exp(logMean))

	// Output:
	// 0.3
}

func ExampleLnSumExpSeq() {
	// Reduce a lazily generated sequence: log(0) + log(1) + ... + log(9)
	// on the exponential scale is simply 0 + 1 + ... + 9 = 45.
	seq := func(yield func(float64) bool) {
		for i := range 10 {
			if !yield(math.Log(float64(i))) {
				return
			}
		}
	}

	fmt.Printf("%.0f\n", math.Exp(logsumexp.LnSumExpSeq(seq)))

	// Output:
	// 45
}

func ExampleAccumulator() {
	acc := logsumexp.NewAccumulator[float64]()
	acc.Add(math.Log(20))
	acc.Add(math.Log(25))

	fmt.Printf("%.0f after %d terms\n", math.Exp(acc.Result()), acc.Count())

	// Output:
	// 45 after 2 terms
}
