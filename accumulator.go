package logsumexp

// reduction state. Saturation is not terminal: a later NaN still wins, so a
// saturated accumulator keeps inspecting elements without accumulating.
type state uint8

const (
	stateAccumulating state = iota
	stateSaturated
	statePoisoned
)

// Accumulator reduces a log-scale sequence that arrives incrementally,
// producing results bit-for-bit identical to [LnSumExp] over the
// concatenation of everything added. The zero value is not ready for use;
// call [NewAccumulator].
//
// Accumulator is not safe for concurrent use.
type Accumulator[T Float] struct {
	mOld T
	sum  T
	nan  T // the poisoning NaN, payload preserved
	n    int
	st   state
}

// NewAccumulator returns an empty accumulator. Its immediate Result is
// -Inf, the log of an empty sum.
func NewAccumulator[T Float]() *Accumulator[T] {
	a := &Accumulator[T]{}
	a.Reset()

	return a
}

// Reset returns the accumulator to its empty state.
func (a *Accumulator[T]) Reset() {
	a.mOld = inf[T](-1)
	a.sum = 0
	a.nan = 0
	a.n = 0
	a.st = stateAccumulating
}

// Add folds one element into the reduction.
func (a *Accumulator[T]) Add(v T) {
	a.n++

	switch {
	case a.st == statePoisoned:
	case isNaN(v):
		a.st = statePoisoned
		a.nan = v
	case a.st == stateSaturated:
	case isInf(v, -1):
	case isInf(v, 1):
		a.st = stateSaturated
	default:
		mNew := max(a.mOld, v)
		a.sum = a.sum*exp(a.mOld-mNew) + exp(v-mNew)
		a.mOld = mNew
	}
}

// AddSlice folds each element of v into the reduction, in order.
func (a *Accumulator[T]) AddSlice(v []T) {
	for _, x := range v {
		a.Add(x)
	}
}

// Merge folds another accumulator's partial reduction into a, as if every
// element added to b had been added to a instead. b is left unchanged.
// NaN dominates, then saturation; otherwise the (max, sum) pairs combine by
// rescaling both sums to the larger maximum.
func (a *Accumulator[T]) Merge(b *Accumulator[T]) {
	a.n += b.n

	switch {
	case a.st == statePoisoned:
	case b.st == statePoisoned:
		a.st = statePoisoned
		a.nan = b.nan
	case a.st == stateSaturated || b.st == stateSaturated:
		a.st = stateSaturated
	case isInf(b.mOld, -1):
		// b holds no finite elements.
	case isInf(a.mOld, -1):
		a.mOld = b.mOld
		a.sum = b.sum
	default:
		mNew := max(a.mOld, b.mOld)
		a.sum = a.sum*exp(a.mOld-mNew) + b.sum*exp(b.mOld-mNew)
		a.mOld = mNew
	}
}

// Result finalizes the reduction without consuming the accumulator; more
// elements may be added afterwards.
func (a *Accumulator[T]) Result() T {
	switch a.st {
	case statePoisoned:
		return a.nan
	case stateSaturated:
		return inf[T](1)
	}

	if isInf(a.mOld, -1) {
		return a.mOld
	}

	return a.mOld + log(a.sum)
}

// Count reports the number of elements added, across all value classes.
func (a *Accumulator[T]) Count() int { return a.n }
