package testutil

import (
	"math"
	"testing"
)

// RequireSame fails t unless got and want are identical for test purposes:
// both NaN, the same signed infinity, or exactly equal. Plain == must not be
// used for this, since NaN never compares equal to anything.
func RequireSame(t *testing.T, got, want float64) {
	t.Helper()

	if math.IsNaN(want) {
		if !math.IsNaN(got) {
			t.Fatalf("got %v, want NaN", got)
		}

		return
	}

	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// RequireNear fails t if got and want differ by more than eps (absolute
// tolerance). Identical infinities and NaN pairs pass.
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()

	if math.IsNaN(want) || math.IsInf(want, 0) {
		RequireSame(t, got, want)

		return
	}

	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireULP fails t if got and want are more than n representable float64
// values apart. Fails for any NaN or infinity.
func RequireULP(t *testing.T, got, want float64, n uint64) {
	t.Helper()

	d := ULPDistance(got, want)
	if d > n {
		t.Fatalf("got %v, want %v (%d ulps apart > %d)", got, want, d, n)
	}
}

// ULPDistance returns the number of representable float64 values between a
// and b. Returns math.MaxUint64 if either argument is NaN or infinite.
func ULPDistance(a, b float64) uint64 {
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return math.MaxUint64
	}

	// Map the bit patterns onto a monotone integer line so that adjacent
	// floats differ by one, including across the sign boundary.
	return absDiff(ordered(a), ordered(b))
}

func ordered(f float64) int64 {
	bits := int64(math.Float64bits(f))
	if bits < 0 {
		bits = math.MinInt64 - bits
	}

	return bits
}

func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}
