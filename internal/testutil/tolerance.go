package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireQuantized fails t unless every element of row is an integer within
// [-(order-1), order-1] that is odd for an even order and even for an odd
// order.
func RequireQuantized(t testing.TB, row []float64, order int) {
	t.Helper()
	bound := float64(order - 1)
	wantRemainder := 1.0
	if order%2 != 0 {
		wantRemainder = 0
	}
	for i, v := range row {
		if math.Trunc(v) != v {
			t.Fatalf("index %d: %v is not an integer", i, v)
		}
		if math.Abs(v) > bound {
			t.Fatalf("index %d: |%v| exceeds bound %v for order %d", i, v, bound, order)
		}
		if math.Abs(math.Mod(v, 2)) != wantRemainder {
			t.Fatalf("index %d: %v has the wrong parity for order %d", i, v, order)
		}
	}
}
