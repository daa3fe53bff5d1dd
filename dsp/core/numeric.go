package core

import "math"

// IntegerTolerance is the distance from the nearest whole number within
// which a float64 still counts as integer-valued.
const IntegerTolerance = 1e-9

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// AsInteger returns the nearest whole number to x and whether x lies within
// [IntegerTolerance] of it. NaN, Inf and values outside the int32 range are
// rejected.
func AsInteger(x float64) (int, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}

	r := math.Round(x)
	if math.Abs(x-r) > IntegerTolerance {
		return 0, false
	}

	if r > math.MaxInt32 || r < math.MinInt32 {
		return 0, false
	}

	return int(r), true
}

// IsEven reports whether n is divisible by two.
func IsEven(n int) bool {
	return n%2 == 0
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}
