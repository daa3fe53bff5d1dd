package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Option configures window generation.
type Option func(*config)

type config struct {
	symmetric bool
}

// WithSymmetric selects the symmetric form, whose last coefficient mirrors
// the first, instead of the default periodic form.
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}

// Hann returns raised-cosine coefficients w[i] = 0.5*(1 - cos(2*pi*x)).
//
// The default periodic form places x = i/size, so a tone located exactly on
// an FFT bin leaks into its two neighbours only. [WithSymmetric] uses
// x = i/(size-1).
func Hann(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	for i := range out {
		x := samplePosition(i, size, !cfg.symmetric)
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*x))
	}

	return out, nil
}

// Apply multiplies buf in-place by coeffs.
func Apply(buf, coeffs []float64) error {
	if len(coeffs) == 0 {
		return errEmptyCoeffs
	}

	if len(buf) != len(coeffs) {
		return fmt.Errorf("%w: %d != %d", errMismatchedLength, len(buf), len(coeffs))
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
