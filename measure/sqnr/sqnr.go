package sqnr

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-deltasigma/dsp/core"
	"github.com/cwbudde/algo-deltasigma/dsp/window"
)

const defaultSignalSpread = 1

var (
	// ErrEmptySignal is returned for a zero-length input.
	ErrEmptySignal = errors.New("sqnr: signal must not be empty")
	// ErrInvalidBand is returned when the band edge lies beyond Nyquist.
	ErrInvalidBand = errors.New("sqnr: band edge beyond nyquist")
	// ErrInvalidBin is returned when the signal bin lies outside the band.
	ErrInvalidBin = errors.New("sqnr: signal bin outside analysis band")
)

// Config selects the bins used for an SQNR measurement.
type Config struct {
	// SignalBin is the FFT bin of the test tone.
	SignalBin int
	// SignalSpread is the number of bins on each side of SignalBin counted
	// as signal. Values < 1 select 1, the Hann main lobe.
	SignalSpread int
	// BandEdge is the highest bin of the analysis band [0, BandEdge].
	// Values < 1 select len(spectrum)/2.
	BandEdge int
}

// Result holds SQNR measurement results.
type Result struct {
	SignalPower float64
	NoisePower  float64
	SNR         float64 // dB
	ENOB        float64 // effective number of bits
}

// Spectrum returns the Hann-windowed FFT of x, scaled so that a sine of
// amplitude A located exactly on a bin reads |X[k]| = A.
func Spectrum(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	coeffs, err := window.Hann(n)
	if err != nil {
		return nil, err
	}

	info, err := window.Analyze(coeffs)
	if err != nil {
		return nil, fmt.Errorf("sqnr: %w", err)
	}

	buf := append([]float64(nil), x...)
	if err := window.Apply(buf, coeffs); err != nil {
		return nil, fmt.Errorf("sqnr: %w", err)
	}

	scale := 2 / (float64(n) * info.CoherentGain)

	in := make([]complex128, n)
	for i, v := range buf {
		in[i] = complex(v*scale, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("sqnr: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)

	err = plan.Forward(out, in)
	if err != nil {
		return nil, fmt.Errorf("sqnr: forward FFT: %w", err)
	}

	return out, nil
}

// SNR computes signal and noise power over the band [0, BandEdge] of a
// spectrum produced by [Spectrum].
func SNR(spectrum []complex128, cfg Config) (Result, error) {
	if len(spectrum) == 0 {
		return Result{}, ErrEmptySignal
	}

	nyquist := len(spectrum) / 2

	edge := cfg.BandEdge
	if edge < 1 {
		edge = nyquist
	}

	if edge > nyquist {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrInvalidBand, edge, nyquist)
	}

	if cfg.SignalBin < 0 || cfg.SignalBin > edge {
		return Result{}, fmt.Errorf("%w: bin %d, band [0, %d]", ErrInvalidBin, cfg.SignalBin, edge)
	}

	spread := cfg.SignalSpread
	if spread < 1 {
		spread = defaultSignalSpread
	}

	re := make([]float64, edge+1)
	im := make([]float64, edge+1)
	for k := range re {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	power := make([]float64, edge+1)
	vecmath.Power(power, re, im)

	var res Result
	for k, p := range power {
		if abs(k-cfg.SignalBin) <= spread {
			res.SignalPower += p
		} else {
			res.NoisePower += p
		}
	}

	if res.NoisePower == 0 {
		res.SNR = math.Inf(1)
	} else {
		res.SNR = core.LinearPowerToDB(res.SignalPower / res.NoisePower)
	}

	res.ENOB = (res.SNR - 1.76) / 6.02

	return res, nil
}

// Analyze is Spectrum followed by SNR.
func Analyze(x []float64, cfg Config) (Result, error) {
	spec, err := Spectrum(x)
	if err != nil {
		return Result{}, err
	}

	return SNR(spec, cfg)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
