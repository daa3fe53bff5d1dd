package window

// Analysis holds numerically computed properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
}

// Analyze computes the coherent gain and equivalent noise bandwidth of
// coeffs. Spectrum estimators divide by the coherent gain to read tone
// amplitudes and by ENBW to read noise density.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	if sum == 0 {
		return Analysis{}, errZeroCoherentGain
	}

	return Analysis{
		CoherentGain: sum / float64(n),
		ENBW:         float64(n) * sumSq / (sum * sum),
	}, nil
}
