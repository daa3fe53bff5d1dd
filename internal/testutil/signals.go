package testutil

import (
	"math"
	"math/rand/v2"
)

// Ramp returns start, start+step, ... up to but excluding stop. Element i
// is computed as start + i*step so values match the usual arange layout.
func Ramp(start, stop, step float64) []float64 {
	if step == 0 || (stop-start)/step <= 0 {
		return nil
	}

	n := int(math.Ceil((stop - start) / step))
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// CoherentSine returns a sine completing exactly cycles periods over length
// samples, so its energy falls on a single FFT bin.
func CoherentSine(cycles int, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * float64(cycles) / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed uint64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Tile returns a matrix of rows copies of row. Each copy has its own
// backing array.
func Tile(row []float64, rows int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = append([]float64(nil), row...)
	}
	return out
}
