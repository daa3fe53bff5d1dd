// Package sqnr measures the signal-to-quantization-noise ratio of a
// quantized test tone.
//
// The signal is multiplied by a periodic Hann window and transformed with
// an FFT. A tone placed exactly on a bin then occupies that bin and its two
// neighbours, and every other in-band bin is counted as noise.
package sqnr
