package testutil

import "math"

// ReferenceSine generates a sine wave through math.Sin, used as the
// high-precision reference against table-based approximations.
func ReferenceSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}
