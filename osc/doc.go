// Package osc provides a block-based sine tone generator built on the
// fastsin table approximation.
//
// The oscillator accumulates phase in float64 and folds it back into one
// period after every sample, so long-running streams do not drift from
// accumulated rounding. Each sample costs one fastsin.Sin call; no
// transcendental functions run in the fill loop.
//
// # Usage
//
//	g, err := osc.New(1000, osc.WithSampleRate(48000), osc.WithAmplitude(0.5))
//	if err != nil {
//	    // invalid configuration
//	}
//	block := make([]float64, 1024)
//	g.Fill(block)
package osc
