package osc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	fastsin "github.com/cwbudde/algo-fastsin"
)

const twoPi = 2 * math.Pi

// Oscillator generates a sine tone sample by sample or in blocks.
// It is not safe for concurrent use; each stream needs its own instance.
type Oscillator struct {
	freqHz     float64
	sampleRate float64
	amplitude  float64
	startPhase float64 // initial phase as a period fraction in [0, 1)
	phase      float64 // current phase as a period fraction in [0, 1)
}

// Option configures an Oscillator.
type Option func(*Oscillator)

// WithSampleRate sets the sample rate in Hz. Default is 48000.
func WithSampleRate(sampleRate float64) Option {
	return func(o *Oscillator) {
		o.sampleRate = sampleRate
	}
}

// WithAmplitude sets the peak amplitude. Default is 1.
func WithAmplitude(amplitude float64) Option {
	return func(o *Oscillator) {
		o.amplitude = amplitude
	}
}

// WithPhase sets the initial phase in radians. Default is 0.
func WithPhase(radians float64) Option {
	return func(o *Oscillator) {
		frac := radians / twoPi
		o.startPhase = frac - math.Floor(frac)
	}
}

// New creates an oscillator for the given frequency in Hz.
func New(freqHz float64, opts ...Option) (*Oscillator, error) {
	o := &Oscillator{
		freqHz:     freqHz,
		sampleRate: 48000,
		amplitude:  1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	if o.freqHz <= 0 {
		return nil, fmt.Errorf("osc frequency must be > 0: %f", o.freqHz)
	}
	if o.sampleRate <= 0 {
		return nil, fmt.Errorf("osc sample rate must be > 0: %f", o.sampleRate)
	}
	if o.freqHz >= o.sampleRate/2 {
		return nil, fmt.Errorf("osc frequency %f exceeds Nyquist for sample rate %f", o.freqHz, o.sampleRate)
	}
	if o.amplitude < 0 {
		return nil, fmt.Errorf("osc amplitude must be >= 0: %f", o.amplitude)
	}

	o.phase = o.startPhase

	return o, nil
}

// Next returns the next sample and advances the phase by one sample period.
func (o *Oscillator) Next() float32 {
	y := o.amplitude * float64(fastsin.Sin(float32(o.phase*twoPi)))
	o.advance()
	return float32(y)
}

// Fill writes successive samples into dst.
//
// The unit-amplitude tone is rendered first and the amplitude applied as a
// single vectorized scale over the block.
func (o *Oscillator) Fill(dst []float64) {
	for i := range dst {
		dst[i] = float64(fastsin.Sin(float32(o.phase * twoPi)))
		o.advance()
	}

	vecmath.ScaleBlock(dst, dst, o.amplitude)
}

// Fill32 writes successive samples into dst without the float64 round trip.
func (o *Oscillator) Fill32(dst []float32) {
	amp := float32(o.amplitude)
	for i := range dst {
		dst[i] = amp * fastsin.Sin(float32(o.phase*twoPi))
		o.advance()
	}
}

// Reset returns the oscillator to its configured start phase.
func (o *Oscillator) Reset() {
	o.phase = o.startPhase
}

// Phase returns the current phase in radians, in [0, 2*pi).
func (o *Oscillator) Phase() float64 {
	return o.phase * twoPi
}

func (o *Oscillator) advance() {
	o.phase += o.freqHz / o.sampleRate
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
}
