// Package purity verifies the fastsin approximation in the frequency
// domain: a table-generated tone is windowed, transformed and checked for
// harmonic distortion and spurious components.
//
// A clean approximation shows up as a single spectral line; interpolation
// error and table quantization appear as harmonics and a raised noise
// floor, which the THD, SINAD and SFDR figures quantify.
package purity

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-dsp/measure/thd"

	"github.com/cwbudde/algo-fastsin/osc"
)

// spurGuardBins is the half-width around the fundamental excluded from the
// spur search; it covers the main lobe and near sidelobes of the analysis
// window.
const spurGuardBins = 16

// Config holds spectral purity measurement parameters.
type Config struct {
	SampleRate float64 // sample rate in Hz
	FFTSize    int     // analysis length in samples, power of two
	Frequency  float64 // tone frequency in Hz, below Nyquist
	WindowType window.Type
}

// DefaultConfig analyzes a bin-centered 1.5 kHz tone at 48 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		FFTSize:    4096,
		Frequency:  1500,
		WindowType: window.TypeBlackmanHarris4Term,
	}
}

// Result holds spectral purity metrics for the generated tone.
//
//nolint:revive
type Result struct {
	FundamentalFreq float64 // detected fundamental in Hz
	THD             float64 // total harmonic distortion, linear ratio
	THDN            float64 // THD plus noise, linear ratio
	SINAD_dB        float64 // signal to noise-and-distortion, dB
	SFDR_dB         float64 // spurious-free dynamic range, dB
}

// Measure renders a tone through the table oscillator and analyzes it.
func Measure(cfg Config) (Result, error) {
	if err := validate(cfg); err != nil {
		return Result{}, err
	}

	if cfg.WindowType == 0 {
		cfg.WindowType = window.TypeHann
	}

	g, err := osc.New(cfg.Frequency, osc.WithSampleRate(cfg.SampleRate))
	if err != nil {
		return Result{}, fmt.Errorf("purity: %w", err)
	}

	tone := make([]float64, cfg.FFTSize)
	g.Fill(tone)

	thdRes := thd.AnalyzeSignal(tone, thd.Config{
		SampleRate:      cfg.SampleRate,
		FFTSize:         cfg.FFTSize,
		FundamentalFreq: cfg.Frequency,
		WindowType:      cfg.WindowType,
	})

	sfdr, err := measureSFDR(tone, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{
		FundamentalFreq: thdRes.FundamentalFreq,
		THD:             thdRes.THD,
		THDN:            thdRes.THDN,
		SINAD_dB:        thdRes.SINAD,
		SFDR_dB:         sfdr,
	}, nil
}

// measureSFDR compares the fundamental peak against the strongest spectral
// component outside its guard region.
func measureSFDR(tone []float64, cfg Config) (float64, error) {
	coeffs := window.Generate(cfg.WindowType, len(tone))

	windowed, err := window.ApplyCoefficients(tone, coeffs)
	if err != nil {
		return 0, fmt.Errorf("purity: window: %w", err)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return 0, fmt.Errorf("purity: fft plan: %w", err)
	}

	in := make([]complex128, cfg.FFTSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, cfg.FFTSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("purity: forward FFT: %w", err)
	}

	mag := spectrum.Magnitude(out[:cfg.FFTSize/2+1])

	peakBin := 1
	for i := 2; i < len(mag); i++ {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}

	spur := 0.0
	for i := 1; i < len(mag); i++ {
		if i >= peakBin-spurGuardBins && i <= peakBin+spurGuardBins {
			continue
		}
		if mag[i] > spur {
			spur = mag[i]
		}
	}

	if spur <= 0 {
		return math.Inf(1), nil
	}

	return 20 * math.Log10(mag[peakBin]/spur), nil
}

func validate(cfg Config) error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("purity sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.FFTSize < 64 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return fmt.Errorf("purity FFT size must be a power of two >= 64: %d", cfg.FFTSize)
	}
	if cfg.Frequency <= 0 || cfg.Frequency >= cfg.SampleRate/2 {
		return fmt.Errorf("purity frequency must be in (0, Nyquist): %f", cfg.Frequency)
	}
	return nil
}
