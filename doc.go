// Package fastsin provides a fast approximation of the trigonometric sine
// function for single-precision values, using a 256-sample lookup table
// with cubic 4-point interpolation instead of a transcendental call.
//
// The approximation trades a small, bounded amount of accuracy for speed,
// making it suitable for real-time audio and signal-processing loops where
// math.Sin is too expensive. For applications requiring IEEE 754 precision,
// use the standard library math package instead.
//
// # Accuracy Characteristics
//
// The table holds one full period at 256 samples plus guard samples for the
// interpolation window. Cubic interpolation keeps the absolute error below
// 1e-4 over all inputs of moderate magnitude; in practice the error is
// dominated by float32 rounding rather than by the interpolation itself.
//
// Inputs of very large magnitude lose precision in the period normalization
// x * (1/2pi), an inherent limitation of single-precision folding.
//
// # Usage
//
//	y := fastsin.Sin(x) // x in radians, y approximates sin(x)
//
// Sin is stateless and allocation-free; any number of goroutines may call
// it concurrently. The osc package builds a block-based tone generator on
// top of it, and the measure packages quantify its time-domain error and
// spectral purity.
package fastsin
