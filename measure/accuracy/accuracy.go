// Package accuracy profiles the error of the fastsin approximation
// against the double-precision math.Sin reference.
//
// The sweep is uniform over a configurable input range; results aggregate
// the absolute per-sample error into the usual summary statistics. The
// expected worst case for the 256-sample cubic table is a few 1e-6, well
// inside the 1e-4 design bound.
package accuracy

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	fastsin "github.com/cwbudde/algo-fastsin"
)

// Config defines the input sweep for an error measurement.
type Config struct {
	Start   float64 // sweep start in radians
	End     float64 // sweep end in radians
	Samples int     // number of evaluation points, must be >= 2
}

// DefaultConfig covers four full periods centered on zero at a density
// fine enough to hit every table slot many times.
func DefaultConfig() Config {
	return Config{
		Start:   -4 * math.Pi,
		End:     4 * math.Pi,
		Samples: 1 << 16,
	}
}

// Result holds aggregated error statistics for one sweep.
type Result struct {
	MaxAbsError  float64 // worst absolute error in the sweep
	MaxErrorAt   float64 // input producing the worst error
	MeanAbsError float64
	RMSError     float64
	P99AbsError  float64 // 99th percentile of absolute error
	StdDev       float64
}

// Measure sweeps fastsin.Sin against math.Sin and aggregates the error.
func Measure(cfg Config) (Result, error) {
	errs, xs, err := sweep(cfg)
	if err != nil {
		return Result{}, err
	}

	maxErr, err := stats.Max(errs)
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: max: %w", err)
	}

	meanErr, err := stats.Mean(errs)
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: mean: %w", err)
	}

	p99, err := stats.Percentile(errs, 99)
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: percentile: %w", err)
	}

	stdDev, err := stats.StandardDeviation(errs)
	if err != nil {
		return Result{}, fmt.Errorf("accuracy: stddev: %w", err)
	}

	sumSq := 0.0
	maxAt := 0.0
	for i, e := range errs {
		sumSq += e * e
		if e == maxErr {
			maxAt = xs[i]
		}
	}

	return Result{
		MaxAbsError:  maxErr,
		MaxErrorAt:   maxAt,
		MeanAbsError: meanErr,
		RMSError:     math.Sqrt(sumSq / float64(len(errs))),
		P99AbsError:  p99,
		StdDev:       stdDev,
	}, nil
}

// Errors returns the raw absolute error at each sweep point, in sweep order.
func Errors(cfg Config) ([]float64, error) {
	errs, _, err := sweep(cfg)
	return errs, err
}

func sweep(cfg Config) (errs, xs []float64, err error) {
	if cfg.Samples < 2 {
		return nil, nil, fmt.Errorf("accuracy samples must be >= 2: %d", cfg.Samples)
	}
	if !(cfg.End > cfg.Start) {
		return nil, nil, fmt.Errorf("accuracy sweep end must be > start: [%f, %f]", cfg.Start, cfg.End)
	}

	errs = make([]float64, cfg.Samples)
	xs = make([]float64, cfg.Samples)

	step := (cfg.End - cfg.Start) / float64(cfg.Samples-1)
	for i := range errs {
		x := float32(cfg.Start + float64(i)*step)
		xs[i] = float64(x)
		errs[i] = math.Abs(float64(fastsin.Sin(x)) - math.Sin(float64(x)))
	}

	return errs, xs, nil
}
