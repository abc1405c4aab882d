package accuracy

import (
	"math"
	"testing"
)

func TestMeasureDefaultWithinDesignBound(t *testing.T) {
	r, err := Measure(DefaultConfig())
	if err != nil {
		t.Fatalf("Measure error: %v", err)
	}

	if r.MaxAbsError > 1e-4 {
		t.Fatalf("MaxAbsError = %v at x=%v, want <= 1e-4", r.MaxAbsError, r.MaxErrorAt)
	}
	if r.RMSError > r.MaxAbsError {
		t.Fatalf("RMSError %v exceeds MaxAbsError %v", r.RMSError, r.MaxAbsError)
	}
	if r.MeanAbsError > r.MaxAbsError {
		t.Fatalf("MeanAbsError %v exceeds MaxAbsError %v", r.MeanAbsError, r.MaxAbsError)
	}
	if r.P99AbsError > r.MaxAbsError {
		t.Fatalf("P99AbsError %v exceeds MaxAbsError %v", r.P99AbsError, r.MaxAbsError)
	}
}

func TestMeasureSinglePeriod(t *testing.T) {
	r, err := Measure(Config{Start: 0, End: 2 * math.Pi, Samples: 8192})
	if err != nil {
		t.Fatalf("Measure error: %v", err)
	}

	if r.MaxAbsError > 1e-4 {
		t.Fatalf("MaxAbsError = %v, want <= 1e-4", r.MaxAbsError)
	}
	if r.MaxAbsError <= 0 {
		t.Fatalf("MaxAbsError = %v, want > 0 for an approximation", r.MaxAbsError)
	}
}

func TestErrorsLengthAndRange(t *testing.T) {
	cfg := Config{Start: -math.Pi, End: math.Pi, Samples: 1024}

	errs, err := Errors(cfg)
	if err != nil {
		t.Fatalf("Errors error: %v", err)
	}
	if len(errs) != cfg.Samples {
		t.Fatalf("len = %d, want %d", len(errs), cfg.Samples)
	}
	for i, e := range errs {
		if e < 0 || math.IsNaN(e) || math.IsInf(e, 0) {
			t.Fatalf("errs[%d] = %v, want finite non-negative", i, e)
		}
	}
}

func TestMeasureInvalidConfig(t *testing.T) {
	for _, tc := range []struct {
		name string
		cfg  Config
	}{
		{name: "too_few_samples", cfg: Config{Start: 0, End: 1, Samples: 1}},
		{name: "empty_range", cfg: Config{Start: 1, End: 1, Samples: 16}},
		{name: "inverted_range", cfg: Config{Start: 2, End: 1, Samples: 16}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Measure(tc.cfg); err == nil {
				t.Fatal("expected configuration error")
			}
		})
	}
}
