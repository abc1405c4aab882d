// Command sininfo prints accuracy and spectral purity figures for the
// table-based sine approximation.
//
// Usage:
//
//	sininfo [flags]
//
// Without flags it prints the error profile over the default sweep.
//
// Examples:
//
//	sininfo
//	sininfo -periods 16 -samples 262144
//	sininfo -purity -rate 48000 -fft 4096 -freq 1500
//	sininfo -plot
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/cwbudde/algo-fastsin/measure/accuracy"
	"github.com/cwbudde/algo-fastsin/measure/purity"
)

func main() {
	periods := flag.Int("periods", 8, "number of full periods to sweep, centered on zero")
	samples := flag.Int("samples", 1<<16, "number of evaluation points in the sweep")
	plot := flag.Bool("plot", false, "plot the error curve over one period")
	showPurity := flag.Bool("purity", false, "measure spectral purity of a generated tone")
	rate := flag.Float64("rate", 48000, "purity: sample rate in Hz")
	fftSize := flag.Int("fft", 4096, "purity: FFT size, power of two")
	freq := flag.Float64("freq", 1500, "purity: tone frequency in Hz")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sininfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints accuracy and purity figures for the fast sine approximation.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sininfo -periods 16\n")
		fmt.Fprintf(os.Stderr, "  sininfo -purity -freq 997\n")
		fmt.Fprintf(os.Stderr, "  sininfo -plot\n")
	}
	flag.Parse()

	half := float64(*periods) * math.Pi
	cfg := accuracy.Config{Start: -half, End: half, Samples: *samples}

	r, err := accuracy.Measure(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printAccuracy(cfg, r)

	if *showPurity {
		p, err := purity.Measure(purity.Config{
			SampleRate: *rate,
			FFTSize:    *fftSize,
			Frequency:  *freq,
			WindowType: purity.DefaultConfig().WindowType,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printPurity(p)
	}

	if *plot {
		if err := printErrorPlot(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printAccuracy(cfg accuracy.Config, r accuracy.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Metric\tValue\tdB\n")
	fmt.Fprintf(tw, "------\t-----\t--\n")
	fmt.Fprintf(tw, "max abs error\t%.3e\t%.1f\n", r.MaxAbsError, ampTodB(r.MaxAbsError))
	fmt.Fprintf(tw, "rms error\t%.3e\t%.1f\n", r.RMSError, ampTodB(r.RMSError))
	fmt.Fprintf(tw, "mean abs error\t%.3e\t%.1f\n", r.MeanAbsError, ampTodB(r.MeanAbsError))
	fmt.Fprintf(tw, "p99 abs error\t%.3e\t%.1f\n", r.P99AbsError, ampTodB(r.P99AbsError))
	fmt.Fprintf(tw, "worst input\t%.6f rad\t\n", r.MaxErrorAt)
	fmt.Fprintf(tw, "sweep\t[%.2f, %.2f] x %d\t\n", cfg.Start, cfg.End, cfg.Samples)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printPurity(p purity.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Purity\tValue\n")
	fmt.Fprintf(tw, "------\t-----\n")
	fmt.Fprintf(tw, "fundamental\t%.1f Hz\n", p.FundamentalFreq)
	fmt.Fprintf(tw, "THD\t%.3e\n", p.THD)
	fmt.Fprintf(tw, "THD+N\t%.3e\n", p.THDN)
	fmt.Fprintf(tw, "SINAD\t%.1f dB\n", p.SINAD_dB)
	fmt.Fprintf(tw, "SFDR\t%.1f dB\n", p.SFDR_dB)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printErrorPlot() error {
	errs, err := accuracy.Errors(accuracy.Config{Start: 0, End: 2 * math.Pi, Samples: 160})
	if err != nil {
		return err
	}

	// Plot in micro-units so the axis labels stay readable.
	scaled := make([]float64, len(errs))
	for i, e := range errs {
		scaled[i] = e * 1e6
	}

	graph := asciigraph.Plot(scaled,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("abs error over one period (1e-6 units)"),
	)
	fmt.Println(graph)

	return nil
}

func ampTodB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
