package osc_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fastsin/osc"
)

func ExampleOscillator_Fill() {
	g, err := osc.New(250, osc.WithSampleRate(1000))
	if err != nil {
		panic(err)
	}

	x := make([]float64, 5)
	g.Fill(x)
	for i, v := range x {
		if math.Abs(v) < 1e-5 {
			x[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}
