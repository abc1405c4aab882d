package fastsin_test

import (
	"fmt"
	"math"

	fastsin "github.com/cwbudde/algo-fastsin"
)

func ExampleSin() {
	quarter := float32(math.Pi / 2)

	fmt.Printf("%.3f %.3f %.3f\n",
		fastsin.Sin(0),
		fastsin.Sin(quarter),
		fastsin.Sin(-quarter),
	)

	// Output:
	// 0.000 1.000 -1.000
}
