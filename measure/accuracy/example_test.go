package accuracy_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastsin/measure/accuracy"
)

func ExampleMeasure() {
	r, err := accuracy.Measure(accuracy.DefaultConfig())
	if err != nil {
		panic(err)
	}

	fmt.Printf("max error below 1e-4: %v\n", r.MaxAbsError < 1e-4)

	// Output:
	// max error below 1e-4: true
}
