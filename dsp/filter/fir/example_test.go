package fir_test

import (
	"fmt"

	"github.com/cwbudde/algo-wiener/dsp/filter/fir"
)

func ExampleApply() {
	// Two-tap filter: y[n] = 0.5*x[n] + 0.25*x[n-1].
	y := fir.Apply([]float64{0.5, 0.25}, []float64{4, 8, 0, 2})
	fmt.Println(y)
	// Output:
	// [2 5 2 1]
}

func ExampleFilter_ProcessSample() {
	f := fir.New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})

	for i, x := range []float64{0, 1, 2, 3} {
		fmt.Printf("y[%d] = %.4f\n", i, f.ProcessSample(x))
	}
	// Output:
	// y[0] = 0.0000
	// y[1] = 0.3333
	// y[2] = 1.0000
	// y[3] = 2.0000
}
