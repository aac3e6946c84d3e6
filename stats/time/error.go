package time

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by the error metrics.
var (
	ErrEmptyInput     = errors.New("stats: empty input")
	ErrLengthMismatch = errors.New("stats: length mismatch")
)

// ErrorEnergy returns sum_n (ref[n]-est[n])^2.
func ErrorEnergy(ref, est []float64) (float64, error) {
	if len(ref) == 0 {
		return 0, ErrEmptyInput
	}
	if len(ref) != len(est) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(ref), len(est))
	}

	diff := make([]float64, len(ref))
	floats.SubTo(diff, ref, est)
	vecmath.MulBlockInPlace(diff, diff)

	return floats.Sum(diff), nil
}

// MSE returns the mean squared error (1/N) * sum_n (ref[n]-est[n])^2.
func MSE(ref, est []float64) (float64, error) {
	energy, err := ErrorEnergy(ref, est)
	if err != nil {
		return 0, err
	}
	return energy / float64(len(ref)), nil
}
