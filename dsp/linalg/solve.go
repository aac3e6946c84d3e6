package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// conditionLimit is the largest condition number SolveDense accepts.
	conditionLimit = 1e12

	// levinsonTolerance is the smallest normalized prediction-error power the
	// Levinson recursion accepts before declaring the system singular.
	levinsonTolerance = 1e-12
)

// SolveDense solves Toeplitz(r) * w = rhs with a general LU factorization.
func SolveDense(r, rhs []float64) ([]float64, error) {
	if err := checkSystem(r, rhs); err != nil {
		return nil, err
	}

	var lu mat.LU
	lu.Factorize(Toeplitz(r))
	if cond := lu.Cond(); !(cond <= conditionLimit) {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingular, cond)
	}

	var w mat.VecDense
	if err := lu.SolveVecTo(&w, false, mat.NewVecDense(len(rhs), append([]float64(nil), rhs...))); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingular, err)
	}

	out := make([]float64, w.Len())
	for i := range out {
		out[i] = w.AtVec(i)
	}
	if !allFinite(out) {
		return nil, fmt.Errorf("%w: non-finite solution", ErrSingular)
	}
	return out, nil
}

// SolveLevinson solves Toeplitz(r) * w = rhs using the Levinson recursion
// for symmetric Toeplitz systems with a general right-hand side.
func SolveLevinson(r, rhs []float64) ([]float64, error) {
	if err := checkSystem(r, rhs); err != nil {
		return nil, err
	}

	n := len(r)
	r0 := r[0]
	if r0 == 0 {
		return nil, fmt.Errorf("%w: zero-lag term is zero", ErrSingular)
	}

	// Work on the unit-diagonal system.
	t := make([]float64, n)
	b := make([]float64, n)
	for i := range n {
		t[i] = r[i] / r0
		b[i] = rhs[i] / r0
	}

	x := make([]float64, n) // solution of the leading k x k system
	y := make([]float64, n) // Yule-Walker (forward predictor) solution
	tmp := make([]float64, n)

	x[0] = b[0]
	if n == 1 {
		return x, nil
	}

	y[0] = -t[1]
	alpha := y[0]
	beta := 1.0

	for k := 1; k < n; k++ {
		beta *= 1 - alpha*alpha
		if !(beta > levinsonTolerance) {
			return nil, fmt.Errorf("%w: prediction error %g at step %d", ErrSingular, beta, k)
		}

		mu := b[k]
		for i := range k {
			mu -= t[i+1] * x[k-1-i]
		}
		mu /= beta

		for i := range k {
			tmp[i] = x[i] + mu*y[k-1-i]
		}
		copy(x[:k], tmp[:k])
		x[k] = mu

		if k == n-1 {
			break
		}

		alpha = -t[k+1]
		for i := range k {
			alpha -= t[i+1] * y[k-1-i]
		}
		alpha /= beta

		for i := range k {
			tmp[i] = y[i] + alpha*y[k-1-i]
		}
		copy(y[:k], tmp[:k])
		y[k] = alpha
	}

	if !allFinite(x) {
		return nil, fmt.Errorf("%w: non-finite solution", ErrSingular)
	}
	return x, nil
}

func checkSystem(r, rhs []float64) error {
	if len(r) == 0 {
		return fmt.Errorf("%w: empty system", ErrDimension)
	}
	if len(r) != len(rhs) {
		return fmt.Errorf("%w: %d lags vs %d right-hand side values", ErrDimension, len(r), len(rhs))
	}
	if !allFinite(r) || !allFinite(rhs) {
		return fmt.Errorf("%w: non-finite coefficients", ErrSingular)
	}
	return nil
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
