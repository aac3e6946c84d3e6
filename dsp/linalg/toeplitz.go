package linalg

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the solvers.
var (
	ErrDimension = errors.New("linalg: dimension mismatch")
	ErrSingular  = errors.New("linalg: matrix is singular or ill-conditioned")
)

// Toeplitz builds the symmetric Toeplitz matrix R[i][j] = r[|i-j|].
// r must not be empty.
func Toeplitz(r []float64) *mat.SymDense {
	n := len(r)
	t := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			t.SetSym(i, j, r[j-i])
		}
	}
	return t
}

// Rows returns m as a freshly allocated row-major slice of slices.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range r {
		rows[i] = make([]float64, c)
		for j := range c {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
