// Package wiener designs and applies short FIR Wiener filters.
//
// Given an input signal x and a desired signal d of the same length N, the
// design step estimates the first M lags of the autocorrelation of x and of
// the cross-correlation of d with x (each lag divided by the number of terms
// summed, N-k), assembles the symmetric Toeplitz matrix R[i][j] = Rxx[|i-j|]
// and solves the normal equations R*w = Rdx. The coefficients are then
// applied causally to x and the result is scored against d:
//
//	res, err := wiener.Estimate(x, d)             // order 2, dense solve
//	res, err := wiener.Estimate(x, d,
//		wiener.WithOrder(8),
//		wiener.WithSolver(wiener.SolverLevinson))
//
// Mismatched lengths, N < M and M < 1 fail with [ErrDimension]; a singular
// correlation matrix (for example a constant or all-zero input) fails with
// [ErrSingularMatrix]. No regularization is attempted.
package wiener
