// Package linalg solves the small symmetric Toeplitz systems that arise from
// normal-equation filter design.
//
// [Toeplitz] expands a lag sequence r into the matrix R[i][j] = r[|i-j|].
// Two solvers are offered for R*w = b:
//
//   - [SolveDense]: general LU solve (gonum/mat). O(M^3), the reference path.
//   - [SolveLevinson]: Levinson recursion exploiting the Toeplitz structure.
//     O(M^2) and numerically equivalent on well-conditioned systems.
//
// Both fail with [ErrSingular] instead of returning meaningless
// coefficients. Neither regularizes.
package linalg
