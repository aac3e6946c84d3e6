// Package fir applies short FIR filters in direct form.
//
// A [Filter] keeps a circular delay line that starts out all zero, so the
// first outputs only see the samples received so far:
//
//	y[n] = sum_{k=0}^{M-1} w[k] * x[n-k],   x[n-k] = 0 for n-k < 0
//
// [Apply] is the one-shot form used after coefficient design: it filters a
// whole signal and returns an output of the same length.
package fir
