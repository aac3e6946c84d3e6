// Package conv provides the correlation estimators used for Wiener filter
// design.
//
// # Full correlation
//
// [CorrelateFFT] returns the cross-correlation over all lags, computed
// through the FFT. Use [IndexFromLag] to pick a lag out of the result:
//
//	corr, err := conv.CorrelateFFT(signal, template)
//	r0 := corr[conv.IndexFromLag(0, len(template))]
//
// # Lag-limited estimators
//
// [CorrelateBiased] estimates the first few lags of the cross-correlation
// between two equal-length signals, dividing each lag sum by the number of
// terms that contributed to it:
//
//	r[k] = 1/(N-k) * sum_{n=k}^{N-1} a[n]*b[n-k],   k = 0..lags-1
//
// Passing the same slice twice gives the autocorrelation. [CorrelateBiasedFFT]
// computes the same estimate from the FFT cross-correlation, which pays off
// once the signals get long.
package conv
