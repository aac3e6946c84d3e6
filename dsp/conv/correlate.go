package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// CorrelateFFT computes the full cross-correlation of a and b using the FFT.
// The result has length len(a) + len(b) - 1. Output index i corresponds to lag
// i - (len(b) - 1), so that the value at lag L is sum_n a[n]*b[n-L].
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	// IFFT(FFT(a) * conj(FFT(b)))
	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i := 0; i < n; i++ {
		aPadded[i] = complex(a[i], 0)
	}
	for i := 0; i < m; i++ {
		bPadded[i] = complex(b[i], 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	resultFreq := make([]complex128, fftSize)
	for i := range resultFreq {
		bConj := complex(real(bFreq[i]), -imag(bFreq[i]))
		resultFreq[i] = aFreq[i] * bConj
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, resultFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Circular result: non-negative lags at the front, negative lags wrap
	// around to the end.
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(resultTime[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(resultTime[fftSize-m+1+i])
	}

	return result, nil
}

// CorrelateBiased estimates the cross-correlation of a and b at lags
// 0..lags-1:
//
//	r[k] = 1/(N-k) * sum_{n=k}^{N-1} a[n]*b[n-k]
//
// a and b must have the same length N and 1 <= lags <= N.
func CorrelateBiased(a, b []float64, lags int) ([]float64, error) {
	if err := checkLagInputs(a, b, lags); err != nil {
		return nil, err
	}

	n := len(a)
	r := make([]float64, lags)
	prod := make([]float64, n)
	for k := range lags {
		terms := n - k
		vecmath.MulBlock(prod[:terms], a[k:], b[:terms])
		r[k] = floats.Sum(prod[:terms]) / float64(terms)
	}

	return r, nil
}

// CorrelateBiasedFFT computes the same estimate as [CorrelateBiased] from the
// FFT cross-correlation. Results agree to within floating-point rounding.
func CorrelateBiasedFFT(a, b []float64, lags int) ([]float64, error) {
	if err := checkLagInputs(a, b, lags); err != nil {
		return nil, err
	}

	full, err := CorrelateFFT(a, b)
	if err != nil {
		return nil, err
	}

	n := len(a)
	r := make([]float64, lags)
	for k := range lags {
		r[k] = full[IndexFromLag(k, len(b))] / float64(n-k)
	}

	return r, nil
}

func checkLagInputs(a, b []float64, lags int) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	if lags < 1 || lags > len(a) {
		return fmt.Errorf("%w: %d lags for %d samples", ErrInvalidLag, lags, len(a))
	}
	return nil
}

// IndexFromLag converts a lag value to a correlation result index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}
