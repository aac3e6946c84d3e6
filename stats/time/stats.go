// Package time provides time-domain signal statistics and error metrics.
package time

import "math"

// Stats holds a compact time-domain summary of a signal.
type Stats struct {
	Length   int
	DC       float64 // mean
	RMS      float64
	Peak     float64 // max(|max|, |min|)
	Energy   float64 // sum of squares
	Power    float64 // energy / length
	Variance float64
}

// Calculate computes the summary in a single pass. The mean and variance use
// Welford's update.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean  float64
		m2    float64
		sumSq float64
		peak  float64
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	nf := float64(n)
	return Stats{
		Length:   n,
		DC:       mean,
		RMS:      math.Sqrt(sumSq / nf),
		Peak:     peak,
		Energy:   sumSq,
		Power:    sumSq / nf,
		Variance: m2 / nf,
	}
}
