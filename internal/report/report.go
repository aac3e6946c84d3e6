// Package report renders Wiener filter results as text.
//
// Rounding happens here and nowhere else: the numeric pipeline keeps full
// precision and only the printed values are rounded.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-wiener/dsp/filter/fir"
	"github.com/cwbudde/algo-wiener/dsp/filter/wiener"
)

// DisplayPlaces is the number of decimals used for the filtered output and
// the MMSE.
const DisplayPlaces = 1

// Separator frames the verification block.
var Separator = strings.Repeat("-", 30)

// FormatRounded formats v rounded to DisplayPlaces decimals, see [Round].
// The rounded value is printed as its shortest decimal form with at least one
// fractional digit; magnitudes of 1e16 and above switch to exponent form
// ("1e+16").
func FormatRounded(v float64) string {
	return formatShortest(Round(v, DisplayPlaces))
}

// Round scales v by 10^places, rounds half to even to an integer and scales
// back. Ties are decided on the scaled value, so 0.35 rounds to 0.4 and 0.45
// to 0.4 even though neither is exactly representable.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(v*scale) / scale
}

func formatShortest(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatCoefficients renders coefficients at full precision as "[w0 w1 ...]".
func FormatCoefficients(w []float64) string {
	parts := make([]string, len(w))
	for i, c := range w {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FormatSequence renders values rounded for display, space separated.
func FormatSequence(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatRounded(v)
	}
	return strings.Join(parts, " ")
}

// Write prints the coefficient line followed by the verification block.
func Write(w io.Writer, res *wiener.Result) error {
	lines := []string{
		"Filter Coefficients (w): " + FormatCoefficients(res.Coefficients),
		Separator,
		"VERIFICATION RESULT:",
		"Filtered output: " + FormatSequence(res.Output),
		"MMSE: " + FormatRounded(res.MMSE),
		Separator,
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}
	return nil
}

// WriteResponse prints the magnitude response of coeffs at points evenly
// spaced normalized frequencies from 0 to 0.5 (Nyquist).
func WriteResponse(w io.Writer, coeffs []float64, points int) error {
	if points < 2 {
		points = 2
	}
	f := fir.New(coeffs)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [fs]\tMagnitude [dB]\n----------\t--------------\n"); err != nil {
		return fmt.Errorf("report: write response header: %w", err)
	}
	for i := range points {
		freq := 0.5 * float64(i) / float64(points-1)
		if _, err := fmt.Fprintf(tw, "%.4f\t%.2f\n", freq, f.MagnitudeDB(freq, 1)); err != nil {
			return fmt.Errorf("report: write response row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("report: flush response: %w", err)
	}
	return nil
}
