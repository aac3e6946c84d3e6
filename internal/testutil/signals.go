package testutil

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// CausalFIR is a reference causal convolution truncated to len(x):
// y[n] = sum_k h[k]*x[n-k], terms with n-k < 0 skipped.
func CausalFIR(h, x []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		for k, c := range h {
			if n-k >= 0 {
				y[n] += c * x[n-k]
			}
		}
	}
	return y
}

// WriteSignalFile writes values as a whitespace-separated text file under
// t.TempDir and returns its path.
func WriteSignalFile(t *testing.T, name string, values []float64) string {
	t.Helper()
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return WriteTextFile(t, name, strings.Join(tokens, " ")+"\n")
}

// WriteTextFile writes content verbatim under t.TempDir and returns its path.
func WriteTextFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
