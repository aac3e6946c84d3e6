package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wiener/dsp/filter/wiener"
	"github.com/cwbudde/algo-wiener/internal/config"
	"github.com/cwbudde/algo-wiener/internal/signalio"
	"github.com/cwbudde/algo-wiener/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := log.GetLevel()
	t.Cleanup(func() {
		log.SetLevel(prev)
		log.SetOutput(os.Stderr)
	})

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSolve(t *testing.T) {
	x := testutil.WriteSignalFile(t, "input.txt", []float64{1, 2, 3, 4})
	d := testutil.WriteSignalFile(t, "desired.txt", []float64{2, 0, 1, 3})

	stdout, _, err := execute(t, "solve", x, d)
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "Filter Coefficients (w): [0.629411764705882"), lines[0])
	assert.Equal(t, strings.Repeat("-", 30), lines[1])
	assert.Equal(t, "VERIFICATION RESULT:", lines[2])
	assert.Equal(t, "Filtered output: 0.6 1.2 1.7 2.3", lines[3])
	assert.Equal(t, "MMSE: 1.1", lines[4])
	assert.Equal(t, strings.Repeat("-", 30), lines[5])
	assert.Equal(t, "", lines[6])
}

func TestSolveIsIdempotent(t *testing.T) {
	x := testutil.WriteSignalFile(t, "input.txt", testutil.DeterministicNoise(1, 1, 50))
	d := testutil.WriteSignalFile(t, "desired.txt", testutil.DeterministicNoise(2, 1, 50))

	first, _, err := execute(t, "solve", x, d)
	require.NoError(t, err)
	second, _, err := execute(t, "solve", x, d)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolveFlagsAndResponse(t *testing.T) {
	x := testutil.WriteSignalFile(t, "input.txt", []float64{1, 2, 3, 4, 5, 6})
	d := testutil.WriteSignalFile(t, "desired.txt", []float64{0, 1, 0, 2, 0, 1})

	stdout, _, err := execute(t, "solve", "--order", "3", "--solver", "levinson",
		"--correlation", "fft", "--response", "5", x, d)
	require.NoError(t, err)

	assert.Contains(t, stdout, "VERIFICATION RESULT:")
	assert.Contains(t, stdout, "Magnitude [dB]")
	coeffLine := strings.SplitN(stdout, "\n", 2)[0]
	assert.Len(t, strings.Fields(strings.Trim(strings.TrimPrefix(coeffLine, "Filter Coefficients (w): "), "[]")), 3)
}

func TestSolveErrors(t *testing.T) {
	good := testutil.WriteSignalFile(t, "good.txt", []float64{1, 2, 3, 4, 5})
	short := testutil.WriteSignalFile(t, "short.txt", []float64{1, 2, 3})
	ones := testutil.WriteSignalFile(t, "ones.txt", []float64{1, 1, 1, 1})
	bad := testutil.WriteTextFile(t, "bad.txt", "1 two 3")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"length mismatch", []string{"solve", good, short}, wiener.ErrDimension},
		{"singular", []string{"solve", ones, ones}, wiener.ErrSingularMatrix},
		{"parse", []string{"solve", bad, good}, signalio.ErrParse},
		{"io", []string{"solve", good, good + ".missing"}, signalio.ErrIO},
		{"bad order", []string{"solve", "--order", "0", good, good}, config.ErrInvalid},
		{"bad solver", []string{"solve", "--solver", "qr", good, good}, config.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestSolveRequiresTwoArgs(t *testing.T) {
	_, _, err := execute(t, "solve", "only-one.txt")
	require.Error(t, err)
}

func TestSolveConfigFile(t *testing.T) {
	x := testutil.WriteSignalFile(t, "input.txt", []float64{1, 2, 3, 4, 5})
	d := testutil.WriteSignalFile(t, "desired.txt", []float64{1, 0, 2, 0, 1})
	cfgPath := testutil.WriteTextFile(t, "wiener.yaml", "order: 3\nlog_level: info\n")

	stdout, stderr, err := execute(t, "solve", "--config", cfgPath, x, d)
	require.NoError(t, err)
	assert.Contains(t, stdout, "MMSE:")
	assert.Contains(t, stderr, "WIENER: FILTER ESTIMATED")
	assert.Contains(t, stderr, "order=3")

	// A flag overrides the file.
	_, stderr, err = execute(t, "solve", "--config", cfgPath, "--order", "2", x, d)
	require.NoError(t, err)
	assert.Contains(t, stderr, "order=2")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "wiener v0.1.0 (dev)\n", stdout)
}
