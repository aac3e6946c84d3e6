package signalio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wiener/internal/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"spaces", "1 2 3", []float64{1, 2, 3}},
		{"mixed whitespace", " 1.5\t-2\n\n3e2 \r\n+0.25\n", []float64{1.5, -2, 300, 0.25}},
		{"integers and floats", "4 4.0 .5 -0", []float64{4, 4, 0.5, 0}},
		{"empty", "", []float64{}},
		{"whitespace only", " \n\t ", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpecialValues(t *testing.T) {
	got, err := Parse(strings.NewReader("inf -Infinity nan 1e400"))
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[1], -1))
	assert.True(t, math.IsNaN(got[2]))
	assert.True(t, math.IsInf(got[3], 1))
}

func TestParseError(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 abc 4"))
	require.ErrorIs(t, err, ErrParse)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Index)
	assert.Equal(t, "abc", pe.Token)
	assert.Contains(t, err.Error(), `token 2 "abc"`)
	assert.Contains(t, err.Error(), "input")
}

func TestParseRejectsCommaSeparated(t *testing.T) {
	_, err := Parse(strings.NewReader("1,2,3"))
	require.ErrorIs(t, err, ErrParse)
}

func TestLoad(t *testing.T) {
	path := testutil.WriteSignalFile(t, "x.txt", []float64{1, -0.5, 2.25})

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -0.5, 2.25}, got)
}

func TestLoadParseErrorNamesFile(t *testing.T) {
	path := testutil.WriteTextFile(t, "bad.txt", "1.0\n2.0\nthree\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrParse)
	assert.NotErrorIs(t, err, ErrIO)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, path, pe.Source)
	assert.Contains(t, err.Error(), path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrIO)
}
