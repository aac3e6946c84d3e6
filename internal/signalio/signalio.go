// Package signalio reads sampled signals from plain-text files.
//
// A signal file is a sequence of decimal numbers separated by any amount of
// whitespace. There is no header and no length prefix.
package signalio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Errors returned by the loader.
var (
	ErrIO    = errors.New("signalio: read failed")
	ErrParse = errors.New("signalio: invalid number")
)

// ParseError reports a token that is not a valid real number.
type ParseError struct {
	Source string // file name, or "" for an anonymous reader
	Index  int    // 0-based position of the token in the stream
	Token  string
	Err    error // underlying strconv error
}

func (e *ParseError) Error() string {
	src := e.Source
	if src == "" {
		src = "input"
	}
	return fmt.Sprintf("signalio: %s: token %d %q is not a number", src, e.Index, e.Token)
}

// Unwrap exposes the strconv error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Load reads the signal stored at path.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return parse(f, path)
}

// Parse reads a signal from r.
func Parse(r io.Reader) ([]float64, error) {
	return parse(r, "")
}

func parse(r io.Reader, source string) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	var out []float64
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			// Out-of-range literals still parse to +-Inf.
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
				return nil, &ParseError{Source: source, Index: len(out), Token: tok, Err: err}
			}
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		if source != "" {
			return nil, fmt.Errorf("%w: %s: %w", ErrIO, source, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if out == nil {
		out = []float64{}
	}
	return out, nil
}
