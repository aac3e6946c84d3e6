package wiener

import (
	"fmt"
	"strings"
)

// DefaultOrder is the number of filter taps used when no order is given.
const DefaultOrder = 2

// CorrelationMethod selects how the lag correlations are computed.
type CorrelationMethod int

const (
	// CorrelationDirect sums lag products in the time domain.
	CorrelationDirect CorrelationMethod = iota
	// CorrelationFFT derives the lags from an FFT cross-correlation.
	CorrelationFFT
)

func (m CorrelationMethod) String() string {
	switch m {
	case CorrelationDirect:
		return "direct"
	case CorrelationFFT:
		return "fft"
	default:
		return fmt.Sprintf("CorrelationMethod(%d)", int(m))
	}
}

// ParseCorrelationMethod parses "direct" or "fft" (case-insensitive).
func ParseCorrelationMethod(s string) (CorrelationMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct":
		return CorrelationDirect, nil
	case "fft":
		return CorrelationFFT, nil
	}
	return 0, fmt.Errorf("%w: unknown correlation method %q", ErrInvalidConfig, s)
}

// SolverMethod selects the normal-equations solver.
type SolverMethod int

const (
	// SolverDense uses a general LU solve.
	SolverDense SolverMethod = iota
	// SolverLevinson uses the Toeplitz Levinson recursion.
	SolverLevinson
)

func (m SolverMethod) String() string {
	switch m {
	case SolverDense:
		return "dense"
	case SolverLevinson:
		return "levinson"
	default:
		return fmt.Sprintf("SolverMethod(%d)", int(m))
	}
}

// ParseSolverMethod parses "dense" or "levinson" (case-insensitive).
func ParseSolverMethod(s string) (SolverMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dense":
		return SolverDense, nil
	case "levinson":
		return SolverLevinson, nil
	}
	return 0, fmt.Errorf("%w: unknown solver %q", ErrInvalidConfig, s)
}

// Config holds the design parameters.
type Config struct {
	// Order is the tap count M, one more than the FIR polynomial degree.
	Order       int
	Correlation CorrelationMethod
	Solver      SolverMethod
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns order DefaultOrder with direct correlation and the
// dense solver.
func DefaultConfig() Config {
	return Config{
		Order:       DefaultOrder,
		Correlation: CorrelationDirect,
		Solver:      SolverDense,
	}
}

// WithOrder sets the number of taps M. Values below 1 are rejected when the
// filter is designed.
func WithOrder(order int) Option {
	return func(cfg *Config) {
		cfg.Order = order
	}
}

// WithCorrelation sets the correlation method.
func WithCorrelation(m CorrelationMethod) Option {
	return func(cfg *Config) {
		cfg.Correlation = m
	}
}

// WithSolver sets the normal-equations solver.
func WithSolver(m SolverMethod) Option {
	return func(cfg *Config) {
		cfg.Solver = m
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
