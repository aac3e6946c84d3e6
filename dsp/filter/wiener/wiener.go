package wiener

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-wiener/dsp/conv"
	"github.com/cwbudde/algo-wiener/dsp/filter/fir"
	"github.com/cwbudde/algo-wiener/dsp/linalg"
	timestats "github.com/cwbudde/algo-wiener/stats/time"
)

// Errors returned by Design and Estimate.
var (
	ErrDimension      = errors.New("wiener: dimension mismatch")
	ErrSingularMatrix = errors.New("wiener: singular correlation matrix")
	ErrInvalidConfig  = errors.New("wiener: invalid configuration")
)

// Result holds every intermediate of a Wiener filter estimation. All slices
// are owned by the Result.
type Result struct {
	Order int

	Rxx []float64     // autocorrelation of x, lags 0..Order-1
	Rdx []float64     // cross-correlation of d with x, lags 0..Order-1
	R   *mat.SymDense // Toeplitz(Rxx)

	Coefficients []float64

	// Set by Estimate only.
	Output      []float64
	MMSE        float64
	ErrorEnergy float64
}

// Design estimates the correlations and solves for the filter coefficients.
// Output, MMSE and ErrorEnergy are left zero.
func Design(x, d []float64, opts ...Option) (*Result, error) {
	return design(x, d, ApplyOptions(opts...))
}

// Estimate designs the filter, applies it to x and scores the output
// against d.
func Estimate(x, d []float64, opts ...Option) (*Result, error) {
	res, err := design(x, d, ApplyOptions(opts...))
	if err != nil {
		return nil, err
	}

	res.Output = fir.Apply(res.Coefficients, x)

	res.ErrorEnergy, err = timestats.ErrorEnergy(d, res.Output)
	if err != nil {
		return nil, fmt.Errorf("wiener: scoring: %w", err)
	}
	res.MMSE = res.ErrorEnergy / float64(len(d))

	return res, nil
}

func design(x, d []float64, cfg Config) (*Result, error) {
	if err := validate(x, d, cfg); err != nil {
		return nil, err
	}

	correlate := conv.CorrelateBiased
	if cfg.Correlation == CorrelationFFT {
		correlate = conv.CorrelateBiasedFFT
	}

	rxx, err := correlate(x, x, cfg.Order)
	if err != nil {
		return nil, fmt.Errorf("wiener: autocorrelation: %w", err)
	}
	rdx, err := correlate(d, x, cfg.Order)
	if err != nil {
		return nil, fmt.Errorf("wiener: cross-correlation: %w", err)
	}

	solve := linalg.SolveDense
	if cfg.Solver == SolverLevinson {
		solve = linalg.SolveLevinson
	}

	w, err := solve(rxx, rdx)
	if err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularMatrix, err)
		}
		return nil, fmt.Errorf("wiener: solve: %w", err)
	}

	return &Result{
		Order:        cfg.Order,
		Rxx:          rxx,
		Rdx:          rdx,
		R:            linalg.Toeplitz(rxx),
		Coefficients: w,
	}, nil
}

func validate(x, d []float64, cfg Config) error {
	switch cfg.Correlation {
	case CorrelationDirect, CorrelationFFT:
	default:
		return fmt.Errorf("%w: correlation method %v", ErrInvalidConfig, cfg.Correlation)
	}
	switch cfg.Solver {
	case SolverDense, SolverLevinson:
	default:
		return fmt.Errorf("%w: solver %v", ErrInvalidConfig, cfg.Solver)
	}

	if cfg.Order < 1 {
		return fmt.Errorf("%w: order %d, need at least 1", ErrDimension, cfg.Order)
	}
	if len(x) != len(d) {
		return fmt.Errorf("%w: input has %d samples, desired has %d", ErrDimension, len(x), len(d))
	}
	if len(x) < cfg.Order {
		return fmt.Errorf("%w: %d samples for order %d", ErrDimension, len(x), cfg.Order)
	}
	return nil
}
