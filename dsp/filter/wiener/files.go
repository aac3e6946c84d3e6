package wiener

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-wiener/dsp/linalg"
	"github.com/cwbudde/algo-wiener/internal/signalio"
	timestats "github.com/cwbudde/algo-wiener/stats/time"
)

// SolveFiles loads the input and desired signals from whitespace-separated
// text files and runs Estimate on them.
func SolveFiles(inputPath, desiredPath string, opts ...Option) (*Result, error) {
	x, err := signalio.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("wiener: input signal: %w", err)
	}
	d, err := signalio.Load(desiredPath)
	if err != nil {
		return nil, fmt.Errorf("wiener: desired signal: %w", err)
	}

	logSignal("input", inputPath, x)
	logSignal("desired", desiredPath, d)

	cfg := ApplyOptions(opts...)
	res, err := Estimate(x, d, opts...)
	if err != nil {
		log.WithFields(log.Fields{
			"order": cfg.Order,
			"error": err,
		}).Debug("WIENER: ESTIMATION FAILED")
		return nil, err
	}

	log.WithFields(log.Fields{
		"rxx":    res.Rxx,
		"rdx":    res.Rdx,
		"r":      linalg.Rows(res.R),
		"coeffs": res.Coefficients,
	}).Debug("WIENER: SOLVED NORMAL EQUATIONS")

	log.WithFields(log.Fields{
		"order":        res.Order,
		"samples":      len(x),
		"correlation":  cfg.Correlation,
		"solver":       cfg.Solver,
		"mmse":         res.MMSE,
		"error_energy": res.ErrorEnergy,
	}).Info("WIENER: FILTER ESTIMATED")

	return res, nil
}

func logSignal(role, path string, signal []float64) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	s := timestats.Calculate(signal)
	log.WithFields(log.Fields{
		"signal": role,
		"path":   path,
		"length": s.Length,
		"dc":     s.DC,
		"rms":    s.RMS,
		"peak":   s.Peak,
	}).Debug("WIENER: LOADED SIGNAL")
}
