// Command wiener estimates a short FIR Wiener filter from two signal files,
// applies it and prints the coefficients together with a verification block.
//
// Usage:
//
//	wiener solve [flags] INPUT DESIRED
//
// INPUT and DESIRED are plain-text files holding whitespace-separated
// numbers of equal count.
//
// Examples:
//
//	wiener solve input.txt desired.txt
//	wiener solve --order 8 --solver levinson input.txt desired.txt
//	wiener solve --config wiener.yaml --response 9 input.txt desired.txt
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-wiener/dsp/filter/wiener"
	"github.com/cwbudde/algo-wiener/internal/config"
	"github.com/cwbudde/algo-wiener/internal/report"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wiener",
		Short: "Estimate and verify short FIR Wiener filters",
		Long: `wiener designs an FIR Wiener filter from an input signal and a desired
signal by solving the normal equations built from their correlations,
filters the input with the result and reports the mean squared error.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wiener v%s (%s)\n", version, commit)
		},
	})

	solveCmd := &cobra.Command{
		Use:   "solve INPUT DESIRED",
		Short: "Design a Wiener filter from two signal files",
		Args:  cobra.ExactArgs(2),
		RunE:  runSolve,
	}
	solveCmd.Flags().Int("order", wiener.DefaultOrder, "number of filter taps")
	solveCmd.Flags().String("correlation", wiener.CorrelationDirect.String(), "correlation method: direct or fft")
	solveCmd.Flags().String("solver", wiener.SolverDense.String(), "normal-equations solver: dense or levinson")
	solveCmd.Flags().String("config", "", "YAML settings file (flags take precedence)")
	solveCmd.Flags().String("log-level", log.WarnLevel.String(), "log level written to stderr")
	solveCmd.Flags().Int("response", 0, "also print the magnitude response at this many frequencies")
	rootCmd.AddCommand(solveCmd)

	return rootCmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	res, err := wiener.SolveFiles(args[0], args[1], opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := report.Write(out, res); err != nil {
		return err
	}

	points, _ := cmd.Flags().GetInt("response")
	if points > 0 {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		return report.WriteResponse(out, res.Coefficients, points)
	}
	return nil
}

// resolveConfig layers explicitly set flags over the settings file over the
// defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("order") {
		cfg.Order, _ = flags.GetInt("order")
	}
	if flags.Changed("correlation") {
		cfg.Correlation, _ = flags.GetString("correlation")
	}
	if flags.Changed("solver") {
		cfg.Solver, _ = flags.GetString("solver")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
