// Package main provides the glmcalc command line tool.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/oliverbestmann/glsl/internal/calc"
)

var prof interface{ Stop() }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))

		if prof != nil {
			prof.Stop()
		}

		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glmcalc",
		Short:         "Evaluate vector and matrix operations",
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd); err != nil {
				return err
			}

			if enabled, _ := cmd.Flags().GetBool("profile"); enabled {
				prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
			}

			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if prof != nil {
				prof.Stop()
				prof = nil
			}
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("profile", false, "Write a cpu profile to the working directory")
	rootCmd.PersistentFlags().String("output", "", "Output format: text, yaml (default: the job file's, then text)")

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate all jobs of a YAML job file",
		Args:  cobra.NoArgs,
		RunE:  runEval,
	}
	evalCmd.Flags().StringP("file", "f", "", "Job file")
	_ = evalCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(evalCmd)

	for _, op := range []string{calc.OpDet, calc.OpInverse, calc.OpTranspose} {
		opCmd := &cobra.Command{
			Use:   op + " [values...]",
			Short: fmt.Sprintf("Compute the %s of a row major matrix", op),
			Args:  cobra.MinimumNArgs(1),
			RunE:  runMatrixOp(op),
		}
		opCmd.Flags().Int("size", 3, "Matrix size: 2, 3 or 4")
		opCmd.Flags().String("scalar", calc.ScalarFloat64, "Scalar type: float32, float64, int64")
		rootCmd.AddCommand(opCmd)
	}

	return rootCmd
}

func setupLogging(cmd *cobra.Command) error {
	levelName, _ := cmd.Flags().GetString("log-level")

	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return fmt.Errorf("log level %q: %w", levelName, err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	doc, err := calc.LoadDocument(path)
	if err != nil {
		return err
	}

	slog.Info("Loaded job file",
		slog.String("path", path),
		slog.Int("jobs", len(doc.Jobs)),
	)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = doc.Defaults.Output
	}

	// render whatever was computed before a failing job
	results, runErr := calc.Run(doc)

	if err := calc.Render(cmd.OutOrStdout(), results, output); err != nil {
		return err
	}

	return runErr
}

func runMatrixOp(op string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		size, _ := cmd.Flags().GetInt("size")
		scalar, _ := cmd.Flags().GetString("scalar")
		output, _ := cmd.Flags().GetString("output")

		values := make([]float64, len(args))
		for idx, arg := range args {
			value, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("value %d: %w", idx+1, err)
			}

			values[idx] = value
		}

		result, err := calc.Evaluate(calc.Job{
			Name:   op,
			Op:     op,
			Size:   size,
			Scalar: scalar,
			A:      values,
		})
		if err != nil {
			return err
		}

		return calc.Render(cmd.OutOrStdout(), []calc.Result{result}, output)
	}
}
