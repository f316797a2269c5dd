// Package main provides the CLI entry point for soabench, a memory
// layout benchmarking tool comparing Array of Structures and
// Structure of Arrays particle stores.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/weiihann/soabench/bench"
	"github.com/weiihann/soabench/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "soabench",
		Short: "AoS vs SoA memory layout benchmarking tool",
		Long: `Soabench builds particle stores in both the Array of Structures and
Structure of Arrays layouts from the same seeded random data, times a
center-of-mass kernel against each across a matrix of particle counts,
and reports the per-count speedup.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		counts     []int
		repeats    int
		executions int
		seed       int64
		agg        string
		kernel     string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the layout benchmark matrix",
		Long: `Benchmark the center-of-mass kernel against AoS and SoA particle
stores for each configured particle count and report comparative
timings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd.Context(), logger, runOptions{
				counts:     counts,
				repeats:    repeats,
				executions: executions,
				seed:       seed,
				agg:        agg,
				kernel:     kernel,
				outputJSON: outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&counts, "counts",
		[]int{10_000, 100_000, 1_000_000, 10_000_000},
		"Particle counts to benchmark")
	flags.IntVar(&repeats, "repeats", 5,
		"Timing trials per particle count")
	flags.IntVar(&executions, "executions", 3,
		"Kernel executions per trial")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed (0 = use current time)")
	flags.StringVar(&agg, "agg", bench.AggMin,
		"Trial aggregation: min, mean")
	flags.StringVar(&kernel, "kernel", bench.KernelMean,
		"Measured kernel: mean, weighted")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of table")

	return cmd
}

type runOptions struct {
	counts     []int
	repeats    int
	executions int
	seed       int64
	agg        string
	kernel     string
	outputJSON bool
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	opts runOptions,
) error {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.String("go_version", runtime.Version()),
		slog.String("platform", runtime.GOOS+"/"+runtime.GOARCH),
		slog.Int("cpus", runtime.NumCPU()),
		slog.Any("counts", opts.counts),
		slog.Int("repeats", opts.repeats),
		slog.Int("executions", opts.executions),
		slog.Int64("seed", seed),
		slog.String("aggregation", opts.agg),
		slog.String("kernel", opts.kernel),
	)

	runner := bench.NewRunner(logger)

	results, err := runner.Run(ctx, bench.Config{
		ParticleCounts: opts.counts,
		NumRepeats:     opts.repeats,
		NumExecutions:  opts.executions,
		Seed:           seed,
		Aggregation:    opts.agg,
		Kernel:         opts.kernel,
	})
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	if opts.outputJSON {
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(os.Stdout, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}
