package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	mrand "math/rand"
	"time"

	"github.com/weiihann/soabench/particle"
)

// sink accumulates kernel results so the timed loops cannot be
// elided by the compiler.
var sink float64

// Runner executes the benchmark matrix sequentially, one particle
// count at a time.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a Runner that logs progress through logger.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run validates cfg and benchmarks every configured particle count,
// returning one Result per count in configuration order. The context
// is only checked between counts; a count in flight runs to
// completion.
func (r *Runner) Run(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	results := make([]Result, 0, len(cfg.ParticleCounts))

	for _, n := range cfg.ParticleCounts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := r.runCount(n, cfg)
		if err != nil {
			return nil, fmt.Errorf("benchmark %d particles: %w", n, err)
		}

		results = append(results, res)
	}

	return results, nil
}

// runCount builds both stores from the same seed, so they hold the
// same logical dataset, then times the kernel against each.
// Construction stays outside the timed region, and the stores are
// reused across all repeats for this count.
func (r *Runner) runCount(n int, cfg Config) (Result, error) {
	aos, err := particle.NewSystemAoS(
		n, mrand.New(mrand.NewSource(cfg.Seed)),
	)
	if err != nil {
		return Result{}, err
	}

	soa, err := particle.NewSystemSoA(
		n, mrand.New(mrand.NewSource(cfg.Seed)),
	)
	if err != nil {
		return Result{}, err
	}

	aosKernel, soaKernel := kernels(cfg.Kernel, aos, soa)

	r.logger.Info("benchmarking",
		slog.Int("particles", n),
		slog.Int("repeats", cfg.NumRepeats),
		slog.Int("executions", cfg.NumExecutions),
	)

	aosTime := measure(aosKernel, cfg)
	soaTime := measure(soaKernel, cfg)

	speedup := math.Inf(1)
	if soaTime > 0 {
		speedup = float64(aosTime) / float64(soaTime)
	}

	return Result{
		Particles: n,
		AoSTime:   aosTime,
		SoATime:   soaTime,
		Speedup:   speedup,
	}, nil
}

func kernels(
	kind string,
	aos *particle.SystemAoS,
	soa *particle.SystemSoA,
) (func() float64, func() float64) {
	if kind == KernelWeighted {
		aosFn := func() float64 {
			c := aos.WeightedCenterOfMass()

			return c.X + c.Y + c.Z
		}
		soaFn := func() float64 {
			c := soa.WeightedCenterOfMass()

			return c.X + c.Y + c.Z
		}

		return aosFn, soaFn
	}

	aosFn := func() float64 {
		c := aos.CenterOfMass()

		return c.X + c.Y + c.Z + c.Mass
	}
	soaFn := func() float64 {
		c := soa.CenterOfMass()

		return c.X + c.Y + c.Z + c.Mass
	}

	return aosFn, soaFn
}

// measure times NumExecutions consecutive kernel calls per trial on
// the monotonic clock, repeats the trial NumRepeats times, and
// reduces the samples to one per-execution duration. Nothing else
// runs inside the timed region.
func measure(kernel func() float64, cfg Config) time.Duration {
	samples := make([]time.Duration, cfg.NumRepeats)

	for rep := range samples {
		start := time.Now()

		for e := 0; e < cfg.NumExecutions; e++ {
			sink += kernel()
		}

		samples[rep] = time.Since(start)
	}

	return reduce(samples, cfg.Aggregation) /
		time.Duration(cfg.NumExecutions)
}

func reduce(samples []time.Duration, agg string) time.Duration {
	if agg == AggMean {
		var total time.Duration
		for _, s := range samples {
			total += s
		}

		return total / time.Duration(len(samples))
	}

	best := samples[0]
	for _, s := range samples[1:] {
		if s < best {
			best = s
		}
	}

	return best
}
