package bench

import "fmt"

// Aggregation strategies for reducing per-repeat timing samples.
// Minimum is the default since it is least skewed by system noise.
const (
	AggMin  = "min"
	AggMean = "mean"
)

// Kernels selectable as the measured computation.
const (
	KernelMean     = "mean"
	KernelWeighted = "weighted"
)

// Config controls a full benchmark run.
type Config struct {
	ParticleCounts []int
	NumRepeats     int
	NumExecutions  int
	Seed           int64
	Aggregation    string
	Kernel         string
}

// Validate checks the entire configuration up front. Any invalid
// entry fails the whole run; no count is skipped with a warning.
func (c Config) Validate() error {
	if len(c.ParticleCounts) == 0 {
		return fmt.Errorf("particle counts must not be empty")
	}

	for _, n := range c.ParticleCounts {
		if n <= 0 {
			return fmt.Errorf("particle count must be positive, got %d", n)
		}
	}

	if c.NumRepeats <= 0 {
		return fmt.Errorf("repeats must be positive, got %d", c.NumRepeats)
	}

	if c.NumExecutions <= 0 {
		return fmt.Errorf(
			"executions must be positive, got %d", c.NumExecutions,
		)
	}

	switch c.Aggregation {
	case AggMin, AggMean:
	default:
		return fmt.Errorf("unknown aggregation %q", c.Aggregation)
	}

	switch c.Kernel {
	case KernelMean, KernelWeighted:
	default:
		return fmt.Errorf("unknown kernel %q", c.Kernel)
	}

	return nil
}
