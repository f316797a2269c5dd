package bench

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validConfig() Config {
	return Config{
		ParticleCounts: []int{1000},
		NumRepeats:     3,
		NumExecutions:  1,
		Seed:           42,
		Aggregation:    AggMin,
		Kernel:         KernelMean,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"valid mean agg", func(c *Config) {
			c.Aggregation = AggMean
		}, false},
		{"valid weighted kernel", func(c *Config) {
			c.Kernel = KernelWeighted
		}, false},
		{"empty counts", func(c *Config) {
			c.ParticleCounts = nil
		}, true},
		{"zero count", func(c *Config) {
			c.ParticleCounts = []int{1000, 0}
		}, true},
		{"negative count", func(c *Config) {
			c.ParticleCounts = []int{-5}
		}, true},
		{"zero repeats", func(c *Config) {
			c.NumRepeats = 0
		}, true},
		{"zero executions", func(c *Config) {
			c.NumExecutions = 0
		}, true},
		{"unknown aggregation", func(c *Config) {
			c.Aggregation = "median"
		}, true},
		{"unknown kernel", func(c *Config) {
			c.Kernel = "dipole"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRunSingleCount(t *testing.T) {
	runner := NewRunner(testLogger())

	results, err := runner.Run(context.Background(), validConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Particles != 1000 {
		t.Errorf("particles = %d, want 1000", r.Particles)
	}
	if r.AoSTime <= 0 {
		t.Errorf("aos time = %v, want positive", r.AoSTime)
	}
	if r.SoATime <= 0 {
		t.Errorf("soa time = %v, want positive", r.SoATime)
	}
	if r.Speedup <= 0 || math.IsNaN(r.Speedup) || math.IsInf(r.Speedup, 0) {
		t.Errorf("speedup = %v, want positive and finite", r.Speedup)
	}
}

func TestRunEmptyCounts(t *testing.T) {
	cfg := validConfig()
	cfg.ParticleCounts = nil

	runner := NewRunner(testLogger())

	results, err := runner.Run(context.Background(), cfg)
	if err == nil {
		t.Error("expected error for empty particle counts")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestRunInvalidCountFailsWholeRun(t *testing.T) {
	cfg := validConfig()
	cfg.ParticleCounts = []int{1000, -1, 2000}

	runner := NewRunner(testLogger())

	results, err := runner.Run(context.Background(), cfg)
	if err == nil {
		t.Error("expected error for negative particle count")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestRunPreservesCountOrder(t *testing.T) {
	cfg := validConfig()
	cfg.ParticleCounts = []int{300, 100, 200}

	runner := NewRunner(testLogger())

	results, err := runner.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, want := range []int{300, 100, 200} {
		if results[i].Particles != want {
			t.Errorf("results[%d].Particles = %d, want %d",
				i, results[i].Particles, want)
		}
	}
}

func TestRunWeightedKernel(t *testing.T) {
	cfg := validConfig()
	cfg.Kernel = KernelWeighted

	runner := NewRunner(testLogger())

	results, err := runner.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].AoSTime <= 0 || results[0].SoATime <= 0 {
		t.Errorf("expected positive times, got aos=%v soa=%v",
			results[0].AoSTime, results[0].SoATime)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(testLogger())

	_, err := runner.Run(ctx, validConfig())
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestReduceMin(t *testing.T) {
	samples := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
	}

	got := reduce(samples, AggMin)
	if got != 10*time.Millisecond {
		t.Errorf("reduce min = %v, want 10ms", got)
	}
}

func TestReduceMean(t *testing.T) {
	samples := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
	}

	got := reduce(samples, AggMean)
	if got != 20*time.Millisecond {
		t.Errorf("reduce mean = %v, want 20ms", got)
	}
}
