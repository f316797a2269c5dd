// Package report formats benchmark results into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/weiihann/soabench/bench"
)

// Generate writes a markdown comparison table for the given results,
// followed by a best/worst/average speedup summary.
func Generate(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Layout Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Particles | AoS Time | SoA Time | Speedup |")
	fmt.Fprintln(w, "|-----------|----------|----------|---------|")

	for _, r := range results {
		fmt.Fprintf(w, "| %d | %s | %s | %.2fx |\n",
			r.Particles,
			formatDuration(r.AoSTime),
			formatDuration(r.SoATime),
			r.Speedup,
		)
	}

	fmt.Fprintln(w)

	best, worst, avg := summarize(results)

	fmt.Fprintf(w, "Best speedup: %.2fx at %d particles\n",
		best.Speedup, best.Particles)
	fmt.Fprintf(w, "Worst speedup: %.2fx at %d particles\n",
		worst.Speedup, worst.Particles)
	fmt.Fprintf(w, "Average speedup: %.2fx\n", avg)

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func summarize(
	results []bench.Result,
) (best, worst bench.Result, avg float64) {
	best, worst = results[0], results[0]

	var total float64

	for _, r := range results {
		if r.Speedup > best.Speedup {
			best = r
		}

		if r.Speedup < worst.Speedup {
			worst = r
		}

		total += r.Speedup
	}

	return best, worst, total / float64(len(results))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
