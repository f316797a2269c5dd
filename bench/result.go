// Package bench times the center-of-mass kernels against both
// particle layouts and aggregates the timing samples.
package bench

import "time"

// Result holds the representative per-execution times for one
// particle count and the derived speedup (AoS time over SoA time).
type Result struct {
	Particles int           `json:"particles"`
	AoSTime   time.Duration `json:"aos_time_ns"`
	SoATime   time.Duration `json:"soa_time_ns"`
	Speedup   float64       `json:"speedup"`
}
