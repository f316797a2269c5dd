package particle

import (
	"fmt"
	mrand "math/rand"
)

// SystemSoA stores each particle field in its own contiguous slice.
// All four slices always have equal length; index i refers to the
// same logical particle across slices.
type SystemSoA struct {
	X, Y, Z, Mass []float64
}

// NewSystemSoA allocates four field slices of length n and fills
// them with uniform random data drawn from rng.
func NewSystemSoA(n int, rng *mrand.Rand) (*SystemSoA, error) {
	if n <= 0 {
		return nil, fmt.Errorf("soa store: %w, got %d", ErrInvalidCount, n)
	}

	s := &SystemSoA{
		X:    make([]float64, n),
		Y:    make([]float64, n),
		Z:    make([]float64, n),
		Mass: make([]float64, n),
	}

	for i := range s.X {
		s.X[i] = rng.Float64()
	}

	for i := range s.Y {
		s.Y[i] = rng.Float64()
	}

	for i := range s.Z {
		s.Z[i] = rng.Float64()
	}

	for i := range s.Mass {
		s.Mass[i] = rng.Float64()*massRange + massMin
	}

	return s, nil
}

// Len returns the number of particles in the store.
func (s *SystemSoA) Len() int { return len(s.X) }

// CenterOfMass returns the arithmetic mean of each field, one linear
// pass per field slice.
func (s *SystemSoA) CenterOfMass() CenterOfMass {
	n := float64(len(s.X))

	return CenterOfMass{
		X:    sum(s.X) / n,
		Y:    sum(s.Y) / n,
		Z:    sum(s.Z) / n,
		Mass: sum(s.Mass) / n,
	}
}

// WeightedCenterOfMass returns the mass-weighted mean position, one
// pass over the mass slice and one paired pass per axis. A zero
// total mass yields the zero value.
func (s *SystemSoA) WeightedCenterOfMass() WeightedCenter {
	sumM := sum(s.Mass)
	if sumM == 0 {
		return WeightedCenter{}
	}

	return WeightedCenter{
		X: weightedSum(s.X, s.Mass) / sumM,
		Y: weightedSum(s.Y, s.Mass) / sumM,
		Z: weightedSum(s.Z, s.Mass) / sumM,
	}
}

func sum(vals []float64) float64 {
	var total float64
	for _, v := range vals {
		total += v
	}

	return total
}

func weightedSum(vals, mass []float64) float64 {
	var total float64
	for i := range vals {
		total += vals[i] * mass[i]
	}

	return total
}
