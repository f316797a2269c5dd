package particle

import (
	"fmt"
	mrand "math/rand"
)

// SystemAoS stores particles as one contiguous slice of records.
type SystemAoS struct {
	Particles []Particle
}

// NewSystemAoS allocates n particle records and fills them with
// uniform random data drawn from rng.
func NewSystemAoS(n int, rng *mrand.Rand) (*SystemAoS, error) {
	if n <= 0 {
		return nil, fmt.Errorf("aos store: %w, got %d", ErrInvalidCount, n)
	}

	s := &SystemAoS{Particles: make([]Particle, n)}

	for i := range s.Particles {
		s.Particles[i].X = rng.Float64()
	}

	for i := range s.Particles {
		s.Particles[i].Y = rng.Float64()
	}

	for i := range s.Particles {
		s.Particles[i].Z = rng.Float64()
	}

	for i := range s.Particles {
		s.Particles[i].Mass = rng.Float64()*massRange + massMin
	}

	return s, nil
}

// Len returns the number of particles in the store.
func (s *SystemAoS) Len() int { return len(s.Particles) }

// CenterOfMass returns the arithmetic mean of each field. The loop
// walks record by record, touching every field of every record in
// order, exactly as an AoS consumer would.
func (s *SystemAoS) CenterOfMass() CenterOfMass {
	var sumX, sumY, sumZ, sumM float64

	for i := range s.Particles {
		sumX += s.Particles[i].X
		sumY += s.Particles[i].Y
		sumZ += s.Particles[i].Z
		sumM += s.Particles[i].Mass
	}

	n := float64(len(s.Particles))

	return CenterOfMass{
		X:    sumX / n,
		Y:    sumY / n,
		Z:    sumZ / n,
		Mass: sumM / n,
	}
}

// WeightedCenterOfMass returns the mass-weighted mean position,
// sum(pos*mass)/sum(mass) per axis. A zero total mass yields the
// zero value.
func (s *SystemAoS) WeightedCenterOfMass() WeightedCenter {
	var sumX, sumY, sumZ, sumM float64

	for i := range s.Particles {
		m := s.Particles[i].Mass
		sumX += s.Particles[i].X * m
		sumY += s.Particles[i].Y * m
		sumZ += s.Particles[i].Z * m
		sumM += m
	}

	if sumM == 0 {
		return WeightedCenter{}
	}

	return WeightedCenter{
		X: sumX / sumM,
		Y: sumY / sumM,
		Z: sumZ / sumM,
	}
}
