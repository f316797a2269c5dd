// Package particle provides particle stores in two memory layouts,
// Array of Structures and Structure of Arrays, along with the
// center-of-mass kernels the benchmark measures against each.
//
// Both store constructors draw their random data field-major (all x
// values, then all y, then z, then mass), so two stores built from
// identically seeded generators hold the same logical dataset
// regardless of layout.
package particle

import "errors"

// ErrInvalidCount reports a non-positive particle count.
var ErrInvalidCount = errors.New("particle count must be positive")

// Particle is a single AoS record. The four float64 fields are laid
// out contiguously per record; the field order is fixed.
type Particle struct {
	X, Y, Z, Mass float64
}

// CenterOfMass holds the per-field arithmetic means of a store.
type CenterOfMass struct {
	X, Y, Z, Mass float64
}

// WeightedCenter holds the mass-weighted mean position of a store.
type WeightedCenter struct {
	X, Y, Z float64
}

// Positions are uniform in [0, 1); masses are uniform in
// [massMin, massMin+massRange) to keep total mass away from zero.
const (
	massMin   = 0.1
	massRange = 10.0
)
