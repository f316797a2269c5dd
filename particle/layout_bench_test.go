package particle

import (
	mrand "math/rand"
	"testing"
)

const benchN = 100_000

// benchSink prevents dead-code elimination of the kernel results.
var benchSink float64

func BenchmarkCenterOfMassAoS(b *testing.B) {
	s, err := NewSystemAoS(benchN, mrand.New(mrand.NewSource(42)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := s.CenterOfMass()
		benchSink += c.X
	}
}

func BenchmarkCenterOfMassSoA(b *testing.B) {
	s, err := NewSystemSoA(benchN, mrand.New(mrand.NewSource(42)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := s.CenterOfMass()
		benchSink += c.X
	}
}

func BenchmarkWeightedCenterOfMassAoS(b *testing.B) {
	s, err := NewSystemAoS(benchN, mrand.New(mrand.NewSource(42)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := s.WeightedCenterOfMass()
		benchSink += c.X
	}
}

func BenchmarkWeightedCenterOfMassSoA(b *testing.B) {
	s, err := NewSystemSoA(benchN, mrand.New(mrand.NewSource(42)))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c := s.WeightedCenterOfMass()
		benchSink += c.X
	}
}
