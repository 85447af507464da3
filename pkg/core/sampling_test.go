package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1.0 {
			t.Errorf("Point %v is outside the unit sphere (iteration %d)", p, i)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	const tolerance = 1e-12

	for i := 0; i < 100; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1.0) > tolerance {
			t.Errorf("Expected unit length, got %v (iteration %d)", v.Length(), i)
		}
	}
}

func TestRandomUnitVector_Varies(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	first := RandomUnitVector(random)
	allSame := true
	for i := 0; i < 10; i++ {
		if RandomUnitVector(random).Subtract(first).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Expected random unit vectors to vary")
	}
}
