package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestWorld_Hit_ReturnsNearest(t *testing.T) {
	world := NewWorld()
	world.Add(
		NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial()),
		NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial()),
	)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := world.Hit(ray, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected nearest hit at t=1.5, got %f", hit.T)
	}
}

func TestWorld_Hit_RespectsTMax(t *testing.T) {
	world := NewWorld()
	world.Add(NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial()))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Sphere is at t=4, beyond the bound
	if hit, isHit := world.Hit(ray, 2.0); isHit {
		t.Errorf("Expected miss with tMax=2, got hit at t=%f", hit.T)
	}
}

func TestWorld_Hit_EmptyWorldMisses(t *testing.T) {
	world := NewWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := world.Hit(ray, math.Inf(1)); isHit {
		t.Error("Expected miss in empty world")
	}
}
