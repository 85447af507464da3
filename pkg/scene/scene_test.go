package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestDefaultScene_CenterRayHitsDiffuseSphere(t *testing.T) {
	s := NewDefaultScene()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Hit(ray, math.Inf(1))
	if !isHit {
		t.Fatal("Expected center ray to hit the scene")
	}

	if hit.Material.Type != material.Diffuse {
		t.Errorf("Expected diffuse material at center, got type %v", hit.Material.Type)
	}
	// Front of the center sphere: center (0,0,-2), radius 0.5
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected hit at t=1.5, got %f", hit.T)
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
}

func TestDefaultScene_HasLights(t *testing.T) {
	s := NewDefaultScene()

	lightList := s.Lights()
	if len(lightList.Points) != 2 {
		t.Errorf("Expected 2 point lights, got %d", len(lightList.Points))
	}
	if lightList.Ambient.Intensity.Equals(core.NewVec3(0, 0, 0)) {
		t.Error("Expected non-zero ambient intensity")
	}
}

func TestDefaultScene_DownwardRayHitsGround(t *testing.T) {
	s := NewDefaultScene()

	ray := core.NewRay(core.NewVec3(0, 10, -50), core.NewVec3(0, -1, 0))
	hit, isHit := s.Hit(ray, math.Inf(1))
	if !isHit {
		t.Fatal("Expected downward ray to hit the ground")
	}
	if math.Abs(hit.Point.Y-(-0.5)) > 1e-9 {
		t.Errorf("Expected ground at y=-0.5, got %f", hit.Point.Y)
	}
	if !hit.Normal.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected upward ground normal, got %v", hit.Normal)
	}
}

func TestMirrorScene_CenterRayHitsReflectiveSphere(t *testing.T) {
	s := NewMirrorScene()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Hit(ray, math.Inf(1))
	if !isHit {
		t.Fatal("Expected center ray to hit the mirror sphere")
	}
	if hit.Material.Type != material.Reflective {
		t.Errorf("Expected reflective material, got type %v", hit.Material.Type)
	}
	if len(s.Lights().Points) != 1 {
		t.Errorf("Expected 1 point light, got %d", len(s.Lights().Points))
	}
}

func TestEmptyScene_EveryRayMisses(t *testing.T) {
	s := NewEmptyScene()

	directions := []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 1, 1).Normalize(),
	}
	for _, dir := range directions {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		if _, isHit := s.Hit(ray, math.Inf(1)); isHit {
			t.Errorf("Expected miss for direction %v", dir)
		}
	}
}
