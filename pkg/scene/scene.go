package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains the world geometry and lights needed for rendering.
// It is read-only for the duration of a render pass.
type Scene struct {
	World     *geometry.World
	LightList *lights.LightList
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		World:     geometry.NewWorld(),
		LightList: lights.NewLightList(),
	}
}

// Hit returns the nearest intersection at distance < tMax, or false
func (s *Scene) Hit(ray core.Ray, tMax float64) (*geometry.HitRecord, bool) {
	return s.World.Hit(ray, tMax)
}

// Lights returns the scene's light list
func (s *Scene) Lights() *lights.LightList {
	return s.LightList
}
