package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the default scene: a ground quad, a diffuse
// sphere flanked by a mirror and a glass sphere, and two point lights
func NewDefaultScene() *Scene {
	s := NewScene()

	// Create materials
	diffuseGray := material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6), 1.0, 0.8, 0.1, 25)
	diffuseRed := material.NewDiffuse(core.NewVec3(0.75, 0.2, 0.15), 1.0, 0.9, 0.2, 50)
	mirror := material.NewReflective(1.5)
	glass := material.NewReflectiveAndRefractive(1.5)

	// Objects sit along -Z in front of the camera
	ground := geometry.NewGroundQuad(core.NewVec3(0, -0.5, 0), 10000.0, diffuseGray)
	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, diffuseRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1.1, 0, -2.2), 0.5, mirror)
	sphereRight := geometry.NewSphere(core.NewVec3(1.1, 0, -2.2), 0.5, glass)

	s.World.Add(ground, sphereCenter, sphereLeft, sphereRight)

	s.LightList.SetAmbient(core.NewVec3(0.08, 0.08, 0.08))
	s.LightList.AddPoint(core.NewVec3(-20, 40, 20), core.NewVec3(0.7, 0.7, 0.7))
	s.LightList.AddPoint(core.NewVec3(25, 30, 5), core.NewVec3(0.4, 0.4, 0.4))

	return s
}

// NewMirrorScene creates a single reflective sphere against the solid
// background with one point light
func NewMirrorScene() *Scene {
	s := NewScene()

	mirror := material.NewReflective(1.5)
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.75, mirror))

	s.LightList.SetAmbient(core.NewVec3(0.08, 0.08, 0.08))
	s.LightList.AddPoint(core.NewVec3(-10, 20, 10), core.NewVec3(0.6, 0.6, 0.6))

	return s
}

// NewEmptyScene creates a scene with no geometry, so every pixel resolves
// to the background color
func NewEmptyScene() *Scene {
	return NewScene()
}
