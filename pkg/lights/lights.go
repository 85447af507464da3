package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// AmbientLight is a single scene-wide ambient term
type AmbientLight struct {
	Intensity core.Vec3
}

// PointLight is an omnidirectional light at a point in world space
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// LightList holds one ambient term plus an ordered list of point lights.
// It is read-only for the duration of a render pass.
type LightList struct {
	Ambient AmbientLight
	Points  []PointLight
}

// NewLightList creates an empty light list
func NewLightList() *LightList {
	return &LightList{Points: make([]PointLight, 0)}
}

// SetAmbient sets the ambient light intensity
func (l *LightList) SetAmbient(intensity core.Vec3) {
	l.Ambient = AmbientLight{Intensity: intensity}
}

// AddPoint appends a point light to the list
func (l *LightList) AddPoint(position, intensity core.Vec3) {
	l.Points = append(l.Points, PointLight{Position: position, Intensity: intensity})
}
