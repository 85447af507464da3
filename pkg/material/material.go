package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Type discriminates between the supported material behaviors.
// The set is closed: the tracer switches exhaustively over it.
type Type int

const (
	// Diffuse materials are shaded locally with the Blinn-Phong model
	Diffuse Type = iota
	// Reflective materials spawn a reflection ray only
	Reflective
	// ReflectiveAndRefractive materials spawn both a reflection
	// and a refraction ray, blended by Fresnel reflectance
	ReflectiveAndRefractive
)

// Material describes the surface response of a shape
type Material struct {
	Type            Type
	DiffuseColor    core.Vec3 // Diffuse albedo
	Ka              float64   // Ambient coefficient
	Kd              float64   // Diffuse coefficient
	Ks              float64   // Specular coefficient
	SpecularExp     float64   // Specular (shininess) exponent
	RefractiveIndex float64   // Index of refraction, used by refractive materials
}

// NewDiffuse creates a Blinn-Phong shaded material
func NewDiffuse(diffuseColor core.Vec3, ka, kd, ks, specularExp float64) Material {
	return Material{
		Type:         Diffuse,
		DiffuseColor: diffuseColor,
		Ka:           ka,
		Kd:           kd,
		Ks:           ks,
		SpecularExp:  specularExp,
	}
}

// NewReflective creates a mirror-like material
func NewReflective(refractiveIndex float64) Material {
	return Material{
		Type:            Reflective,
		RefractiveIndex: refractiveIndex,
	}
}

// NewReflectiveAndRefractive creates a dielectric material like glass
// that both reflects and refracts
func NewReflectiveAndRefractive(refractiveIndex float64) Material {
	return Material{
		Type:            ReflectiveAndRefractive,
		RefractiveIndex: refractiveIndex,
	}
}
