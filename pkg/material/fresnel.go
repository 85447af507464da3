package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Reflect calculates the mirror reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of a vector using Snell's law in vector form.
// etaiOverEtat is the relative index of refraction across the boundary.
// At total internal reflection the parallel term saturates to zero instead of
// producing a NaN, so the result is always well-defined.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation.
// The result saturates at 1 so grazing and back-facing cosines never produce
// a reflectance above full reflection.
func Reflectance(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return math.Min(r0+(1-r0)*math.Pow(1-cosine, 5), 1.0)
}
