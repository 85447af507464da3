package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays from the eye position through a view plane
// one unit in front of it, facing -Z
type Camera struct {
	width      int
	height     int
	eye        core.Vec3
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a pinhole camera for the given image size and
// vertical field of view in degrees
func NewCamera(width, height int, vfov float64, eye core.Vec3) *Camera {
	aspectRatio := float64(width) / float64(height)
	halfHeight := math.Tan(vfov / 2 * math.Pi / 180)
	halfWidth := halfHeight * aspectRatio

	return &Camera{
		width:      width,
		height:     height,
		eye:        eye,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// GetRay generates a jittered primary ray through pixel (i, j),
// where j counts up from the bottom row of the image
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	x := ((float64(i)+random.Float64())/float64(c.width) - 0.5) * 2 * c.halfWidth
	y := ((float64(j)+random.Float64())/float64(c.height) - 0.5) * 2 * c.halfHeight

	direction := core.NewVec3(x, y, -1).Normalize()
	return core.NewRay(c.eye, direction)
}
