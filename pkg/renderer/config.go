package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Config contains the render configuration, consumed at construction
// and never mutated afterwards
type Config struct {
	Width           int       // Image width in pixels
	Height          int       // Image height in pixels
	BackgroundColor core.Vec3 // Color for rays that escape the scene
	MaxDepth        int       // Maximum trace recursion depth
	MaxStackSize    int       // Per-pixel task/result stack capacity
	VFov            float64   // Vertical field of view in degrees
	EyePosition     core.Vec3 // Camera position
	ReflectFuzz     float64   // Glossy perturbation of reflection directions
	TileSize        int       // Size of each parallel render tile
	NumWorkers      int       // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns the default configuration for the given image size
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		BackgroundColor: core.NewVec3(0.235294, 0.67451, 0.843137),
		MaxDepth:        10,
		MaxStackSize:    50,
		VFov:            90,
		EyePosition:     core.NewVec3(0, 0, 0),
		ReflectFuzz:     0.1,
		TileSize:        64,
		NumWorkers:      0,
	}
}

// Validate checks the configuration invariants. In particular the stack
// capacity must cover full reflective+refractive branching at every level
// (two frames per depth step), otherwise pushes start failing silently and
// merge pairing breaks down.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.MaxStackSize < 1 {
		return fmt.Errorf("stack size must be at least 1, got %d", c.MaxStackSize)
	}
	if c.MaxStackSize < 2*c.MaxDepth {
		return fmt.Errorf("stack size %d is too small for max depth %d (need at least %d)",
			c.MaxStackSize, c.MaxDepth, 2*c.MaxDepth)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("vertical field of view must be in (0, 180), got %g", c.VFov)
	}
	return nil
}
