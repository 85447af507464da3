package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// FrameBuffer is a width×height grid of RGB float colors, one per pixel,
// with row 0 at the bottom of the image. It is overwritten on every
// render invocation.
type FrameBuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFrameBuffer allocates a frame buffer for the given resolution
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (fb *FrameBuffer) At(i, j int) core.Vec3 {
	return fb.pixels[j*fb.Width+i]
}

// Set writes the color of pixel (i, j)
func (fb *FrameBuffer) Set(i, j int, color core.Vec3) {
	fb.pixels[j*fb.Width+i] = color
}
