package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// hitEpsilon is the minimum ray parameter accepted by intersection queries,
// rejecting intersections at the ray origin itself
const hitEpsilon = 1e-4

// World aggregates scene shapes and answers nearest-intersection queries
type World struct {
	Shapes []Shape
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{Shapes: make([]Shape, 0)}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Hit returns the nearest intersection along the ray at distance < tMax,
// or false if the ray escapes
func (w *World) Hit(ray core.Ray, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, hitEpsilon, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
