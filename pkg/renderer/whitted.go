package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene provides read-only geometry and lighting for a render pass.
// Interface defined here to avoid circular imports.
type Scene interface {
	// Hit returns the nearest intersection at distance < tMax, or false
	Hit(ray core.Ray, tMax float64) (*geometry.HitRecord, bool)
	// Lights returns the scene's light list
	Lights() *lights.LightList
}

// originEpsilon offsets secondary ray origins off the surface they
// spawned from, avoiding immediate self-intersection
const originEpsilon = 1e-5

// Tracer runs the iterative Whitted trace for individual pixels. Recursion
// is simulated with an explicit per-pixel task stack (pending work) and
// result stack (partial colors); the stacks are addressed by pixel
// coordinate, so workers rendering disjoint tiles never contend.
type Tracer struct {
	scene   Scene
	config  Config
	tasks   *TaskStack
	results *ResultStack
}

// NewTracer creates a tracer with stack storage for every pixel of the frame
func NewTracer(scene Scene, config Config) *Tracer {
	return &Tracer{
		scene:   scene,
		config:  config,
		tasks:   NewTaskStack(config.Width, config.Height, config.MaxStackSize),
		results: NewResultStack(config.Width, config.Height, config.MaxStackSize),
	}
}

// TracePixel resolves the color seen along a primary ray by running pixel
// (i, j)'s task loop to completion. It returns the color and the number of
// task frames executed.
func (t *Tracer) TracePixel(i, j int, primary core.Ray, random *rand.Rand) (core.Vec3, int) {
	t.tasks.Clear(i, j)
	t.results.Clear(i, j)

	t.tasks.Push(i, j, TaskFrame{Type: TaskProcess, Depth: 0, Ray: primary, Kr: 1.0})

	tasksExecuted := 0
	for !t.tasks.Empty(i, j) {
		frame := t.tasks.Top(i, j)
		t.tasks.Pop(i, j)
		tasksExecuted++

		if frame.Type == TaskMerge {
			// The reflected color was produced last, so it is on top
			reflected := t.results.Top(i, j)
			t.results.Pop(i, j)
			refracted := t.results.Top(i, j)
			t.results.Pop(i, j)

			combined := reflected.Multiply(frame.Kr).Add(refracted.Multiply(1 - frame.Kr))
			t.results.Push(i, j, combined)
			continue
		}

		// TaskProcess: depth-exhausted rays contribute black
		if frame.Depth >= t.config.MaxDepth {
			t.results.Push(i, j, core.NewVec3(0, 0, 0))
			continue
		}

		hit, isHit := t.scene.Hit(frame.Ray, math.Inf(1))
		if !isHit {
			// The ray escaped: the whole pixel resolves to the background,
			// discarding any pending sibling tasks
			break
		}

		switch hit.Material.Type {
		case material.Reflective, material.ReflectiveAndRefractive:
			t.processSpecular(i, j, frame, hit, random)
		default:
			t.results.Push(i, j, t.blinnPhong(frame.Ray, hit))
		}
	}

	if !t.results.Empty(i, j) {
		color := t.results.Top(i, j)
		t.results.Pop(i, j)
		return color, tasksExecuted
	}
	return t.config.BackgroundColor, tasksExecuted
}

// processSpecular handles a hit on a reflective or reflective+refractive
// material: it computes the Fresnel split and pushes the follow-up frames.
// Push order matters: the merge frame goes first, then reflection, then
// refraction (if any), so the refracted color lands under the reflected one
// right where the merge expects them.
func (t *Tracer) processSpecular(i, j int, frame TaskFrame, hit *geometry.HitRecord, random *rand.Rand) {
	rd := frame.Ray.Direction.Normalize()

	// Entering the medium inverts the relative index of refraction
	refIdx := hit.Material.RefractiveIndex
	if hit.FrontFace {
		refIdx = 1.0 / refIdx
	}

	cosTheta := math.Max(math.Min(-rd.Dot(hit.Normal), 1.0), -1.0)
	kr := material.Reflectance(cosTheta, refIdx)

	reflectDir := material.Reflect(rd, hit.Normal).Normalize()
	reflectDir = reflectDir.Add(core.RandomUnitVector(random).Multiply(t.config.ReflectFuzz))

	// The reflection origin is biased along +normal on both sides of the surface
	reflectOrig := hit.Point.Add(hit.Normal.Multiply(originEpsilon))

	t.tasks.Push(i, j, TaskFrame{Type: TaskMerge, Depth: frame.Depth + 1, Kr: kr})
	t.tasks.Push(i, j, TaskFrame{
		Type:  TaskProcess,
		Depth: frame.Depth + 1,
		Ray:   core.NewRay(reflectOrig, reflectDir),
	})

	if hit.Material.Type == material.ReflectiveAndRefractive {
		refractDir := material.Refract(rd, hit.Normal, refIdx).Normalize()

		refractOrig := hit.Point
		if refractDir.Dot(hit.Normal) > 0 {
			refractOrig = refractOrig.Add(hit.Normal.Multiply(originEpsilon))
		} else {
			refractOrig = refractOrig.Subtract(hit.Normal.Multiply(originEpsilon))
		}

		t.tasks.Push(i, j, TaskFrame{
			Type:  TaskProcess,
			Depth: frame.Depth + 1,
			Ray:   core.NewRay(refractOrig, refractDir),
		})
	} else {
		// Reflective only: a fixed near-background color stands in for the
		// refracted contribution the merge will blend against
		t.results.Push(i, j, t.config.BackgroundColor.Multiply(0.99))
	}
}

// blinnPhong evaluates local illumination (ambient + diffuse + specular)
// at a hit point, with hard shadow testing per light
func (t *Tracer) blinnPhong(ray core.Ray, hit *geometry.HitRecord) core.Vec3 {
	lightList := t.scene.Lights()
	mat := hit.Material

	// Offset the shadow origin toward the side the incoming ray arrived on
	shadowOrig := hit.Point.Add(hit.Normal.Multiply(originEpsilon))
	if ray.Direction.Dot(hit.Normal) >= 0 {
		shadowOrig = hit.Point.Subtract(hit.Normal.Multiply(originEpsilon))
	}

	var ambient core.Vec3
	var specular core.Vec3
	diffuse := 0.0

	for _, light := range lightList.Points {
		r := light.Position.Distance(hit.Point)
		lightDir := light.Position.Subtract(hit.Point).Normalize()

		shadowHit, isHit := t.scene.Hit(core.NewRay(shadowOrig, lightDir), math.Inf(1))
		inShadow := isHit && shadowHit.T < r

		// Recomputed per light iteration; only the last assignment survives
		ambient = lightList.Ambient.Intensity.Multiply(mat.Ka)

		// Diffuse carries no per-light intensity, only the geometric term
		if !inShadow {
			diffuse += math.Max(0, lightDir.Dot(hit.Normal))
		}

		reflectDir := material.Reflect(lightDir.Negate(), hit.Normal).Normalize()
		specular = specular.Add(light.Intensity.Multiply(
			math.Pow(math.Max(0, -reflectDir.Dot(lightDir)), mat.SpecularExp)))
	}

	return ambient.
		Add(mat.DiffuseColor.Multiply(mat.Kd * diffuse)).
		Add(specular.Multiply(mat.Ks))
}
