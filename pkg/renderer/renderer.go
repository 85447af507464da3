package renderer

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Renderer drives a full frame render: a primary ray per pixel, traced in
// parallel over disjoint tiles, written once into the frame buffer
type Renderer struct {
	scene  Scene
	config Config
	camera *Camera
	tracer *Tracer
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and configuration
func NewRenderer(scene Scene, config Config, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  scene,
		config: config,
		camera: NewCamera(config.Width, config.Height, config.VFov, config.EyePosition),
		tracer: NewTracer(scene, config),
		logger: logger,
	}, nil
}

// RenderBounds traces every pixel within bounds, writing colors into fb
func (t *Tracer) RenderBounds(bounds image.Rectangle, camera *Camera, fb *FrameBuffer, random *rand.Rand) RenderStats {
	var stats RenderStats
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ray := camera.GetRay(i, j, random)
			color, tasks := t.TracePixel(i, j, ray, random)
			fb.Set(i, j, color)

			stats.TotalPixels++
			stats.TotalTasks += tasks
			stats.MaxTasks = max(stats.MaxTasks, tasks)
		}
	}
	return stats
}

// RenderPass renders one complete frame and returns the frame buffer
// along with aggregated statistics
func (r *Renderer) RenderPass() (*FrameBuffer, RenderStats) {
	startTime := time.Now()
	fb := NewFrameBuffer(r.config.Width, r.config.Height)

	tiles := tileBounds(r.config.Width, r.config.Height, r.config.TileSize)
	pool := NewWorkerPool(r.config.NumWorkers, len(tiles))
	pool.Start(r.tracer, r.camera, fb)

	seed := time.Now().UnixNano()
	for id, bounds := range tiles {
		pool.Submit(TileTask{Bounds: bounds, Seed: seed + int64(id), TaskID: id})
	}
	pool.Stop()

	var stats RenderStats
	for result := range pool.Results() {
		stats.Merge(result.Stats)
	}
	stats.Finalize()

	r.logger.Printf("Rendered %dx%d in %v with %d workers (%.1f tasks/pixel, peak %d)\n",
		r.config.Width, r.config.Height, time.Since(startTime), pool.NumWorkers(),
		stats.AverageTasks, stats.MaxTasks)

	return fb, stats
}

// tileBounds splits the image into disjoint rectangles of at most
// tileSize×tileSize pixels
func tileBounds(width, height, tileSize int) []image.Rectangle {
	if tileSize <= 0 {
		tileSize = 64
	}
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)))
		}
	}
	return tiles
}
