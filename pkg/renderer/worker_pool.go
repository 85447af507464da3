package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Bounds image.Rectangle // Pixel bounds of the tile, disjoint from all other tiles
	Seed   int64           // Seed for the tile's random source
	TaskID int             // For deterministic result ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
// and buffering for maxTiles tasks and results
func NewWorkerPool(numWorkers, maxTiles int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers. Each worker traces pixels through the shared
// tracer and writes colors into the shared frame buffer; tiles have
// non-overlapping bounds and the per-pixel stacks are disjoint storage,
// so this is thread-safe.
func (wp *WorkerPool) Start(tracer *Tracer, camera *Camera, fb *FrameBuffer) {
	for w := 0; w < wp.numWorkers; w++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				random := rand.New(rand.NewSource(task.Seed))
				stats := tracer.RenderBounds(task.Bounds, camera, fb, random)
				wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
			}
		}()
	}
}

// Submit queues a tile task for rendering
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Stop signals that no more tasks are coming and waits for all workers
// to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the channel of completed tile results
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
