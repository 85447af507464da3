package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// TaskType discriminates the two kinds of pending work a pixel trace can hold
type TaskType int

const (
	// TaskProcess traces a ray at a given depth and pushes its color
	TaskProcess TaskType = iota
	// TaskMerge combines the two most recent result entries as
	// kr*reflected + (1-kr)*refracted
	TaskMerge
)

// TaskFrame is one unit of pending trace work for a pixel
type TaskFrame struct {
	Type  TaskType
	Depth int
	Ray   core.Ray // Ray to trace (TaskProcess only)
	Kr    float64  // Fresnel reflectance for the blend (TaskMerge only)
}

// TaskStack holds the pending task frames for every pixel of a frame.
// Storage is a flat width*height*capacity array plus one top pointer per
// pixel, so concurrent lanes rendering disjoint pixels never share state.
// All operations are O(1) and allocation-free.
type TaskStack struct {
	width    int
	capacity int
	frames   []TaskFrame
	ptr      []int
}

// NewTaskStack allocates per-pixel task stacks with the given capacity
func NewTaskStack(width, height, capacity int) *TaskStack {
	s := &TaskStack{
		width:    width,
		capacity: capacity,
		frames:   make([]TaskFrame, width*height*capacity),
		ptr:      make([]int, width*height),
	}
	for p := range s.ptr {
		s.ptr[p] = -1
	}
	return s
}

// Clear resets pixel (i, j)'s stack to empty
func (s *TaskStack) Clear(i, j int) {
	s.ptr[j*s.width+i] = -1
}

// Empty reports whether pixel (i, j)'s stack has no entries
func (s *TaskStack) Empty(i, j int) bool {
	return s.ptr[j*s.width+i] <= -1
}

// Full reports whether pixel (i, j)'s stack has no remaining capacity
func (s *TaskStack) Full(i, j int) bool {
	return s.ptr[j*s.width+i] >= s.capacity-1
}

// Depth returns the number of entries on pixel (i, j)'s stack
func (s *TaskStack) Depth(i, j int) int {
	return s.ptr[j*s.width+i] + 1
}

// Top returns the frame at the top of pixel (i, j)'s stack.
// The stack must not be empty.
func (s *TaskStack) Top(i, j int) TaskFrame {
	p := j*s.width + i
	return s.frames[p*s.capacity+s.ptr[p]]
}

// Push stores a frame on pixel (i, j)'s stack. It returns false and leaves
// the stack unchanged when the capacity is exhausted.
func (s *TaskStack) Push(i, j int, frame TaskFrame) bool {
	p := j*s.width + i
	if s.ptr[p]+1 >= s.capacity {
		return false
	}
	s.ptr[p]++
	s.frames[p*s.capacity+s.ptr[p]] = frame
	return true
}

// Pop removes the top frame of pixel (i, j)'s stack. It returns false and
// leaves the stack unchanged when the stack is empty.
func (s *TaskStack) Pop(i, j int) bool {
	p := j*s.width + i
	if s.ptr[p] < 0 {
		return false
	}
	s.ptr[p]--
	return true
}

// ResultStack holds the partial color results for every pixel of a frame.
// Layout and semantics mirror TaskStack.
type ResultStack struct {
	width    int
	capacity int
	colors   []core.Vec3
	ptr      []int
}

// NewResultStack allocates per-pixel result stacks with the given capacity
func NewResultStack(width, height, capacity int) *ResultStack {
	s := &ResultStack{
		width:    width,
		capacity: capacity,
		colors:   make([]core.Vec3, width*height*capacity),
		ptr:      make([]int, width*height),
	}
	for p := range s.ptr {
		s.ptr[p] = -1
	}
	return s
}

// Clear resets pixel (i, j)'s stack to empty
func (s *ResultStack) Clear(i, j int) {
	s.ptr[j*s.width+i] = -1
}

// Empty reports whether pixel (i, j)'s stack has no entries
func (s *ResultStack) Empty(i, j int) bool {
	return s.ptr[j*s.width+i] <= -1
}

// Full reports whether pixel (i, j)'s stack has no remaining capacity
func (s *ResultStack) Full(i, j int) bool {
	return s.ptr[j*s.width+i] >= s.capacity-1
}

// Depth returns the number of entries on pixel (i, j)'s stack
func (s *ResultStack) Depth(i, j int) int {
	return s.ptr[j*s.width+i] + 1
}

// Top returns the color at the top of pixel (i, j)'s stack.
// The stack must not be empty.
func (s *ResultStack) Top(i, j int) core.Vec3 {
	p := j*s.width + i
	return s.colors[p*s.capacity+s.ptr[p]]
}

// Push stores a color on pixel (i, j)'s stack. It returns false and leaves
// the stack unchanged when the capacity is exhausted.
func (s *ResultStack) Push(i, j int, color core.Vec3) bool {
	p := j*s.width + i
	if s.ptr[p]+1 >= s.capacity {
		return false
	}
	s.ptr[p]++
	s.colors[p*s.capacity+s.ptr[p]] = color
	return true
}

// Pop removes the top color of pixel (i, j)'s stack. It returns false and
// leaves the stack unchanged when the stack is empty.
func (s *ResultStack) Pop(i, j int) bool {
	p := j*s.width + i
	if s.ptr[p] < 0 {
		return false
	}
	s.ptr[p]--
	return true
}
