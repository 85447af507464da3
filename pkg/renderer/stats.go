package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int     // Total number of pixels rendered
	TotalTasks   int     // Task frames executed across all pixels
	MaxTasks     int     // Most task frames executed by any single pixel
	AverageTasks float64 // Average task frames per pixel
}

// Merge accumulates another tile's statistics into this one
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalTasks += other.TotalTasks
	s.MaxTasks = max(s.MaxTasks, other.MaxTasks)
}

// Finalize computes derived statistics after all tiles are merged
func (s *RenderStats) Finalize() {
	if s.TotalPixels > 0 {
		s.AverageTasks = float64(s.TotalTasks) / float64(s.TotalPixels)
	}
}
