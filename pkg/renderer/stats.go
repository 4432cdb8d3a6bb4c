package renderer

import "time"

// RenderStats summarizes the work one region render performed
type RenderStats struct {
	RaysTraced     int64         // Rays traced, including bounce rays
	PixelsRendered int           // Pixels written to the framebuffer
	Elapsed        time.Duration // Wall-clock time for the region
}

// Merge accumulates another region's statistics into this one.
// Elapsed keeps the longest single region time; the coordinator reports
// total wall-clock separately.
func (s *RenderStats) Merge(other RenderStats) {
	s.RaysTraced += other.RaysTraced
	s.PixelsRendered += other.PixelsRendered
	if other.Elapsed > s.Elapsed {
		s.Elapsed = other.Elapsed
	}
}

// ElapsedMs returns the elapsed time in milliseconds
func (s RenderStats) ElapsedMs() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}
