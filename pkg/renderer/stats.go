package renderer

import "time"

// RenderStats contains statistics about a render pass
type RenderStats struct {
	TotalPixels int           // Number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit a sphere
	ShadowRays  int           // Shadow rays cast while shading
	Duration    time.Duration // Wall time of the pass
}

// Merge adds the counters of other into s. Duration is left to the caller.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.ShadowRays += other.ShadowRays
}

// Coverage returns the fraction of pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
