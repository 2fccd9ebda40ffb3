package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Image height
	Tasks       int           // Number of row bands
	Workers     int           // Maximum concurrent tasks
	DebugRays   int           // Rays recorded in the ray log, if any
	Elapsed     time.Duration // Wall time for the whole pass
	Bands       []BandStats   // Per-band timings, ordered by band id
}

// BandStats describes one completed band
type BandStats struct {
	ID       int
	Y0, Y1   int
	Duration time.Duration
}

// PixelsPerSecond returns the pass throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}

// SlowestBand returns the band that took longest, or false when there were none
func (s RenderStats) SlowestBand() (BandStats, bool) {
	if len(s.Bands) == 0 {
		return BandStats{}, false
	}
	slowest := s.Bands[0]
	for _, b := range s.Bands[1:] {
		if b.Duration > slowest.Duration {
			slowest = b
		}
	}
	return slowest, true
}
