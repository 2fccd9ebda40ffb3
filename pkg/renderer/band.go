package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Band is a contiguous run of image rows rendered by a single task
type Band struct {
	ID      int
	Y0, Y1  int          // Rows [Y0, Y1)
	Sampler core.Sampler // Band-specific sampler for deterministic results
}

// NewBand creates a band whose sampler depends only on seed and id
func NewBand(id, y0, y1 int, seed int64) *Band {
	return &Band{
		ID:      id,
		Y0:      y0,
		Y1:      y1,
		Sampler: core.NewSeededSampler(bandSeed(seed, id)),
	}
}

// bandSeed mixes the render seed with the band id
func bandSeed(seed int64, id int) int64 {
	return seed*1_000_003 + int64(id) + 42 // +42 to avoid seed 0
}

// NewBandGrid splits height rows into count bands of near-equal size.
// The count is clamped to [1, height].
func NewBandGrid(height, count int, seed int64) []*Band {
	if height <= 0 {
		return nil
	}
	count = max(1, min(count, height))

	bands := make([]*Band, 0, count)
	for i := 0; i < count; i++ {
		y0 := i * height / count
		y1 := (i + 1) * height / count
		bands = append(bands, NewBand(i, y0, y1, seed))
	}
	return bands
}

// Rows returns the number of rows in the band
func (b *Band) Rows() int {
	return b.Y1 - b.Y0
}
