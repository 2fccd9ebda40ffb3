package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ImageTexture provides color from pre-decoded image data
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], row 0 is the top of the image
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) (*ImageTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image texture size %dx%d: %w", width, height, core.ErrInvalidArgument)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("image texture has %d pixels, want %d: %w", len(pixels), width*height, core.ErrInvalidArgument)
	}
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// Sample returns the nearest pixel to (u,v). UVs are clamped to [0,1];
// v=0 is the bottom row of the image and v=1 the top.
func (t *ImageTexture) Sample(uv core.Vec2) core.Color {
	u := clamp01(uv.X)
	v := clamp01(uv.Y)

	x := int(math.Round(u * float64(t.Width-1)))
	y := int(math.Round((1.0 - v) * float64(t.Height-1)))

	return t.Pixels[y*t.Width+x]
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
