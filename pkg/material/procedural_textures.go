package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Checkerboard alternates two colors over square cells in UV space
type Checkerboard struct {
	Even     core.Color
	Odd      core.Color
	CellSize float64 // Cell edge length in UV units
}

// NewCheckerboard creates a checkerboard with the given cell size
func NewCheckerboard(even, odd core.Color, cellSize float64) (*Checkerboard, error) {
	if !(cellSize > 0) {
		return nil, fmt.Errorf("checkerboard cell size %g: %w", cellSize, core.ErrInvalidArgument)
	}
	return &Checkerboard{Even: even, Odd: odd, CellSize: cellSize}, nil
}

// Sample returns Even or Odd depending on the parity of the cell holding (u,v)
func (c *Checkerboard) Sample(uv core.Vec2) core.Color {
	cellX := int64(math.Floor(uv.X / c.CellSize))
	cellY := int64(math.Floor(uv.Y / c.CellSize))
	if (cellX+cellY)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			// Row 0 is the top of the image, i.e. v = 1
			v := 1.0 - float64(y)/float64(max(1, height-1))
			pixels[y*width+x] = core.NewColor(u, v, 0.0)
		}
	}

	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}
