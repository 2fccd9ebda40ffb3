package renderer

import (
	"image"
	"image/color"
)

// Plotter receives packed 0xRRGGBB pixel colors. Row y=0 is the top of the image.
type Plotter interface {
	Plot(x, y, rgb int)
}

// Surface is an in-memory packed-color pixel buffer
type Surface struct {
	Width  int
	Height int
	pixels []int
}

// NewSurface creates a black surface of the given size
func NewSurface(width, height int) *Surface {
	return &Surface{
		Width:  width,
		Height: height,
		pixels: make([]int, width*height),
	}
}

// Plot stores a pixel. Writes outside the surface are ignored.
// Concurrent calls are safe as long as they target different pixels.
func (s *Surface) Plot(x, y, rgb int) {
	if !s.contains(x, y) {
		return
	}
	s.pixels[y*s.Width+x] = rgb
}

// Pixel returns the packed color at (x, y), or 0 outside the surface
func (s *Surface) Pixel(x, y int) int {
	if !s.contains(x, y) {
		return 0
	}
	return s.pixels[y*s.Width+x]
}

// Clear resets every pixel to rgb
func (s *Surface) Clear(rgb int) {
	for i := range s.pixels {
		s.pixels[i] = rgb
	}
}

// Image converts the surface to an opaque RGBA image for encoding
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			rgb := s.pixels[y*s.Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(rgb >> 16),
				G: uint8(rgb >> 8),
				B: uint8(rgb),
				A: 255,
			})
		}
	}
	return img
}

func (s *Surface) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}
