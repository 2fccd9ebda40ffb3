package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Texture maps a surface (u,v) coordinate to a color
type Texture interface {
	Sample(uv core.Vec2) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Sample returns the solid color regardless of UV
func (s *SolidColor) Sample(uv core.Vec2) core.Color {
	return s.Color
}
