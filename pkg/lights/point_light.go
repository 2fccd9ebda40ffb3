package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PointLight emits uniformly in all directions from a position
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color) *PointLight {
	return &PointLight{Position: position, Color: color}
}

func (l *PointLight) Type() LightType       { return LightTypePoint }
func (l *PointLight) Intensity() core.Color { return l.Color }
func (l *PointLight) light()                {}

// Illuminate returns the unit direction from point to the light and the
// squared distance between them
func (l *PointLight) Illuminate(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	return toLight.Normalize(), toLight.LengthSquared()
}
