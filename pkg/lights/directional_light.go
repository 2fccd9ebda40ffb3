package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// DirectionalLight models a light infinitely far away shining along Direction.
// Shading does not consume it yet.
type DirectionalLight struct {
	Direction core.Vec3
	Color     core.Color
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction core.Vec3, color core.Color) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Color: color}
}

func (l *DirectionalLight) Type() LightType       { return LightTypeDirectional }
func (l *DirectionalLight) Intensity() core.Color { return l.Color }
func (l *DirectionalLight) light()                {}

// SpotLight is a point light restricted to a cone. Shading does not consume it yet.
type SpotLight struct {
	Position  core.Vec3
	Direction core.Vec3
	Angle     float64 // Cone half-angle in degrees
	Color     core.Color
}

// NewSpotLight creates a new spot light
func NewSpotLight(position, direction core.Vec3, angle float64, color core.Color) *SpotLight {
	return &SpotLight{Position: position, Direction: direction.Normalize(), Angle: angle, Color: color}
}

func (l *SpotLight) Type() LightType       { return LightTypeSpot }
func (l *SpotLight) Intensity() core.Color { return l.Color }
func (l *SpotLight) light()                {}
