package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
	LightTypeSpot        LightType = "spot"
)

// Ambient is the global ambient term applied regardless of the lights in a scene
var Ambient = core.NewColor(0.2, 0.2, 0.2)

// Light is implemented by the closed set of light variants in this package
type Light interface {
	Type() LightType

	// Intensity returns the light's color
	Intensity() core.Color

	light()
}
