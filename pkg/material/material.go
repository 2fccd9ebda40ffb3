package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to the Phong lighting model
type Material struct {
	Ambient  Texture
	Diffuse  Texture
	Specular Texture

	// NormalMap, when set, replaces the geometric normal of surfaces that
	// support it. RGB in [0,1] maps to XYZ in [-1,1].
	NormalMap Texture

	Shininess    float64 // Phong exponent
	Reflectivity float64 // Mirror contribution, in [0,1]
	Gloss        float64 // Magnitude of the random perturbation of reflected rays
	Gamma        float64 // Post-multiplier applied to the final color

	// Refractivity is reserved; shading does not read it.
	Refractivity float64
}

// NewMaterial creates a material with gamma 1 and reflectivity clamped to [0,1]
func NewMaterial(ambient, diffuse, specular Texture, shininess, reflectivity float64) *Material {
	return &Material{
		Ambient:      ambient,
		Diffuse:      diffuse,
		Specular:     specular,
		Shininess:    shininess,
		Reflectivity: math.Max(0, math.Min(reflectivity, 1)),
		Gamma:        1,
	}
}

// NewSolidMaterial creates a material whose channels are flat colors
func NewSolidMaterial(ambient, diffuse, specular core.Color, shininess, reflectivity float64) *Material {
	return NewMaterial(NewSolidColor(ambient), NewSolidColor(diffuse), NewSolidColor(specular), shininess, reflectivity)
}

// Default is a matte light grey surface
func Default() *Material {
	return NewSolidMaterial(
		core.NewColor(0.7, 0.7, 0.7),
		core.NewColor(0.7, 0.7, 0.7),
		core.NewColor(0.1, 0.1, 0.1),
		2.0, 0.0)
}

// Mirror is a dark, highly specular and reflective surface
func Mirror() *Material {
	return NewSolidMaterial(
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(1.0, 1.0, 1.0),
		100.0, 0.65)
}

// WithGloss returns a copy of the material with the given gloss radius
func (m *Material) WithGloss(gloss float64) *Material {
	c := *m
	c.Gloss = gloss
	return &c
}

// HasNormalMap reports whether the material declares a normal map
func (m *Material) HasNormalMap() bool {
	return m.NormalMap != nil
}

// SampleNormal reads the normal map at uv and maps it from [0,1] to a unit vector
func (m *Material) SampleNormal(uv core.Vec2) core.Vec3 {
	c := m.NormalMap.Sample(uv)
	return core.NewVec3(2*c.R-1, 2*c.G-1, 2*c.B-1).Normalize()
}
