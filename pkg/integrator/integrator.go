package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace returns the nearest intersection along the ray
	Trace(ray core.Ray) (*geometry.Intersection, bool)

	// TraceColor computes the color seen along a ray. Primitives in ignore
	// are treated as opaque black when they are the nearest hit.
	TraceColor(ray core.Ray, depth int, ignore []geometry.Primitive, sampler core.Sampler) core.Color

	// TraceColorDebug is TraceColor with every ray it spawns reported to sink
	TraceColorDebug(ray core.Ray, depth int, sampler core.Sampler, sink DebugSink) core.Color
}

// Config contains the tunable constants of the shading model
type Config struct {
	SkyColor     core.Color // Returned for rays that hit nothing
	AttenuationK float64    // Point light falloff: 1 / (distance² · k)
	GlossSamples int        // Reflection rays averaged for glossy materials
	Epsilon      float64    // Origin offset for shadow and reflection rays
}

// DefaultConfig returns the standard shading constants
func DefaultConfig() Config {
	return Config{
		SkyColor:     core.SkyBlue,
		AttenuationK: 0.03,
		GlossSamples: 8,
		Epsilon:      core.RayEpsilon,
	}
}
