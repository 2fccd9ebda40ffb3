package integrator

import "github.com/df07/go-whitted-raytracer/pkg/core"

// DebugKind identifies why a ray was cast
type DebugKind string

const (
	DebugPrimary    DebugKind = "primary"
	DebugShadow     DebugKind = "shadow"
	DebugReflection DebugKind = "reflection"
	DebugGloss      DebugKind = "gloss"
)

// missLength is the drawn length of a debug ray that hits nothing
const missLength = 100.0

// DebugRay is a ray segment recorded for visualization
type DebugRay struct {
	Kind   DebugKind
	Origin core.Vec3
	End    core.Vec3 // Hit point, light position, or a point far along a miss
	Depth  int       // Remaining recursion depth when the ray was cast
}

// DebugSink receives debug rays. Implementations must be safe for
// concurrent use when shared across render workers.
type DebugSink interface {
	Record(ray DebugRay)
}
