package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersection contains information about a ray-primitive intersection
type Intersection struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing the incoming ray
	Distance  float64   // Distance along the ray, never negative
	Primitive Primitive // Primitive that was hit
	UV        core.Vec2 // Texture coordinates
}

// Primitive is a single intersectable shape with its own material
type Primitive interface {
	// Intersect returns the entry point of the ray into this primitive,
	// or false on a miss. It never mutates the primitive.
	Intersect(ray core.Ray) (*Intersection, bool)
	Material() *material.Material
}

// faceRay flips the normal so it points against the ray direction
func faceRay(ray core.Ray, normal core.Vec3) core.Vec3 {
	if ray.Direction.Dot(normal) > 0 {
		return normal.Negate()
	}
	return normal
}
