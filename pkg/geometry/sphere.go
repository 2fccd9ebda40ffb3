package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	material *material.Material
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64, mat *material.Material) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius %g: %w", radius, core.ErrInvalidArgument)
	}
	if mat == nil {
		return nil, fmt.Errorf("sphere without material: %w", core.ErrInvalidArgument)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: mat,
	}, nil
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.material
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (*Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first; if it lies behind the origin
	// the ray starts inside the sphere and leaves through the farther one.
	root := (-halfB - sqrtD) / a
	if root < 0 {
		root = (-halfB + sqrtD) / a
		if root < 0 {
			return nil, false
		}
	}

	point := ray.At(root)
	outward := point.Subtract(s.Center).Normalize()

	return &Intersection{
		Point:     point,
		Normal:    faceRay(ray, outward),
		Distance:  root,
		Primitive: s,
		UV:        sphereUV(outward),
	}, true
}

// sphereUV maps an outward unit normal to spherical texture coordinates
func sphereUV(n core.Vec3) core.Vec2 {
	theta := math.Acos(math.Max(-1, math.Min(1, -n.Y)))
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
