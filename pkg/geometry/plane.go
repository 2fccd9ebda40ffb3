package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parallelThreshold bounds |dot(X, Y)| for the plane's basis vectors
const parallelThreshold = 0.99

// Plane represents a finite rectangular patch centered on Position and
// spanned by the basis vectors X and Y
type Plane struct {
	Position core.Vec3 // Center of the patch
	X        core.Vec3 // First basis vector (unit length)
	Y        core.Vec3 // Second basis vector (unit length)
	Normal   core.Vec3 // normalize(Y × X)
	Width    float64   // Extent along X
	Height   float64   // Extent along Y
	material *material.Material
}

// NewPlane creates a new bounded plane. The basis vectors must not be
// near-parallel and the extents must be positive.
func NewPlane(position, x, y core.Vec3, width, height float64, mat *material.Material) (*Plane, error) {
	if x.LengthSquared() == 0 || y.LengthSquared() == 0 {
		return nil, fmt.Errorf("plane basis has a zero vector: %w", core.ErrInvalidArgument)
	}
	x = x.Normalize()
	y = y.Normalize()
	if math.Abs(x.Dot(y)) > parallelThreshold {
		return nil, fmt.Errorf("plane basis vectors %v and %v are not independent: %w", x, y, core.ErrInvalidArgument)
	}
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("plane size %gx%g: %w", width, height, core.ErrInvalidArgument)
	}
	if mat == nil {
		return nil, fmt.Errorf("plane without material: %w", core.ErrInvalidArgument)
	}

	return &Plane{
		Position: position,
		X:        x,
		Y:        y,
		Normal:   y.Cross(x).Normalize(),
		Width:    width,
		Height:   height,
		material: mat,
	}, nil
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return p.material
}

// Intersect tests if a ray intersects with the plane patch
func (p *Plane) Intersect(ray core.Ray) (*Intersection, bool) {
	// If denominator is close to zero, ray is parallel to plane (no intersection)
	denominator := p.Normal.Dot(ray.Direction)
	if math.Abs(denominator) < 1e-6 {
		return nil, false
	}

	t := p.Position.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < 0 {
		return nil, false
	}

	point := ray.At(t)

	// Reject hits outside the width x height rectangle
	local := point.Subtract(p.Position)
	projX := local.Dot(p.X)
	projY := local.Dot(p.Y)
	if math.Abs(projX) > p.Width/2 || math.Abs(projY) > p.Height/2 {
		return nil, false
	}

	uv := core.NewVec2(projX/p.Width+0.5, projY/p.Height+0.5)

	normal := p.Normal
	if p.material.HasNormalMap() {
		normal = p.material.SampleNormal(uv)
	}

	return &Intersection{
		Point:     point,
		Normal:    faceRay(ray, normal),
		Distance:  t,
		Primitive: p,
		UV:        uv,
	}, true
}
