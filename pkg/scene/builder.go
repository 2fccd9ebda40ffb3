package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// builder adds primitives to a scene and keeps the first construction error
type builder struct {
	scene *Scene
	err   error
}

func (b *builder) sphere(center core.Vec3, radius float64, mat *material.Material) {
	if b.err != nil {
		return
	}
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		b.err = err
		return
	}
	b.scene.Add(sphere)
}

func (b *builder) plane(position, x, y core.Vec3, width, height float64, mat *material.Material) {
	if b.err != nil {
		return
	}
	plane, err := geometry.NewPlane(position, x, y, width, height, mat)
	if err != nil {
		b.err = err
		return
	}
	b.scene.Add(plane)
}

// ground adds a width x depth horizontal plane centered at center, facing +Y
func (b *builder) ground(center core.Vec3, width, depth float64, mat *material.Material) {
	b.plane(center, core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), width, depth, mat)
}

func (b *builder) done() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}
