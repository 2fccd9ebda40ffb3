package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It must not be
// modified while a render pass is running.
type Scene struct {
	Camera     geometry.Camera      // Initial camera; renders may use a moved or rotated copy
	Primitives []geometry.Primitive // Objects in the scene, tested in order
	Lights     []lights.Light       // Lights in the scene
}

// New creates an empty scene viewed from the given camera
func New(camera geometry.Camera) *Scene {
	return &Scene{Camera: camera}
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// PointLights returns the lights that take part in shading
func (s *Scene) PointLights() []*lights.PointLight {
	var points []*lights.PointLight
	for _, l := range s.Lights {
		if p, ok := l.(*lights.PointLight); ok {
			points = append(points, p)
		}
	}
	return points
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}
