package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the classic demo: a mirror sphere beside a matte
// sphere on a square floor, lit by a single grey point light
func NewDefaultScene(width, height int) (*Scene, error) {
	camera, err := geometry.NewCamera(geometry.DefaultCameraConfig(width, height))
	if err != nil {
		return nil, err
	}

	b := &builder{scene: New(camera)}
	b.sphere(core.NewVec3(0, 0, 5), 1, material.Mirror())
	b.sphere(core.NewVec3(2.5, 0, 5), 1, material.Default())
	b.ground(core.NewVec3(0, -1, 5), 10, 10, material.Default())

	b.scene.AddLight(lights.NewPointLight(core.NewVec3(2, 5, 1), core.NewColorRGB8(170, 170, 170)))
	return b.done()
}

// NewGlossScene lines up spheres of increasing gloss over a checkered floor
func NewGlossScene(width, height int) (*Scene, error) {
	cameraConfig := geometry.DefaultCameraConfig(width, height)
	cameraConfig.Position = core.NewVec3(0, 1, -1)
	cameraConfig.Target = core.NewVec3(0, -0.25, 1)
	cameraConfig.FOV = 75
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	checker, err := material.NewCheckerboard(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.15, 0.15, 0.2), 0.05)
	if err != nil {
		return nil, err
	}
	floor := material.NewMaterial(checker, checker, material.NewSolidColor(core.NewColor(0.2, 0.2, 0.2)), 8, 0.25)

	b := &builder{scene: New(camera)}
	b.ground(core.NewVec3(0, -1, 5), 12, 12, floor)

	for i, gloss := range []float64{0, 0.05, 0.15, 0.4} {
		x := -2.25 + 1.5*float64(i)
		b.sphere(core.NewVec3(x, -0.4, 5), 0.6, material.Mirror().WithGloss(gloss))
	}

	b.scene.AddLight(
		lights.NewPointLight(core.NewVec3(2, 5, 1), core.NewColorRGB8(170, 170, 170)),
		lights.NewPointLight(core.NewVec3(-3, 4, 2), core.NewColorRGB8(90, 90, 120)),
	)
	return b.done()
}
