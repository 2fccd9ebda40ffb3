package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewTextureTestScene creates a scene demonstrating texture and normal mapping
func NewTextureTestScene(width, height int) (*Scene, error) {
	cameraConfig := geometry.DefaultCameraConfig(width, height)
	cameraConfig.Position = core.NewVec3(0, 0.5, 0)
	cameraConfig.Target = core.NewVec3(0, -0.1, 1)
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, err
	}

	uvDebug := material.NewUVDebugTexture(256, 256)
	checker, err := material.NewCheckerboard(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.2, 0.2, 0.8), 0.1)
	if err != nil {
		return nil, err
	}
	white := material.NewSolidColor(core.White)
	grey := material.NewSolidColor(core.NewColor(0.3, 0.3, 0.3))

	uvMaterial := material.NewMaterial(uvDebug, uvDebug, grey, 16, 0)
	checkerMaterial := material.NewMaterial(checker, checker, grey, 4, 0)

	// Wall whose normal map tilts the surface in bands
	bumps, err := bumpNormalMap(64, 8)
	if err != nil {
		return nil, err
	}
	wall := material.NewMaterial(white, white, grey, 32, 0)
	wall.NormalMap = bumps

	b := &builder{scene: New(camera)}
	b.ground(core.NewVec3(0, -1, 5), 10, 10, checkerMaterial)
	b.sphere(core.NewVec3(-1.2, 0, 5), 1, uvMaterial)
	b.sphere(core.NewVec3(1.2, 0, 5), 1, checkerMaterial)
	b.plane(core.NewVec3(0, 1.5, 8), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 8, 5, wall)

	b.scene.AddLight(lights.NewPointLight(core.NewVec3(0, 4, 2), core.NewColorRGB8(200, 200, 200)))
	return b.done()
}

// bumpNormalMap encodes normals that alternate left and right every period columns
func bumpNormalMap(size, period int) (*material.ImageTexture, error) {
	left := core.NewVec3(-0.3, 0, 1).Normalize()
	right := core.NewVec3(0.3, 0, 1).Normalize()

	pixels := make([]core.Color, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := left
			if (x/period)%2 == 1 {
				n = right
			}
			pixels[y*size+x] = core.NewColor((n.X+1)/2, (n.Y+1)/2, (n.Z+1)/2)
		}
	}
	return material.NewImageTexture(size, size, pixels)
}
