package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays. It is a value type: Move, Rotate and
// WithFOV return a new camera and leave the receiver untouched.
type Camera struct {
	Position    core.Vec3
	Target      core.Vec3 // Viewing direction, not a look-at point
	Up          core.Vec3
	Width       int // Resolution in pixels
	Height      int
	FocalLength float64
}

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Position core.Vec3
	Target   core.Vec3
	Up       core.Vec3
	Width    int
	Height   int
	FOV      float64 // Horizontal-ish field of view in degrees
}

// FocalLengthForFOV converts a field of view in degrees to a focal length
func FocalLengthForFOV(fov float64) float64 {
	return 1 / math.Tan(fov*math.Pi/360)
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return Camera{}, fmt.Errorf("camera resolution %dx%d: %w", config.Width, config.Height, core.ErrInvalidArgument)
	}
	if !(config.FOV > 0 && config.FOV < 180) {
		return Camera{}, fmt.Errorf("camera fov %g: %w", config.FOV, core.ErrInvalidArgument)
	}
	if config.Target.LengthSquared() == 0 || config.Up.LengthSquared() == 0 {
		return Camera{}, fmt.Errorf("camera target and up must be non-zero: %w", core.ErrInvalidArgument)
	}
	return Camera{
		Position:    config.Position,
		Target:      config.Target.Normalize(),
		Up:          config.Up.Normalize(),
		Width:       config.Width,
		Height:      config.Height,
		FocalLength: FocalLengthForFOV(config.FOV),
	}, nil
}

// DefaultCameraConfig looks down +Z from the origin with +Y up
func DefaultCameraConfig(width, height int) CameraConfig {
	return CameraConfig{
		Position: core.NewVec3(0, 0, 0),
		Target:   core.NewVec3(0, 0, 1),
		Up:       core.NewVec3(0, 1, 0),
		Width:    width,
		Height:   height,
		FOV:      90,
	}
}

// Right returns normalize(Up × Target)
func (c Camera) Right() core.Vec3 {
	return c.Up.Cross(c.Target).Normalize()
}

// GetRay returns the primary ray through pixel (x, y); row 0 is the top of the image
func (c Camera) GetRay(x, y int) (core.Ray, error) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return core.Ray{}, fmt.Errorf("pixel (%d, %d) outside %dx%d: %w", x, y, c.Width, c.Height, core.ErrInvalidArgument)
	}

	dx := normalizedOffset(x, c.Width) * float64(c.Width) / float64(c.Height)
	dy := -normalizedOffset(y, c.Height)

	direction := c.Target.Multiply(c.FocalLength).
		Add(c.Right().Multiply(dx)).
		Add(c.Up.Multiply(dy))

	return core.NewRay(c.Position, direction), nil
}

// normalizedOffset maps a pixel index to [-0.5, 0.5]
func normalizedOffset(i, size int) float64 {
	if size == 1 {
		return 0
	}
	return float64(i)/float64(size-1) - 0.5
}

// Move returns a camera translated by delta
func (c Camera) Move(delta core.Vec3) Camera {
	c.Position = c.Position.Add(delta)
	return c
}

// Rotate returns a camera whose target and up vectors are rotated by
// degrees around axis. A zero axis leaves the camera unchanged.
func (c Camera) Rotate(axis core.Vec3, degrees float64) Camera {
	if axis.LengthSquared() == 0 {
		return c
	}
	axis = axis.Normalize()
	q := mgl64.QuatRotate(mgl64.DegToRad(degrees), mgl64.Vec3{axis.X, axis.Y, axis.Z})

	c.Target = fromMgl(q.Rotate(toMgl(c.Target)))
	c.Up = fromMgl(q.Rotate(toMgl(c.Up)))
	return c
}

// WithFOV returns a camera with the focal length for the given field of view
func (c Camera) WithFOV(fov float64) Camera {
	c.FocalLength = FocalLengthForFOV(fov)
	return c
}

// WithResolution returns a camera rendering at a different pixel size
func (c Camera) WithResolution(width, height int) Camera {
	c.Width = width
	c.Height = height
	return c
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
