package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Default camera resolution for scene files that omit it
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Vec3Cfg is a JSON [x, y, z] triple
type Vec3Cfg [3]float64

func (v Vec3Cfg) Vec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// ColorCfg is a JSON [r, g, b] triple with channels in [0,1]
type ColorCfg [3]float64

func (c ColorCfg) Color() core.Color { return core.NewColor(c[0], c[1], c[2]) }

type CameraCfg struct {
	Position Vec3Cfg  `json:"position"`
	Target   *Vec3Cfg `json:"target,omitempty"` // Viewing direction; defaults to +Z
	Up       *Vec3Cfg `json:"up,omitempty"`     // Defaults to +Y
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
	FOV      float64  `json:"fov,omitempty"` // Degrees; defaults to 90
}

type TextureCfg struct {
	Type     string   `json:"type"` // solid, checker, image or uv
	Color    ColorCfg `json:"color"`
	Even     ColorCfg `json:"even"`
	Odd      ColorCfg `json:"odd"`
	CellSize float64  `json:"cellSize,omitempty"`
	Path     string   `json:"path,omitempty"` // Relative paths resolve against the scene file
}

type MaterialCfg struct {
	Preset       string      `json:"preset,omitempty"` // default or mirror; fields below override it
	Ambient      *TextureCfg `json:"ambient,omitempty"`
	Diffuse      *TextureCfg `json:"diffuse,omitempty"`
	Specular     *TextureCfg `json:"specular,omitempty"`
	NormalMap    *TextureCfg `json:"normalMap,omitempty"`
	Shininess    *float64    `json:"shininess,omitempty"`
	Reflectivity *float64    `json:"reflectivity,omitempty"`
	Gloss        float64     `json:"gloss,omitempty"`
	Gamma        float64     `json:"gamma,omitempty"`
}

type SphereCfg struct {
	Center   Vec3Cfg `json:"center"`
	Radius   float64 `json:"radius"`
	Material string  `json:"material"`
}

type PlaneCfg struct {
	Position Vec3Cfg `json:"position"`
	X        Vec3Cfg `json:"x"`
	Y        Vec3Cfg `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Material string  `json:"material"`
}

type LightCfg struct {
	Type      string   `json:"type"` // point, directional or spot
	Position  Vec3Cfg  `json:"position"`
	Direction Vec3Cfg  `json:"direction"`
	Angle     float64  `json:"angle,omitempty"`
	Color     ColorCfg `json:"color"`
}

// Config is the JSON scene description
type Config struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Group       string                 `json:"group,omitempty"`
	Camera      CameraCfg              `json:"camera"`
	Materials   map[string]MaterialCfg `json:"materials,omitempty"`
	Spheres     []SphereCfg            `json:"spheres,omitempty"`
	Planes      []PlaneCfg             `json:"planes,omitempty"`
	Lights      []LightCfg             `json:"lights"`

	baseDir string
}

// LoadConfig reads a JSON scene file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes a JSON scene description and fills in camera defaults
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Camera.Width <= 0 {
		cfg.Camera.Width = DefaultWidth
	}
	if cfg.Camera.Height <= 0 {
		cfg.Camera.Height = DefaultHeight
	}
	if cfg.Camera.FOV == 0 {
		cfg.Camera.FOV = 90
	}
	return &cfg, nil
}

// Build validates the description and constructs the scene
func (c *Config) Build() (*Scene, error) {
	camera, err := c.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	materials := make(map[string]*material.Material, len(c.Materials))
	for name, mc := range c.Materials {
		mat, err := mc.Build(c.baseDir)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}
	lookup := func(name string) (*material.Material, error) {
		if name == "" {
			return material.Default(), nil
		}
		if mat, ok := materials[name]; ok {
			return mat, nil
		}
		return nil, fmt.Errorf("unknown material %q: %w", name, core.ErrInvalidArgument)
	}

	s := New(camera)
	for i, sc := range c.Spheres {
		mat, err := lookup(sc.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		sphere, err := geometry.NewSphere(sc.Center.Vec3(), sc.Radius, mat)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Add(sphere)
	}
	for i, pc := range c.Planes {
		mat, err := lookup(pc.Material)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		plane, err := geometry.NewPlane(pc.Position.Vec3(), pc.X.Vec3(), pc.Y.Vec3(), pc.Width, pc.Height, mat)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		s.Add(plane)
	}
	for i, lc := range c.Lights {
		light, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(light)
	}
	return s, nil
}

func (cc CameraCfg) Build() (geometry.Camera, error) {
	config := geometry.DefaultCameraConfig(cc.Width, cc.Height)
	config.Position = cc.Position.Vec3()
	config.FOV = cc.FOV
	if cc.Target != nil {
		config.Target = cc.Target.Vec3()
	}
	if cc.Up != nil {
		config.Up = cc.Up.Vec3()
	}
	return geometry.NewCamera(config)
}

func (mc MaterialCfg) Build(baseDir string) (*material.Material, error) {
	var mat *material.Material
	switch mc.Preset {
	case "", "default":
		mat = material.Default()
	case "mirror":
		mat = material.Mirror()
	default:
		return nil, fmt.Errorf("unknown preset %q: %w", mc.Preset, core.ErrInvalidArgument)
	}

	channels := []struct {
		cfg    *TextureCfg
		target *material.Texture
	}{
		{mc.Ambient, &mat.Ambient},
		{mc.Diffuse, &mat.Diffuse},
		{mc.Specular, &mat.Specular},
		{mc.NormalMap, &mat.NormalMap},
	}
	for _, ch := range channels {
		if ch.cfg == nil {
			continue
		}
		texture, err := ch.cfg.Build(baseDir)
		if err != nil {
			return nil, err
		}
		*ch.target = texture
	}

	if mc.Shininess != nil {
		mat.Shininess = *mc.Shininess
	}
	if mc.Reflectivity != nil {
		mat.Reflectivity = max(0, min(*mc.Reflectivity, 1))
	}
	if mc.Gloss < 0 {
		return nil, fmt.Errorf("gloss %g: %w", mc.Gloss, core.ErrInvalidArgument)
	}
	mat.Gloss = mc.Gloss
	if mc.Gamma > 0 {
		mat.Gamma = mc.Gamma
	}
	return mat, nil
}

func (tc TextureCfg) Build(baseDir string) (material.Texture, error) {
	switch tc.Type {
	case "", "solid":
		return material.NewSolidColor(tc.Color.Color()), nil
	case "checker":
		return material.NewCheckerboard(tc.Even.Color(), tc.Odd.Color(), tc.CellSize)
	case "uv":
		return material.NewUVDebugTexture(256, 256), nil
	case "image":
		path := tc.Path
		if path == "" {
			return nil, fmt.Errorf("image texture without path: %w", core.ErrInvalidArgument)
		}
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		return loaders.LoadImage(path)
	default:
		return nil, fmt.Errorf("unknown texture type %q: %w", tc.Type, core.ErrInvalidArgument)
	}
}

func (lc LightCfg) Build() (lights.Light, error) {
	switch lc.Type {
	case "", string(lights.LightTypePoint):
		return lights.NewPointLight(lc.Position.Vec3(), lc.Color.Color()), nil
	case string(lights.LightTypeDirectional):
		if lc.Direction.Vec3().LengthSquared() == 0 {
			return nil, fmt.Errorf("directional light needs a direction: %w", core.ErrInvalidArgument)
		}
		return lights.NewDirectionalLight(lc.Direction.Vec3(), lc.Color.Color()), nil
	case string(lights.LightTypeSpot):
		if lc.Direction.Vec3().LengthSquared() == 0 {
			return nil, fmt.Errorf("spot light needs a direction: %w", core.ErrInvalidArgument)
		}
		return lights.NewSpotLight(lc.Position.Vec3(), lc.Direction.Vec3(), lc.Angle, lc.Color.Color()), nil
	default:
		return nil, fmt.Errorf("unknown light type %q: %w", lc.Type, core.ErrInvalidArgument)
	}
}
