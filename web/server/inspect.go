package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	UV           [2]float64             `json:"uv"`
	Color        string                 `json:"color"` // Traced pixel color
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Rays         []InspectRay           `json:"rays"`
}

// InspectRay is a debug ray cast while tracing the inspected pixel
type InspectRay struct {
	Kind   string     `json:"kind"`
	Origin [3]float64 `json:"origin"`
	End    [3]float64 `json:"end"`
	Depth  int        `json:"depth"`
}

func vec3Array(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%06x", c.ToInt())
}

// extractMaterialInfo describes the constant parts of a material and the
// texture colors at uv
func extractMaterialInfo(mat *material.Material, uv core.Vec2) map[string]interface{} {
	properties := map[string]interface{}{
		"shininess":    mat.Shininess,
		"reflectivity": mat.Reflectivity,
		"gloss":        mat.Gloss,
		"gamma":        mat.Gamma,
		"normalMap":    mat.HasNormalMap(),
	}
	if mat.Ambient != nil {
		properties["ambient"] = hexColor(mat.Ambient.Sample(uv))
	}
	if mat.Diffuse != nil {
		properties["diffuse"] = hexColor(mat.Diffuse.Sample(uv))
	}
	if mat.Specular != nil {
		properties["specular"] = hexColor(mat.Specular.Sample(uv))
	}
	return properties
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(primitive geometry.Primitive) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := primitive.(type) {
	case *geometry.Sphere:
		properties["center"] = vec3Array(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["position"] = vec3Array(geom.Position)
		properties["x"] = vec3Array(geom.X)
		properties["y"] = vec3Array(geom.Y)
		properties["normal"] = vec3Array(geom.Normal)
		properties["width"] = geom.Width
		properties["height"] = geom.Height
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel traces the ray through the pixel and records every ray cast
// while shading it
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY, depth int, seed int64) (InspectResponse, error) {
	ray, err := sceneObj.Camera.GetRay(pixelX, pixelY)
	if err != nil {
		return InspectResponse{}, err
	}

	integ := integrator.NewWhittedIntegrator(sceneObj, integrator.DefaultConfig())
	rayLog := renderer.NewRayLog()
	color := integ.TraceColorDebug(ray, depth, core.NewSeededSampler(seed), rayLog)

	response := InspectResponse{Color: hexColor(color), Rays: []InspectRay{}}
	for _, r := range rayLog.Rays() {
		response.Rays = append(response.Rays, InspectRay{
			Kind:   string(r.Kind),
			Origin: vec3Array(r.Origin),
			End:    vec3Array(r.End),
			Depth:  r.Depth,
		})
	}

	hit, ok := integ.Trace(ray)
	if !ok {
		return response, nil
	}

	geometryType, geometryProps := extractGeometryInfo(hit.Primitive)
	response.Hit = true
	response.GeometryType = geometryType
	response.Point = vec3Array(hit.Point)
	response.Normal = vec3Array(hit.Normal)
	response.Distance = hit.Distance
	response.UV = [2]float64{hit.UV.X, hit.UV.Y}
	response.Properties = map[string]interface{}{
		"geometry": geometryProps,
		"material": extractMaterialInfo(hit.Primitive.Material(), hit.UV),
	}
	return response, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := inspectPixel(sceneObj, pixelX, pixelY, req.Depth, req.Seed)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}
	writeJSON(w, http.StatusOK, response)
}
