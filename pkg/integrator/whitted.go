package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// minGlossAlignment rejects perturbed gloss directions that stray too far from the mirror direction
const minGlossAlignment = 0.1

// WhittedIntegrator implements recursive Whitted-style ray tracing with
// Phong direct lighting, hard shadows and mirror/glossy reflection
type WhittedIntegrator struct {
	scene  *scene.Scene
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator over a scene
func NewWhittedIntegrator(s *scene.Scene, config Config) *WhittedIntegrator {
	return &WhittedIntegrator{
		scene:  s,
		config: config,
	}
}

// Trace scans every primitive and returns the nearest hit
func (w *WhittedIntegrator) Trace(ray core.Ray) (*geometry.Intersection, bool) {
	var closest *geometry.Intersection
	for _, primitive := range w.scene.Primitives {
		hit, ok := primitive.Intersect(ray)
		if !ok || hit.Distance < 0 {
			continue
		}
		if closest == nil || hit.Distance < closest.Distance {
			closest = hit
		}
	}
	return closest, closest != nil
}

// TraceColor computes the color seen along a ray with the given recursion budget
func (w *WhittedIntegrator) TraceColor(ray core.Ray, depth int, ignore []geometry.Primitive, sampler core.Sampler) core.Color {
	return w.traceColor(ray, DebugPrimary, depth, ignore, samplerOrDefault(sampler), nil)
}

// TraceColorDebug computes the same color as TraceColor with an empty
// ignore set, recording every ray cast along the way
func (w *WhittedIntegrator) TraceColorDebug(ray core.Ray, depth int, sampler core.Sampler, sink DebugSink) core.Color {
	return w.traceColor(ray, DebugPrimary, depth, nil, samplerOrDefault(sampler), sink)
}

func (w *WhittedIntegrator) traceColor(ray core.Ray, kind DebugKind, depth int, ignore []geometry.Primitive, sampler core.Sampler, sink DebugSink) core.Color {
	if depth <= 0 {
		return core.Black
	}

	hit, isHit := w.Trace(ray)
	if sink != nil {
		w.record(sink, kind, ray, hit, depth)
	}
	if !isHit {
		return w.config.SkyColor
	}
	if containsPrimitive(ignore, hit.Primitive) {
		return core.Black
	}

	mat := hit.Primitive.Material()
	diffuse, specular := w.directLighting(ray, hit, depth, sink)

	if mat.Reflectivity > 0 {
		reflectColor := w.reflectedColor(ray, hit, depth, ignore, sampler, sink)
		specular = specular.Add(reflectColor.Scale(mat.Reflectivity))
	}

	ambient := mat.Ambient.Sample(hit.UV).Mul(lights.Ambient)
	return ambient.Add(diffuse).Add(specular).Scale(mat.Gamma)
}

// directLighting accumulates Phong diffuse and specular terms from every
// unoccluded point light
func (w *WhittedIntegrator) directLighting(ray core.Ray, hit *geometry.Intersection, depth int, sink DebugSink) (core.Color, core.Color) {
	mat := hit.Primitive.Material()
	diffuse, specular := core.Black, core.Black

	diffuseColor := mat.Diffuse.Sample(hit.UV)
	specularColor := mat.Specular.Sample(hit.UV)
	view := ray.Origin.Subtract(hit.Point).Normalize()

	for _, light := range w.scene.PointLights() {
		lightDir, distSq := light.Illuminate(hit.Point)

		shadowRay := core.NewOffsetRay(hit.Point, lightDir, w.config.Epsilon)
		occluder, blocked := w.Trace(shadowRay)
		blocked = blocked && occluder.Distance*occluder.Distance < distSq
		if sink != nil {
			end := light.Position
			if blocked {
				end = occluder.Point
			}
			sink.Record(DebugRay{Kind: DebugShadow, Origin: shadowRay.Origin, End: end, Depth: depth})
		}
		if blocked {
			continue
		}

		attenuation := 1 / (distSq * w.config.AttenuationK)

		lambert := math.Max(0, lightDir.Dot(hit.Normal))
		diffuse = diffuse.Add(diffuseColor.Mul(light.Color).Scale(lambert * attenuation))

		reflected := core.Reflect(lightDir.Negate(), hit.Normal)
		phong := math.Pow(math.Max(0, reflected.Dot(view)), mat.Shininess)
		specular = specular.Add(specularColor.Mul(light.Color).Scale(phong * attenuation))
	}

	return diffuse, specular
}

// reflectedColor traces the mirror reflection, or the average of jittered
// reflections for glossy materials. The current primitive joins the ignore set.
func (w *WhittedIntegrator) reflectedColor(ray core.Ray, hit *geometry.Intersection, depth int, ignore []geometry.Primitive, sampler core.Sampler, sink DebugSink) core.Color {
	mat := hit.Primitive.Material()
	mirror := core.Reflect(ray.Direction, hit.Normal).Normalize()

	nextIgnore := make([]geometry.Primitive, len(ignore), len(ignore)+1)
	copy(nextIgnore, ignore)
	nextIgnore = append(nextIgnore, hit.Primitive)

	if mat.Gloss <= 0 || w.config.GlossSamples <= 0 {
		reflectRay := core.NewOffsetRay(hit.Point, mirror, w.config.Epsilon)
		return w.traceColor(reflectRay, DebugReflection, depth-1, nextIgnore, sampler, sink)
	}

	samples := make([]core.Color, w.config.GlossSamples)
	for i := range samples {
		direction := glossDirection(mirror, mat.Gloss, sampler)
		glossRay := core.NewOffsetRay(hit.Point, direction, w.config.Epsilon)
		samples[i] = w.traceColor(glossRay, DebugGloss, depth-1, nextIgnore, sampler, sink)
	}
	return core.Average(samples...)
}

// glossDirection perturbs the mirror direction by a random vector scaled by
// gloss, resampling until it stays within the forward cone
func glossDirection(mirror core.Vec3, gloss float64, sampler core.Sampler) core.Vec3 {
	for {
		p := mirror.Add(core.RandomUnitVector(sampler).Multiply(gloss)).Normalize()
		if p.Dot(mirror) > minGlossAlignment {
			return p
		}
	}
}

func (w *WhittedIntegrator) record(sink DebugSink, kind DebugKind, ray core.Ray, hit *geometry.Intersection, depth int) {
	end := ray.At(missLength)
	if hit != nil {
		end = hit.Point
	}
	sink.Record(DebugRay{Kind: kind, Origin: ray.Origin, End: end, Depth: depth})
}

func containsPrimitive(set []geometry.Primitive, p geometry.Primitive) bool {
	for _, s := range set {
		if s == p {
			return true
		}
	}
	return false
}

// samplerOrDefault supplies a fixed-seed sampler to callers that do not
// need randomness, such as tests of non-glossy scenes
func samplerOrDefault(sampler core.Sampler) core.Sampler {
	if sampler == nil {
		return core.NewSeededSampler(0)
	}
	return sampler
}
