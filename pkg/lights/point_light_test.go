package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Illuminate(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 4, 0), core.White)

	dir, distSq := light.Illuminate(core.NewVec3(0, 1, 0))
	if !dir.Equals(core.NewVec3(0, 1, 0)) {
		t.Errorf("Expected direction (0,1,0), got %v", dir)
	}
	if math.Abs(distSq-9) > 1e-9 {
		t.Errorf("Expected squared distance 9, got %f", distSq)
	}
}

func TestLightTypes(t *testing.T) {
	tests := []struct {
		light    Light
		expected LightType
	}{
		{NewPointLight(core.NewVec3(0, 0, 0), core.White), LightTypePoint},
		{NewDirectionalLight(core.NewVec3(0, -1, 0), core.White), LightTypeDirectional},
		{NewSpotLight(core.NewVec3(0, 0, 0), core.NewVec3(0, -2, 0), 30, core.White), LightTypeSpot},
	}

	for _, tt := range tests {
		if tt.light.Type() != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, tt.light.Type())
		}
		if tt.light.Intensity() != core.White {
			t.Errorf("%s: expected white intensity, got %v", tt.expected, tt.light.Intensity())
		}
	}
}

func TestNewSpotLight_NormalizesDirection(t *testing.T) {
	spot := NewSpotLight(core.NewVec3(0, 0, 0), core.NewVec3(0, -2, 0), 30, core.White)
	if !spot.Direction.Equals(core.NewVec3(0, -1, 0)) {
		t.Errorf("Expected unit direction, got %v", spot.Direction)
	}
}
