package material

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCheckerboard_Sample(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	checker, err := NewCheckerboard(white, black, 0.25)
	if err != nil {
		t.Fatalf("NewCheckerboard failed: %v", err)
	}

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Color
	}{
		{"origin cell", core.NewVec2(0.1, 0.1), white},
		{"next cell in u", core.NewVec2(0.3, 0.1), black},
		{"next cell in v", core.NewVec2(0.1, 0.3), black},
		{"diagonal cell", core.NewVec2(0.3, 0.3), white},
		{"negative u", core.NewVec2(-0.1, 0.1), black},
		{"far cell", core.NewVec2(0.9, 0.6), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := checker.Sample(tt.uv); result != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

func TestNewCheckerboard_InvalidCellSize(t *testing.T) {
	for _, size := range []float64{0, -1} {
		if _, err := NewCheckerboard(core.White, core.Black, size); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("Cell size %g: expected ErrInvalidArgument, got %v", size, err)
		}
	}
}

func TestUVDebugTexture(t *testing.T) {
	texture := NewUVDebugTexture(16, 16)

	// Bottom-left is (u=0, v=0) -> black, top-right is (1, 1) -> yellow
	if c := texture.Sample(core.NewVec2(0, 0)); c != core.NewColor(0, 0, 0) {
		t.Errorf("Expected black at UV(0,0), got %v", c)
	}
	if c := texture.Sample(core.NewVec2(1, 1)); c != core.NewColor(1, 1, 0) {
		t.Errorf("Expected yellow at UV(1,1), got %v", c)
	}
}
