package material

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TestImageTextureSample tests basic texture sampling with the V flip
func TestImageTextureSample(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	pixels := []core.Color{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	}
	texture, err := NewImageTexture(2, 2, pixels)
	if err != nil {
		t.Fatalf("NewImageTexture failed: %v", err)
	}

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Color
	}{
		{"bottom-left maps to row 1", core.NewVec2(0.1, 0.1), black},
		{"bottom-right maps to row 1", core.NewVec2(0.9, 0.1), white},
		{"top-left maps to row 0", core.NewVec2(0.1, 0.9), white},
		{"top-right maps to row 0", core.NewVec2(0.9, 0.9), black},
		{"v=0 is the bottom row", core.NewVec2(0, 0), black},
		{"v=1 is the top row", core.NewVec2(0, 1), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.Sample(tt.uv)
			if result != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
			}
		})
	}
}

// TestImageTextureClamping tests that UVs outside [0,1] clamp to the edge
func TestImageTextureClamping(t *testing.T) {
	// 3x1 strip: red, green, blue
	red := core.NewColor(1, 0, 0)
	green := core.NewColor(0, 1, 0)
	blue := core.NewColor(0, 0, 1)
	texture, err := NewImageTexture(3, 1, []core.Color{red, green, blue})
	if err != nil {
		t.Fatalf("NewImageTexture failed: %v", err)
	}

	tests := []struct {
		uv       core.Vec2
		expected core.Color
	}{
		{core.NewVec2(-0.5, 0.5), red},
		{core.NewVec2(0.5, 0.5), green},
		{core.NewVec2(1.5, 0.5), blue},
		{core.NewVec2(0.5, -3), green},
		{core.NewVec2(0.5, 7), green},
	}

	for _, tt := range tests {
		if result := texture.Sample(tt.uv); result != tt.expected {
			t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, result)
		}
	}
}

// TestImageTextureNearestPixel tests that sampling rounds to the nearest pixel
func TestImageTextureNearestPixel(t *testing.T) {
	// Create a 4x4 gradient
	pixels := make([]core.Color, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			val := float64(y*4+x) / 15.0
			pixels[y*4+x] = core.NewColor(val, val, val)
		}
	}
	texture, err := NewImageTexture(4, 4, pixels)
	if err != nil {
		t.Fatalf("NewImageTexture failed: %v", err)
	}

	// u=0.3 -> x=round(0.9)=1, v=0.6 -> row=round(1.2)=1
	result := texture.Sample(core.NewVec2(0.3, 0.6))
	expected := pixels[1*4+1]
	if result != expected {
		t.Errorf("Expected pixel (1,1) %v, got %v", expected, result)
	}

	// u=1, v=0 -> bottom-right pixel (3,3)
	result = texture.Sample(core.NewVec2(1, 0))
	if result != pixels[15] {
		t.Errorf("Expected bottom-right pixel %v, got %v", pixels[15], result)
	}
}

func TestNewImageTexture_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pixels        []core.Color
	}{
		{"zero width", 0, 1, nil},
		{"negative height", 1, -1, nil},
		{"pixel count mismatch", 2, 2, make([]core.Color, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageTexture(tt.width, tt.height, tt.pixels)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

// TestSolidColor tests that a solid color ignores UV
func TestSolidColor(t *testing.T) {
	color := core.NewColor(0.7, 0.3, 0.1)
	solid := NewSolidColor(color)

	for _, uv := range []core.Vec2{core.NewVec2(0, 0), core.NewVec2(1, 1), core.NewVec2(-4, 9)} {
		if result := solid.Sample(uv); result != color {
			t.Errorf("SolidColor at UV%v: expected %v, got %v", uv, color, result)
		}
	}
}
