package loaders

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// testImage returns a 2x2 image: white, red on top; green, blue below
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, testImage()); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	texture, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if texture.Width != 2 || texture.Height != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", texture.Width, texture.Height)
	}
	if len(texture.Pixels) != 4 {
		t.Errorf("Expected 4 pixels, got %d", len(texture.Pixels))
	}

	checkPixels(t, texture.Pixels)

	// v=1 is the top row of the image
	if got := texture.Sample(core.NewVec2(0, 1)); !closeColor(got, core.White) {
		t.Errorf("Expected white at uv (0,1), got %v", got)
	}
	if got := texture.Sample(core.NewVec2(1, 0)); !closeColor(got, core.NewColor(0, 0, 1)) {
		t.Errorf("Expected blue at uv (1,0), got %v", got)
	}
}

func TestDecodeImage_Formats(t *testing.T) {
	tests := []struct {
		name   string
		encode func(w io.Writer, img image.Image) error
	}{
		{"png", png.Encode},
		{"bmp", bmp.Encode},
		{"tiff", func(w io.Writer, img image.Image) error { return tiff.Encode(w, img, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf, testImage()); err != nil {
				t.Fatalf("Failed to encode %s: %v", tt.name, err)
			}

			texture, err := DecodeImage(&buf)
			if err != nil {
				t.Fatalf("DecodeImage failed: %v", err)
			}
			checkPixels(t, texture.Pixels)
		})
	}
}

func TestDecodeImage_Garbage(t *testing.T) {
	if _, err := DecodeImage(strings.NewReader("not an image")); err == nil {
		t.Error("Expected error decoding garbage, got nil")
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func checkPixels(t *testing.T, pixels []core.Color) {
	t.Helper()
	expected := []struct {
		name  string
		color core.Color
	}{
		{"Top-left (white)", core.White},
		{"Top-right (red)", core.NewColor(1, 0, 0)},
		{"Bottom-left (green)", core.NewColor(0, 1, 0)},
		{"Bottom-right (blue)", core.NewColor(0, 0, 1)},
	}
	for i, e := range expected {
		if !closeColor(pixels[i], e.color) {
			t.Errorf("%s: expected %v, got %v", e.name, e.color, pixels[i])
		}
	}
}

func closeColor(a, b core.Color) bool {
	const tolerance = 0.01
	return abs(a.R-b.R) <= tolerance && abs(a.G-b.G) <= tolerance && abs(a.B-b.B) <= tolerance
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
