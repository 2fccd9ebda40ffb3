package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	dir := t.TempDir()
	sceneFile := filepath.Join(dir, "ball.json")
	if err := os.WriteFile(sceneFile, []byte(`{"spheres": [{"center": [0, 0, 5], "radius": 1}]}`), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"gloss scene", "gloss", false},
		{"textures scene", "textures", false},

		// Scene files
		{"direct JSON path", sceneFile, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", filepath.Join(dir, "nonexistent.json"), true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, 64, 48)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.Camera.Width != 64 || scene.Camera.Height != 48 {
				t.Errorf("Expected 64x48 camera, got %dx%d", scene.Camera.Width, scene.Camera.Height)
			}
		})
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"1,2,3", core.NewVec3(1, 2, 3), false},
		{" -0.5, 0 ,2.25 ", core.NewVec3(-0.5, 0, 2.25), false},
		{"1,2", core.Vec3{}, true},
		{"a,b,c", core.Vec3{}, true},
		{"", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if tt.expectError {
				if !errors.Is(err, core.ErrInvalidArgument) {
					t.Errorf("Expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestApplyCameraOptions(t *testing.T) {
	camera, err := geometry.NewCamera(geometry.DefaultCameraConfig(10, 10))
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	adjusted, err := applyCameraOptions(camera, cameraOptions{FOV: 60, Move: "1,0,0", Yaw: 90})
	if err != nil {
		t.Fatalf("applyCameraOptions failed: %v", err)
	}
	if math.Abs(adjusted.FocalLength-math.Sqrt(3)) > 1e-9 {
		t.Errorf("Expected focal length sqrt(3), got %f", adjusted.FocalLength)
	}
	if !adjusted.Position.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected position (1,0,0), got %v", adjusted.Position)
	}
	if adjusted.Target.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected yawed target (1,0,0), got %v", adjusted.Target)
	}

	pitched, err := applyCameraOptions(camera, cameraOptions{Pitch: -90})
	if err != nil {
		t.Fatalf("applyCameraOptions failed: %v", err)
	}
	if pitched.Target.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected pitched target (0,1,0), got %v", pitched.Target)
	}

	if _, err := applyCameraOptions(camera, cameraOptions{FOV: 190}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for fov 190, got %v", err)
	}
	if _, err := applyCameraOptions(camera, cameraOptions{Move: "1,2"}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for bad move, got %v", err)
	}
}

func TestFormatFrameStats(t *testing.T) {
	stats := renderer.RenderStats{
		TotalPixels: 400,
		Rows:        20,
		Workers:     2,
		Elapsed:     3 * time.Millisecond,
		Bands: []renderer.BandStats{
			{ID: 0, Y0: 0, Y1: 10, Duration: time.Millisecond},
			{ID: 1, Y0: 10, Y1: 20, Duration: 2 * time.Millisecond},
		},
	}

	out := formatFrameStats(stats)
	for _, want := range []string{"Band", "Render time", "0-9", "10-19", "50.0 %", "TOTAL", "2 workers", "3ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in stats table:\n%s", want, out)
		}
	}
}

func TestSavePNG(t *testing.T) {
	surface := renderer.NewSurface(3, 2)
	surface.Clear(core.SkyBlue.ToInt())
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := savePNG(path, surface); err != nil {
		t.Fatalf("savePNG failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty PNG")
	}

	if err := savePNG(filepath.Join(t.TempDir(), "missing", "frame.png"), surface); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}
