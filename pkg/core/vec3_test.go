package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Z cross X", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"parallel", NewVec3(2, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	result := Vec3{}.Normalize()
	if !result.Equals(Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", result)
	}
}

func TestVec3_Normalize(t *testing.T) {
	result := NewVec3(3, 4, 0).Normalize()
	if math.Abs(result.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", result.Length())
	}
	if !result.Equals(NewVec3(0.6, 0.8, 0)) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", result)
	}
}

func TestReflect(t *testing.T) {
	// Ray heading down and to the right bounces off a floor
	incoming := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	reflected := Reflect(incoming, normal)
	expected := NewVec3(1, 1, 0).Normalize()
	if !reflected.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 10))
	if !ray.Direction.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Expected normalized direction, got %v", ray.Direction)
	}
	if !ray.At(2).Equals(NewVec3(1, 2, 5)) {
		t.Errorf("Expected At(2) = (1,2,5), got %v", ray.At(2))
	}
}

func TestNewOffsetRay(t *testing.T) {
	ray := NewOffsetRay(NewVec3(0, 0, 0), NewVec3(0, 2, 0), 0.01)
	if !ray.Origin.Equals(NewVec3(0, 0.01, 0)) {
		t.Errorf("Expected origin offset along direction, got %v", ray.Origin)
	}
	if !ray.Direction.Equals(NewVec3(0, 1, 0)) {
		t.Errorf("Expected unit direction, got %v", ray.Direction)
	}
}
