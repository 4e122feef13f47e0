package lights

import (
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

func TestNewWhitePointLight(t *testing.T) {
	light := NewWhitePointLight(core.NewVec3(1, 2, 3))

	if light.Color != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white light, got %v", light.Color)
	}
	if light.Intensity != 1.0 {
		t.Errorf("Expected intensity 1, got %f", light.Intensity)
	}
}

func TestPointLight_DirectionFrom(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 3, 4), core.NewVec3(1, 1, 1), 1)
	point := core.NewVec3(0, 0, 0)

	if got := light.DirectionFrom(point); !got.Equals(core.NewVec3(0, 0.6, 0.8), 1e-12) {
		t.Errorf("Expected direction (0,0.6,0.8), got %v", got)
	}
}

func TestPointLight_Illuminate(t *testing.T) {
	mat := material.NewMaterial(core.NewVec3(1, 0.3, 0.3))
	normal := core.NewVec3(0, 0, 1)
	point := core.NewVec3(0, 0, 1)

	tests := []struct {
		name     string
		light    PointLight
		expected core.Vec3
	}{
		{
			name:     "light straight above, no falloff",
			light:    NewPointLight(core.NewVec3(0, 0, 100), core.NewVec3(1, 1, 1), 0.8),
			expected: core.NewVec3(0.8, 0.24, 0.24),
		},
		{
			name:     "colored light",
			light:    NewPointLight(core.NewVec3(0, 0, 2), core.NewVec3(0.5, 1, 0), 1),
			expected: core.NewVec3(0.5, 0.3, 0),
		},
		{
			name:     "light below horizon",
			light:    NewPointLight(core.NewVec3(0, 0, -5), core.NewVec3(1, 1, 1), 1),
			expected: core.NewVec3(0, 0, 0),
		},
		{
			name:     "zero intensity",
			light:    NewPointLight(core.NewVec3(0, 0, 5), core.NewVec3(1, 1, 1), 0),
			expected: core.NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.light.Illuminate(point, normal, mat)
			if !got.Equals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
