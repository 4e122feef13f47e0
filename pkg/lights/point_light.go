package lights

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// PointLight is an infinitesimal light with no distance falloff
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// NewWhitePointLight creates a white point light of unit intensity
func NewWhitePointLight(position core.Vec3) PointLight {
	return NewPointLight(position, core.NewVec3(1, 1, 1), 1.0)
}

// DirectionFrom returns the unit direction from point toward the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// Illuminate returns the diffuse contribution of this light at a surface point
func (l PointLight) Illuminate(point, normal core.Vec3, mat material.Material) core.Vec3 {
	return mat.Diffuse(normal, l.DirectionFrom(point), l.Color, l.Intensity)
}
