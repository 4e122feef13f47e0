package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// MaxVisualizedDistance is the hit distance that maps to black in distance mode
const MaxVisualizedDistance = 20.0

func shadeDistance(ray core.Ray, s *scene.Scene) Sample {
	hit, ok := s.Hit(ray)
	if !ok {
		return miss()
	}

	brightness := 1.0 - min(1.0, hit.T/MaxVisualizedDistance)
	return Sample{
		Color: core.NewVec3(brightness, brightness, brightness),
		Hit:   true,
	}
}

func shadeMaterial(ray core.Ray, s *scene.Scene) Sample {
	hit, ok := s.Hit(ray)
	if !ok {
		return miss()
	}
	return Sample{Color: s.Material(hit).Color, Hit: true}
}
