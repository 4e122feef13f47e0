package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func shadeDiffuse(ray core.Ray, s *scene.Scene) Sample {
	return shadeLambertian(ray, s, false)
}

func shadeShadow(ray core.Ray, s *scene.Scene) Sample {
	return shadeLambertian(ray, s, true)
}

// shadeLambertian accumulates ambient plus the diffuse term of every light in insertion order.
// With shadows enabled, a light is skipped entirely when the hit point cannot see it.
// The result is not clamped.
func shadeLambertian(ray core.Ray, s *scene.Scene, shadows bool) Sample {
	hit, ok := s.Hit(ray)
	if !ok {
		return miss()
	}

	sphere := s.Spheres[hit.Index]
	hitPoint := ray.At(hit.T)
	normal := sphere.Normal(hitPoint)

	result := Sample{Hit: true}
	color := sphere.Material.Ambient(s.Ambient)

	for _, light := range s.Lights {
		if shadows {
			result.ShadowRays++
			if s.IsInShadow(hitPoint, light.Position) {
				continue
			}
		}
		color = color.Add(light.Illuminate(hitPoint, normal, sphere.Material))
	}

	result.Color = color
	return result
}
