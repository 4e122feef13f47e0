package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// LambertCosine returns max(0, N·L) for a unit normal and a unit direction toward the light
func LambertCosine(normal, toLight core.Vec3) float64 {
	return max(0.0, normal.Dot(toLight))
}

// Diffuse returns the Lambertian reflection of a light: color ⊙ lightColor · (cosθ · intensity).
// No 1/π factor and no distance falloff are applied.
func (m Material) Diffuse(normal, toLight, lightColor core.Vec3, intensity float64) core.Vec3 {
	cosTheta := LambertCosine(normal, toLight)
	return m.Color.MultiplyVec(lightColor).Multiply(cosTheta * intensity)
}
