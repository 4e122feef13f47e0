package material

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Material describes the surface of a primitive. The only attribute is its base reflectance.
type Material struct {
	Color core.Vec3 // Base color (RGB), not clamped
}

// NewMaterial creates a material with the given base color
func NewMaterial(color core.Vec3) Material {
	return Material{Color: color}
}

// DefaultMaterial returns a white material
func DefaultMaterial() Material {
	return Material{Color: core.NewVec3(1, 1, 1)}
}

// Ambient returns the constant ambient reflection: ambient ⊙ color
func (m Material) Ambient(ambient core.Vec3) core.Vec3 {
	return ambient.MultiplyVec(m.Color)
}
