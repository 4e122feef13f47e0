package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// DefaultTMin is the self-intersection epsilon. Hits closer than this are ignored so that
// rays leaving a surface do not report that same surface.
const DefaultTMin = 0.001

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects the sphere with t in [tMin, tMax].
// The entry root is preferred; the exit root is only returned when the entry root is out of range.
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2.0 * a)
	t1 := (-b + sqrtD) / (2.0 * a)

	if t0 >= tMin && t0 <= tMax {
		return t0, true
	}
	if t1 >= tMin && t1 <= tMax {
		return t1, true
	}
	return 0, false
}

// Intersect tests the ray against the sphere with the default interval [DefaultTMin, +Inf]
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	return s.Hit(ray, DefaultTMin, math.Inf(1))
}

// Normal returns the outward unit normal at a point assumed to lie on the surface
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
