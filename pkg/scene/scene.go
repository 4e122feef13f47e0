package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// DefaultAmbient is the ambient color of a new scene
var DefaultAmbient = core.NewVec3(0.1, 0.1, 0.1)

// Scene contains all the elements needed for rendering.
// It must not be modified while a render pass is reading it.
type Scene struct {
	Name         string
	Spheres      []geometry.Sphere     // Primitives in insertion order
	Lights       []lights.PointLight   // Lights in insertion order
	Ambient      core.Vec3             // Ambient light color, never shadowed
	CameraConfig geometry.CameraConfig // Camera and image size for this scene
}

// Hit identifies the nearest primitive along a ray
type Hit struct {
	Index int     // Index into Scene.Spheres
	T     float64 // Ray parameter of the hit
}

// NewScene creates an empty scene with the default ambient color
func NewScene() *Scene {
	return &Scene{
		Spheres: make([]geometry.Sphere, 0),
		Lights:  make([]lights.PointLight, 0),
		Ambient: DefaultAmbient,
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(sphere geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// Camera returns the camera described by the scene's camera config
func (s *Scene) Camera() geometry.Camera {
	return geometry.NewCamera(s.CameraConfig)
}

// Intersect finds the closest sphere hit by the ray with t >= tMin.
// Each test uses the closest t found so far as its upper bound.
func (s *Scene) Intersect(ray core.Ray, tMin float64) (Hit, bool) {
	closest := Hit{Index: -1, T: math.Inf(1)}

	for i, sphere := range s.Spheres {
		if t, ok := sphere.Hit(ray, tMin, closest.T); ok {
			closest = Hit{Index: i, T: t}
		}
	}

	return closest, closest.Index != -1
}

// Hit finds the closest sphere hit by the ray using the default epsilon
func (s *Scene) Hit(ray core.Ray) (Hit, bool) {
	return s.Intersect(ray, geometry.DefaultTMin)
}

// IsInShadow reports whether any sphere lies strictly between point and the light position.
// Occluders beyond the light do not cast shadows.
func (s *Scene) IsInShadow(point, lightPosition core.Vec3) bool {
	toLight := lightPosition.Subtract(point)
	distanceToLight := toLight.Length()
	shadowRay := core.NewRay(point, toLight)

	if hit, ok := s.Intersect(shadowRay, geometry.DefaultTMin); ok {
		return hit.T < distanceToLight
	}
	return false
}

// Material returns the material of the sphere referenced by a hit
func (s *Scene) Material(hit Hit) material.Material {
	return s.Spheres[hit.Index].Material
}

// Validate checks the scene contents for values the renderer cannot use meaningfully
func (s *Scene) Validate() error {
	for i, sphere := range s.Spheres {
		if !(sphere.Radius > 0) {
			return fmt.Errorf("sphere %d: invalid radius %g: must be positive", i, sphere.Radius)
		}
	}
	for i, light := range s.Lights {
		if light.Intensity < 0 || math.IsNaN(light.Intensity) {
			return fmt.Errorf("light %d: invalid intensity %g: must be non-negative", i, light.Intensity)
		}
	}
	if err := s.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	return nil
}
