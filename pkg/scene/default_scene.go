package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

type builtinScene struct {
	description string
	create      func() *Scene
}

// builtinScenes maps scene names to their constructors
var builtinScenes = map[string]builtinScene{
	"default":       {"Red, green and blue spheres above a ground sphere with two lights", NewDefaultScene},
	"single-sphere": {"One red sphere in front of the camera under a white light", NewSingleSphereScene},
	"occluded":      {"A small sphere casting a shadow onto a larger one", NewOccludedScene},
}

// BuiltinSceneNames returns the names of all built-in scenes in sorted order
func BuiltinSceneNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltinScene creates a built-in scene by name
func NewBuiltinScene(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return builtin.create(), nil
}

// defaultCameraConfig looks down -Z at the origin from five units away
func defaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Position: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     60.0,
		Width:    800,
		Height:   600,
	}
}

// NewDefaultScene creates three colored spheres resting above a large ground sphere, lit by a
// white key light and a warm fill light
func NewDefaultScene() *Scene {
	s := NewScene()
	s.Name = "default"
	s.CameraConfig = defaultCameraConfig()

	red := material.NewMaterial(core.NewVec3(1.0, 0.3, 0.3))
	green := material.NewMaterial(core.NewVec3(0.3, 1.0, 0.3))
	blue := material.NewMaterial(core.NewVec3(0.3, 0.3, 1.0))
	ground := material.NewMaterial(core.NewVec3(0.8, 0.8, 0.8))

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, red))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-2.5, 0, -1), 1.0, green))
	s.AddSphere(geometry.NewSphere(core.NewVec3(2.5, 0, -1), 1.0, blue))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -101, 0), 100, ground))

	s.AddLight(lights.NewPointLight(core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 1), 0.8))
	s.AddLight(lights.NewPointLight(core.NewVec3(-5, 3, 3), core.NewVec3(1, 0.9, 0.8), 0.4))

	return s
}

// NewSingleSphereScene creates one red unit sphere at the origin with a single white light
func NewSingleSphereScene() *Scene {
	s := NewScene()
	s.Name = "single-sphere"
	s.CameraConfig = defaultCameraConfig()

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewMaterial(core.NewVec3(1, 0.3, 0.3))))
	s.AddLight(lights.NewPointLight(core.NewVec3(5, 5, 5), core.NewVec3(1, 1, 1), 0.8))

	return s
}

// NewOccludedScene places a small sphere between a light and a larger sphere so that the
// larger sphere carries a visible hard shadow
func NewOccludedScene() *Scene {
	s := NewScene()
	s.Name = "occluded"
	s.CameraConfig = defaultCameraConfig()
	s.CameraConfig.Position = core.NewVec3(0, 2, 6)

	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewMaterial(core.NewVec3(0.9, 0.9, 0.9))))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0.6, 2.5, 0.6), 0.35, material.NewMaterial(core.NewVec3(1.0, 0.6, 0.1))))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, -1001, 0), 1000, material.NewMaterial(core.NewVec3(0.5, 0.5, 0.6))))

	s.AddLight(lights.NewPointLight(core.NewVec3(2, 6, 2), core.NewVec3(1, 1, 1), 1.0))

	return s
}
