package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/lights"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/material"
)

// NewPBRTScene creates a scene from a scene file
func NewPBRTScene(path string) (*Scene, error) {
	file, err := loaders.LoadPBRT(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return FromSceneFile(name, file)
}

// FromSceneFile converts parsed scene file content into a validated scene.
// Settings the file leaves out fall back to the default scene's camera and ambient light,
// and spheres without a material are white.
func FromSceneFile(name string, file *loaders.SceneFile) (*Scene, error) {
	s := NewScene()
	s.Name = name
	s.CameraConfig = convertCamera(file)

	if file.Ambient != nil {
		s.Ambient = *file.Ambient
	}

	for _, shape := range file.Spheres {
		mat := material.DefaultMaterial()
		if shape.Color != nil {
			mat = material.NewMaterial(*shape.Color)
		}
		s.AddSphere(geometry.NewSphere(shape.Center, shape.Radius, mat))
	}

	for _, source := range file.PointLights {
		s.AddLight(lights.NewPointLight(source.Position, source.Color, source.Intensity))
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", name, err)
	}
	return s, nil
}

func convertCamera(file *loaders.SceneFile) geometry.CameraConfig {
	config := defaultCameraConfig()

	if file.Eye != nil && file.LookAt != nil && file.Up != nil {
		config.Position = *file.Eye
		config.LookAt = *file.LookAt
		config.Up = *file.Up
	}
	if file.FOV != nil {
		config.VFov = *file.FOV
	}
	if file.Width != 0 {
		config.Width = file.Width
	}
	if file.Height != 0 {
		config.Height = file.Height
	}

	return config
}

// SceneDir is searched for scene files given by bare name
const SceneDir = "scenes"

// LoadScene resolves a scene argument against SceneDir
func LoadScene(nameOrPath string) (*Scene, error) {
	return LoadSceneFrom(SceneDir, nameOrPath)
}

// LoadSceneFrom resolves a scene argument: a path ending in .pbrt is loaded from disk,
// a built-in scene name wins next, then <dir>/<name>.pbrt.
func LoadSceneFrom(dir, nameOrPath string) (*Scene, error) {
	if nameOrPath == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}
	if strings.EqualFold(filepath.Ext(nameOrPath), ".pbrt") {
		return NewPBRTScene(nameOrPath)
	}
	if _, ok := builtinScenes[nameOrPath]; ok {
		return NewBuiltinScene(nameOrPath)
	}

	path := filepath.Join(dir, nameOrPath+".pbrt")
	if _, err := os.Stat(path); err == nil {
		return NewPBRTScene(path)
	}

	return nil, fmt.Errorf("unknown scene %q (built-in scenes: %s; no %s)",
		nameOrPath, strings.Join(BuiltinSceneNames(), ", "), path)
}
