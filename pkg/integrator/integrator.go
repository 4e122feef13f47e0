package integrator

import (
	"fmt"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// Background is the color of rays that hit nothing, in every mode
var Background = core.NewVec3(0.5, 0.7, 1.0)

// Mode selects one of the four visualization stages
type Mode int

const (
	ModeDistance Mode = iota // Grayscale depth of the nearest hit
	ModeMaterial             // Flat base color of the nearest hit
	ModeDiffuse              // Ambient plus Lambertian shading from every light
	ModeShadow               // Diffuse shading with hard shadows
)

var modeNames = map[Mode]string{
	ModeDistance: "distance",
	ModeMaterial: "material",
	ModeDiffuse:  "diffuse",
	ModeShadow:   "shadow",
}

// String returns the mode name used on the command line
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// AllModes returns every mode in pipeline order
func AllModes() []Mode {
	return []Mode{ModeDistance, ModeMaterial, ModeDiffuse, ModeShadow}
}

// ParseMode parses a mode name (case-insensitive)
func ParseMode(name string) (Mode, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, mode := range AllModes() {
		if modeNames[mode] == lower {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q (expected one of distance, material, diffuse, shadow)", name)
}

// Sample is the shaded result for one primary ray
type Sample struct {
	Color      core.Vec3
	Hit        bool // Whether the primary ray hit a sphere
	ShadowRays int  // Number of shadow rays cast while shading
}

// shader computes the color seen along a primary ray
type shader func(ray core.Ray, s *scene.Scene) Sample

var shaders = map[Mode]shader{
	ModeDistance: shadeDistance,
	ModeMaterial: shadeMaterial,
	ModeDiffuse:  shadeDiffuse,
	ModeShadow:   shadeShadow,
}

// Shade evaluates the given mode for a primary ray. Shade only reads the scene.
func Shade(mode Mode, ray core.Ray, s *scene.Scene) Sample {
	shade, ok := shaders[mode]
	if !ok {
		panic(fmt.Sprintf("integrator: unsupported mode %v", mode))
	}
	return shade(ray, s)
}

// RayColor is Shade without the bookkeeping
func RayColor(mode Mode, ray core.Ray, s *scene.Scene) core.Vec3 {
	return Shade(mode, ray, s).Color
}

func miss() Sample {
	return Sample{Color: Background}
}
