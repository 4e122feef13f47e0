package renderer

import (
	"image"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestImage_SetGetPixel(t *testing.T) {
	img := NewImage(4, 3)
	red := core.NewVec3(1, 0, 0)

	img.SetPixel(3, 2, red)

	if got := img.GetPixel(3, 2); got != red {
		t.Errorf("Expected %v, got %v", red, got)
	}
	if got := img.Pixels[2*4+3]; got != red {
		t.Errorf("Expected row-major storage at index 11, got %v", got)
	}
	if got := img.GetPixel(0, 0); got != (core.Vec3{}) {
		t.Errorf("Expected new image to be black, got %v", got)
	}
}

func TestImage_OutOfBounds(t *testing.T) {
	img := NewImage(2, 2)
	white := core.NewVec3(1, 1, 1)

	coords := []image.Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}}
	for _, p := range coords {
		img.SetPixel(p.X, p.Y, white)
		if got := img.GetPixel(p.X, p.Y); got != (core.Vec3{}) {
			t.Errorf("GetPixel(%d,%d): expected black outside bounds, got %v", p.X, p.Y, got)
		}
	}

	for i, pixel := range img.Pixels {
		if pixel != (core.Vec3{}) {
			t.Errorf("Pixel %d modified by out-of-bounds write: %v", i, pixel)
		}
	}
}

func TestImage_Bounds(t *testing.T) {
	img := NewImage(800, 600)
	if img.Bounds() != image.Rect(0, 0, 800, 600) {
		t.Errorf("Expected bounds (0,0)-(800,600), got %v", img.Bounds())
	}
}
