package renderer

import (
	"image"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Image is a row-major grid of linear RGB colors
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image of the given size
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Bounds returns the pixel rectangle covered by the image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// SetPixel stores a color. Writes outside the image are ignored.
func (img *Image) SetPixel(x, y int, color core.Vec3) {
	if x >= 0 && x < img.Width && y >= 0 && y < img.Height {
		img.Pixels[y*img.Width+x] = color
	}
}

// GetPixel returns the color at (x, y), or black outside the image
func (img *Image) GetPixel(x, y int) core.Vec3 {
	if x >= 0 && x < img.Width && y >= 0 && y < img.Height {
		return img.Pixels[y*img.Width+x]
	}
	return core.Vec3{}
}
