package output

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// ToRGBA converts img to an 8-bit image using the same quantization as the PPM writer
func ToRGBA(img *renderer.Image) *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.GetPixel(x, y)
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(Quantize(c.X)),
				G: uint8(Quantize(c.Y)),
				B: uint8(Quantize(c.Z)),
				A: 255,
			})
		}
	}
	return rgba
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	return png.Encode(w, ToRGBA(img))
}

// SavePNG writes img to a PNG file at path
func SavePNG(path string, img *renderer.Image) error {
	return saveWith(path, img, WritePNG)
}
