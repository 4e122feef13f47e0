package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Quantize maps a linear color component to an 8-bit channel value.
// Values are truncated, not rounded, and clamped to [0, 255]. NaN maps to 0.
func Quantize(component float64) int {
	if math.IsNaN(component) {
		return 0
	}
	// Clamp before converting; int() of an out-of-range float is undefined.
	return int(math.Min(255, math.Max(0, component*255)))
}

// WritePPM writes img as an ASCII (P3) portable pixmap
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.GetPixel(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d ", Quantize(c.X), Quantize(c.Y), Quantize(c.Z)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// SavePPM writes img to a PPM file at path
func SavePPM(path string, img *renderer.Image) error {
	return saveWith(path, img, WritePPM)
}

func saveWith(path string, img *renderer.Image, write func(io.Writer, *renderer.Image) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
