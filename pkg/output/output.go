// Package output serializes rendered images to disk.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/renderer"
)

// Supported file formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Formats lists the supported output formats
func Formats() []string {
	return []string{FormatPPM, FormatPNG}
}

// ParseFormat validates a format name, accepting an optional leading dot
func ParseFormat(name string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	switch format {
	case FormatPPM, FormatPNG:
		return format, nil
	}
	return "", fmt.Errorf("unsupported format %q (supported: %s)", name, strings.Join(Formats(), ", "))
}

// Save writes img to path, choosing the encoder from the file extension
func Save(path string, img *renderer.Image) error {
	ext := filepath.Ext(path)
	format, err := ParseFormat(ext)
	if err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}

	switch format {
	case FormatPNG:
		return SavePNG(path, img)
	default:
		return SavePPM(path, img)
	}
}
