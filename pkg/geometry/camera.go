package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Position core.Vec3 // Camera position
	LookAt   core.Vec3 // Point the camera is looking at
	Up       core.Vec3 // Up direction hint (need not be orthogonal to the view direction)
	VFov     float64   // Vertical field of view in degrees
	Width    int       // Image width in pixels
	Height   int       // Image height in pixels
}

// Validate reports camera parameters that cannot produce a usable view.
// A view direction parallel to the up hint has no defined basis.
func (c CameraConfig) Validate() error {
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("invalid field of view %g: must be between 0 and 180 degrees", c.VFov)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d: dimensions must be positive", c.Width, c.Height)
	}
	forward := c.LookAt.Subtract(c.Position)
	if forward.LengthSquared() == 0 {
		return fmt.Errorf("camera position %v equals look-at point", c.Position)
	}
	if forward.Normalize().Cross(c.Up).LengthSquared() == 0 {
		return fmt.Errorf("camera up vector %v is parallel to the view direction", c.Up)
	}
	return nil
}

// Camera generates primary rays. It holds no derived state; the basis is rebuilt on every call.
type Camera struct {
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	VFov     float64 // Degrees
}

// NewCamera creates a camera from a config
func NewCamera(config CameraConfig) Camera {
	return Camera{
		Position: config.Position,
		LookAt:   config.LookAt,
		Up:       config.Up,
		VFov:     config.VFov,
	}
}

// Basis returns the forward, right and true-up vectors of the camera.
// trueUp is not renormalized; if forward is parallel to Up, right and trueUp are zero.
func (c Camera) Basis() (forward, right, trueUp core.Vec3) {
	forward = c.LookAt.Subtract(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	trueUp = right.Cross(forward)
	return forward, right, trueUp
}

// GetRay generates the primary ray for pixel coordinates (u, v) of a width×height image.
// Row 0 is the top of the image.
func (c Camera) GetRay(u, v float64, width, height int) core.Ray {
	forward, right, trueUp := c.Basis()

	aspectRatio := float64(width) / float64(height)
	scale := math.Tan(c.VFov * 0.5 * math.Pi / 180.0)

	// Map pixel coordinates to [-1, 1], flipping Y
	x := (2.0*u/float64(width) - 1.0) * aspectRatio * scale
	y := (1.0 - 2.0*v/float64(height)) * scale

	direction := forward.Add(right.Multiply(x)).Add(trueUp.Multiply(y)).Normalize()
	return core.NewRay(c.Position, direction)
}
