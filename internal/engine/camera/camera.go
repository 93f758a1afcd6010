// Package camera provides the perspective camera the sphere is viewed through.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/supersphere/pkg/math"
)

// PerspectiveCamera looks from Position at Target. Only the aspect ratio
// changes after construction.
type PerspectiveCamera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FovY   float32 // vertical field of view, radians
	Near   float32
	Far    float32
	Aspect float32
}

// NewPerspective creates a camera at position looking at the origin with a
// vertical field of view in degrees.
func NewPerspective(position math.Vec3, fovDegrees, aspect float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		Position: position,
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		FovY:     fovDegrees * math32.Pi / 180,
		Near:     0.1,
		Far:      2000,
		Aspect:   aspect,
	}
}

// SetAspect updates the aspect ratio.
func (c *PerspectiveCamera) SetAspect(aspect float32) {
	c.Aspect = aspect
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for the current aspect.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}
