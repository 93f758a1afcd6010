// Package viewport sizes the render surface and keeps the camera's aspect
// ratio in step with it.
package viewport

import (
	"go.uber.org/zap"

	"github.com/Faultbox/supersphere/internal/engine/camera"
	"github.com/Faultbox/supersphere/internal/logger"
	"github.com/Faultbox/supersphere/pkg/math"
)

// Camera placement, fixed for the life of the controller.
const (
	FieldOfView = 50 // degrees, vertical
	Distance    = 5
)

// Controller owns the camera and the current surface size.
type Controller struct {
	camera        *camera.PerspectiveCamera
	width, height int
}

// New creates a controller for a width x height surface. A non-positive
// size falls back to a 1x1 surface until the first valid Resize.
func New(width, height int) *Controller {
	c := &Controller{
		camera: camera.NewPerspective(math.Vec3{Z: Distance}, FieldOfView, 1),
		width:  1,
		height: 1,
	}
	c.Resize(width, height)
	return c
}

// Resize records a new surface size and updates the camera aspect. Sizes
// with a non-positive side are ignored and false is returned.
func (c *Controller) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		logger.Debug("ignoring degenerate resize", zap.Int("width", width), zap.Int("height", height))
		return false
	}
	c.width, c.height = width, height
	c.camera.SetAspect(float32(width) / float32(height))
	return true
}

// Size returns the surface size in pixels.
func (c *Controller) Size() (width, height int) {
	return c.width, c.height
}

// Aspect returns width / height.
func (c *Controller) Aspect() float32 {
	return c.camera.Aspect
}

// Resolution returns the surface size as a uniform-ready pair.
func (c *Controller) Resolution() [2]float32 {
	return [2]float32{float32(c.width), float32(c.height)}
}

// Camera returns the controlled camera.
func (c *Controller) Camera() *camera.PerspectiveCamera {
	return c.camera
}

// Projection returns the camera projection matrix.
func (c *Controller) Projection() math.Mat4 {
	return c.camera.ProjectionMatrix()
}

// View returns the camera view matrix.
func (c *Controller) View() math.Mat4 {
	return c.camera.ViewMatrix()
}
