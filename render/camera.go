package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/engine"
)

// ProjectionKind selects the camera projection
type ProjectionKind uint8

const (
	Perspective ProjectionKind = iota
	Orthographic
)

// Camera derives view and projection matrices from its owner transform
// The view is the inverse of the owner's world matrix
type Camera struct {
	engine.Base

	Kind ProjectionKind
	// FOV is the vertical field of view in degrees (perspective)
	FOV float32
	// Height is the visible world height (orthographic)
	Height    float32
	Near, Far float32

	aspect        float32
	width, height int
}

// NewPerspectiveCamera creates a perspective camera with a square viewport
func NewPerspectiveCamera(fov, near, far float32) *Camera {
	return &Camera{Kind: Perspective, FOV: fov, Near: near, Far: far, aspect: 1}
}

// NewOrthographicCamera creates an orthographic camera showing height world units vertically
func NewOrthographicCamera(height, near, far float32) *Camera {
	return &Camera{Kind: Orthographic, Height: height, Near: near, Far: far, aspect: 1}
}

// OnViewportResize recomputes the aspect ratio; degenerate sizes are ignored
func (c *Camera) OnViewportResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.aspect = float32(width) / float32(height)
}

// Viewport returns the last notified viewport size
func (c *Camera) Viewport() (int, int) { return c.width, c.height }

func (c *Camera) Aspect() float32 { return c.aspect }

// View returns the inverse of the owner's world matrix
func (c *Camera) View() mgl32.Mat4 {
	t := c.Transform()
	if t == nil {
		return mgl32.Ident4()
	}
	return t.Matrix().Inv()
}

// Projection returns the projection matrix for the current aspect
func (c *Camera) Projection() mgl32.Mat4 {
	switch c.Kind {
	case Orthographic:
		h := c.Height / 2
		w := h * c.aspect
		return mgl32.Ortho(-w, w, -h, h, c.Near, c.Far)
	default:
		return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.aspect, c.Near, c.Far)
	}
}
