package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/asset"
	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/vmath"
)

// MeshDraw submits a mesh with its world matrix
// A zero Texture draws untextured
type MeshDraw struct {
	Mesh    asset.Mesh
	Matrix  mgl32.Mat4
	Texture asset.Texture
	Color   core.Color
}

// RectDraw submits a filled world-space rectangle on the XY plane
type RectDraw struct {
	Rect  vmath.Rect
	Color core.Color
}

// QuadDraw submits a textured unit quad placed by Matrix
type QuadDraw struct {
	Texture asset.Texture
	Matrix  mgl32.Mat4
	Color   core.Color
}

// Device is the backend contract. The engine issues no backend calls beyond these
type Device interface {
	Clear(color core.Color)
	SetCamera(view, projection mgl32.Mat4)
	DrawMesh(d MeshDraw)
	DrawRect(d RectDraw)
	DrawQuad(d QuadDraw)
	Present() error
	Size() (width, height int)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// countingDevice forwards to the backend and counts submissions
type countingDevice struct {
	Device
	draws int
}

func (d *countingDevice) DrawMesh(m MeshDraw) {
	d.draws++
	d.Device.DrawMesh(m)
}

func (d *countingDevice) DrawRect(r RectDraw) {
	d.draws++
	d.Device.DrawRect(r)
}

func (d *countingDevice) DrawQuad(q QuadDraw) {
	d.draws++
	d.Device.DrawQuad(q)
}
