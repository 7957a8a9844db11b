// Package terminal renders draw submissions onto a tcell screen and pumps its
// events into input state and viewport listeners.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/render"
)

const (
	meshGlyph = '▒'
	quadGlyph = '*'

	// cellEpsilon absorbs float error when snapping projected edges to cells
	cellEpsilon = 1e-3
)

// Device is a render.Device drawing to character cells
// World points are projected through projection·view into normalized device
// coordinates, then mapped onto the screen with +Y up
type Device struct {
	screen   tcell.Screen
	viewProj mgl32.Mat4
	width    int
	height   int
}

// NewDevice wraps an initialized screen
func NewDevice(screen tcell.Screen) *Device {
	w, h := screen.Size()
	return &Device{screen: screen, viewProj: mgl32.Ident4(), width: w, height: h}
}

// Screen returns the underlying tcell screen
func (d *Device) Screen() tcell.Screen { return d.screen }

// Resize adopts the current screen size and forces a full redraw
func (d *Device) Resize() {
	d.width, d.height = d.screen.Size()
	d.screen.Sync()
}

func (d *Device) Size() (int, int) { return d.width, d.height }

func (d *Device) Clear(color core.Color) {
	d.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(color)))
}

func (d *Device) SetCamera(view, projection mgl32.Mat4) {
	d.viewProj = projection.Mul4(view)
}

// DrawRect fills the cells covered by the rect with its color as background
func (d *Device) DrawRect(r render.RectDraw) {
	if r.Color.Transparent() || r.Rect.Empty() {
		return
	}
	lo, hi := r.Rect.Min(), r.Rect.Max()
	d.fill([]mgl32.Vec3{
		{lo.X(), lo.Y(), 0},
		{hi.X(), hi.Y(), 0},
		{lo.X(), hi.Y(), 0},
		{hi.X(), lo.Y(), 0},
	}, ' ', tcell.StyleDefault.Background(tcellColor(r.Color)))
}

// DrawMesh stamps the projected footprint of the mesh bounds
func (d *Device) DrawMesh(m render.MeshDraw) {
	if !m.Mesh.Valid() || m.Color.Transparent() {
		return
	}
	b := m.Mesh.Bounds
	corners := make([]mgl32.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		corners = append(corners, mgl32.TransformCoordinate(c, m.Matrix))
	}

	glyph := rune(meshGlyph)
	if m.Texture.Valid() && m.Texture.Glyph != 0 {
		glyph = m.Texture.Glyph
	}
	d.fill(corners, glyph, tcell.StyleDefault.Foreground(tcellColor(m.Color)))
}

// DrawQuad stamps one glyph at the projected quad origin
func (d *Device) DrawQuad(q render.QuadDraw) {
	if !q.Texture.Valid() || q.Color.Transparent() {
		return
	}
	origin := mgl32.TransformCoordinate(mgl32.Vec3{}, q.Matrix)
	x, y, ok := d.cell(origin)
	if !ok || x < 0 || y < 0 || x >= d.width || y >= d.height {
		return
	}
	glyph := rune(quadGlyph)
	if q.Texture.Glyph != 0 {
		glyph = q.Texture.Glyph
	}
	d.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Foreground(tcellColor(q.Color)))
}

func (d *Device) Present() error {
	if d.screen == nil {
		return eris.New("terminal device has no screen")
	}
	d.screen.Show()
	return nil
}

// Cell projects a world point to its screen cell
// ok is false for points behind the camera
func (d *Device) Cell(p mgl32.Vec3) (x, y int, ok bool) {
	return d.cell(p)
}

func (d *Device) cell(p mgl32.Vec3) (int, int, bool) {
	fx, fy, ok := d.project(p)
	if !ok {
		return 0, 0, false
	}
	return snapFloor(fx), snapFloor(fy), true
}

// project returns fractional cell coordinates
func (d *Device) project(p mgl32.Vec3) (float32, float32, bool) {
	clip := d.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := (ndc.X() + 1) / 2 * float32(d.width)
	y := (1 - ndc.Y()) / 2 * float32(d.height)
	return x, y, true
}

// fill covers the screen-space bounding box of the projected points
// Cells are covered when their origin lies inside the half-open box
func (d *Device) fill(points []mgl32.Vec3, glyph rune, style tcell.Style) {
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, p := range points {
		x, y, ok := d.project(p)
		if !ok {
			return
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}

	x0 := max(0, snapCeil(minX))
	y0 := max(0, snapCeil(minY))
	x1 := min(d.width, snapCeil(maxX))
	y1 := min(d.height, snapCeil(maxY))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func snapFloor(v float32) int {
	return int(math.Floor(float64(v) + cellEpsilon))
}

func snapCeil(v float32) int {
	return int(math.Ceil(float64(v) - cellEpsilon))
}

func tcellColor(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
