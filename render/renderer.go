package render

import (
	"github.com/lixenwraith/vi-engine/asset"
	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/vmath"
)

// Drawer is a component the batch orders and draws
type Drawer interface {
	engine.Component
	Phase() Phase
	Draw(ctx *engine.Context, dev Device)
}

// DrawKind tags the renderer variant
type DrawKind uint8

const (
	DrawMesh DrawKind = iota
	DrawModel
	DrawRect
	DrawSprite
)

func (k DrawKind) String() string {
	switch k {
	case DrawMesh:
		return "mesh"
	case DrawModel:
		return "model"
	case DrawRect:
		return "rect"
	case DrawSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Renderer draws its owner through one of the closed draw kinds
// Registered with the RenderBatch from Setup until Unsetup
type Renderer struct {
	engine.Base

	Modulate     core.Color
	ShouldRender bool

	kind     DrawKind
	phase    Phase
	mesh     asset.Mesh
	model    asset.Model
	textures []asset.Texture
	rect     vmath.Rect

	batch *RenderBatch
}

func newRenderer(kind DrawKind, phase Phase) *Renderer {
	return &Renderer{
		Modulate:     core.ColorWhite,
		ShouldRender: true,
		kind:         kind,
		phase:        phase,
	}
}

// NewMeshRenderer draws mesh with one texture slot per given texture
func NewMeshRenderer(mesh asset.Mesh, textures ...asset.Texture) *Renderer {
	r := newRenderer(DrawMesh, PhaseMesh)
	r.mesh = mesh
	r.textures = textures
	return r
}

// NewModelRenderer draws every mesh of model with its paired texture
func NewModelRenderer(model asset.Model) *Renderer {
	r := newRenderer(DrawModel, PhaseMesh)
	r.model = model
	r.textures = append([]asset.Texture(nil), model.Textures...)
	return r
}

// NewRectRenderer fills a local rect, mapped through the owner transform
func NewRectRenderer(local vmath.Rect, color core.Color) *Renderer {
	r := newRenderer(DrawRect, PhaseSprite)
	r.rect = local.Canon()
	r.Modulate = color
	return r
}

// NewSpriteRenderer draws a textured quad at the owner transform
func NewSpriteRenderer(texture asset.Texture) *Renderer {
	r := newRenderer(DrawSprite, PhaseSprite)
	r.textures = []asset.Texture{texture}
	return r
}

func (r *Renderer) Kind() DrawKind { return r.kind }

func (r *Renderer) Phase() Phase { return r.phase }

// SetPhase overrides the default phase; only valid before attach
func (r *Renderer) SetPhase(p Phase) {
	core.Assert(r.State() == engine.StateConstructed, "phase changed after attach")
	r.phase = p
}

func (r *Renderer) IsVisible() bool { return r.ShouldRender }

func (r *Renderer) Mesh() asset.Mesh { return r.mesh }

// SetMesh swaps the drawn mesh; a zero mesh makes the renderer a no-op
func (r *Renderer) SetMesh(m asset.Mesh) { r.mesh = m }

func (r *Renderer) Model() asset.Model { return r.model }

func (r *Renderer) SetModel(m asset.Model) { r.model = m }

func (r *Renderer) Rect() vmath.Rect { return r.rect }

func (r *Renderer) SetRect(local vmath.Rect) { r.rect = local.Canon() }

// TextureSlots returns the number of texture slots
func (r *Renderer) TextureSlots() int { return len(r.textures) }

// Texture returns the texture in slot; an out of range slot is a logic defect
func (r *Renderer) Texture(slot int) asset.Texture {
	if !r.checkSlot(slot) {
		return asset.Texture{}
	}
	return r.textures[slot]
}

// SetTexture replaces the texture in slot
func (r *Renderer) SetTexture(slot int, t asset.Texture) {
	if !r.checkSlot(slot) {
		return
	}
	r.textures[slot] = t
}

func (r *Renderer) checkSlot(slot int) bool {
	ok := slot >= 0 && slot < len(r.textures)
	core.Assert(ok, "texture slot %d out of range [0,%d)", slot, len(r.textures))
	return ok
}

func (r *Renderer) Setup(ctx *engine.Context) {
	b, ok := From(ctx)
	core.Assert(ok, "renderer set up without a render batch installed")
	if !ok {
		return
	}
	r.batch = b
	b.add(r)
}

func (r *Renderer) Unsetup(ctx *engine.Context) {
	if r.batch != nil {
		r.batch.remove(r)
		r.batch = nil
	}
}

// Registered reports batch membership
func (r *Renderer) Registered() bool { return r.batch != nil }

// Draw issues this renderer's submissions; missing drawables are skipped silently
func (r *Renderer) Draw(ctx *engine.Context, dev Device) {
	t := r.Transform()
	if t == nil {
		return
	}

	switch r.kind {
	case DrawMesh:
		if !r.mesh.Valid() {
			return
		}
		var tex asset.Texture
		if len(r.textures) > 0 {
			tex = r.textures[0]
		}
		dev.DrawMesh(MeshDraw{Mesh: r.mesh, Matrix: t.Matrix(), Texture: tex, Color: r.Modulate})
	case DrawModel:
		if !r.model.Valid() {
			return
		}
		m := t.Matrix()
		for i, mesh := range r.model.Meshes {
			if !mesh.Valid() {
				continue
			}
			var tex asset.Texture
			if i < len(r.textures) {
				tex = r.textures[i]
			}
			dev.DrawMesh(MeshDraw{Mesh: mesh, Matrix: m, Texture: tex, Color: r.Modulate})
		}
	case DrawRect:
		if r.rect.Empty() {
			return
		}
		dev.DrawRect(RectDraw{Rect: t.Rect(r.rect), Color: r.Modulate})
	case DrawSprite:
		if len(r.textures) == 0 || !r.textures[0].Valid() {
			return
		}
		dev.DrawQuad(QuadDraw{Texture: r.textures[0], Matrix: t.Matrix(), Color: r.Modulate})
	}
}
