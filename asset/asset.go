// Package asset defines opaque handles for meshes, models, textures and shaders
// and the provider contract used to resolve them by name.
// Loading and parsing live outside the engine; providers only hand out handles.
package asset

import (
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/vmath"
)

// ID identifies an asset within its provider; zero is the null handle
type ID uint32

// Mesh is a handle to vertex data with local-space bounds
type Mesh struct {
	ID       ID
	Name     string
	Bounds   vmath.AABB
	Vertices int
}

// Valid reports whether the handle refers to a mesh
func (m Mesh) Valid() bool { return m.ID != 0 }

// Texture is a handle to image data
// Glyph is the cell used by character backends
type Texture struct {
	ID     ID
	Name   string
	Width  int
	Height int
	Glyph  rune
}

func (t Texture) Valid() bool { return t.ID != 0 }

// Shader is a handle to a compiled program owned by the backend
type Shader struct {
	ID   ID
	Name string
}

func (s Shader) Valid() bool { return s.ID != 0 }

// Model groups meshes with the textures drawn on them, index aligned
type Model struct {
	ID       ID
	Name     string
	Meshes   []Mesh
	Textures []Texture
}

func (m Model) Valid() bool { return m.ID != 0 && len(m.Meshes) > 0 }

// Provider resolves handles by name
type Provider interface {
	Mesh(name string) (Mesh, bool)
	Model(name string) (Model, bool)
	Texture(name string) (Texture, bool)
	Shader(name string) (Shader, bool)
}

// providerResource wraps the interface so the resource store keys on a concrete type
type providerResource struct {
	Provider
}

// Install publishes p on the context resources
func Install(ctx *engine.Context, p Provider) {
	engine.AddResource(ctx.Resources, &providerResource{Provider: p})
}

// From returns the provider published on the context
func From(ctx *engine.Context) (Provider, bool) {
	r, ok := engine.GetResource[*providerResource](ctx.Resources)
	if !ok {
		return nil, false
	}
	return r.Provider, true
}
