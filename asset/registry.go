package asset

import (
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/vi-engine/vmath"
)

// Registry is an in-memory Provider populated by the host
type Registry struct {
	meshes   map[string]Mesh
	models   map[string]Model
	textures map[string]Texture
	shaders  map[string]Shader
	next     ID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		meshes:   make(map[string]Mesh),
		models:   make(map[string]Model),
		textures: make(map[string]Texture),
		shaders:  make(map[string]Shader),
	}
}

func (r *Registry) id() ID {
	r.next++
	return r.next
}

// RegisterMesh adds a mesh with the given local bounds
func (r *Registry) RegisterMesh(name string, bounds vmath.AABB, vertices int) (Mesh, error) {
	if _, ok := r.meshes[name]; ok {
		return Mesh{}, eris.Errorf("mesh %q already registered", name)
	}
	m := Mesh{ID: r.id(), Name: name, Bounds: bounds, Vertices: vertices}
	r.meshes[name] = m
	return m, nil
}

// RegisterTexture adds a texture
func (r *Registry) RegisterTexture(name string, width, height int, glyph rune) (Texture, error) {
	if _, ok := r.textures[name]; ok {
		return Texture{}, eris.Errorf("texture %q already registered", name)
	}
	t := Texture{ID: r.id(), Name: name, Width: width, Height: height, Glyph: glyph}
	r.textures[name] = t
	return t, nil
}

// RegisterShader adds a shader handle
func (r *Registry) RegisterShader(name string) (Shader, error) {
	if _, ok := r.shaders[name]; ok {
		return Shader{}, eris.Errorf("shader %q already registered", name)
	}
	s := Shader{ID: r.id(), Name: name}
	r.shaders[name] = s
	return s, nil
}

// RegisterModel groups previously registered meshes and textures by name
// textures may be shorter than meshes; missing slots draw untextured
func (r *Registry) RegisterModel(name string, meshes []string, textures []string) (Model, error) {
	if _, ok := r.models[name]; ok {
		return Model{}, eris.Errorf("model %q already registered", name)
	}
	if len(meshes) == 0 {
		return Model{}, eris.Errorf("model %q has no meshes", name)
	}
	if len(textures) > len(meshes) {
		return Model{}, eris.Errorf("model %q has %d textures for %d meshes", name, len(textures), len(meshes))
	}

	m := Model{Name: name, Meshes: make([]Mesh, 0, len(meshes)), Textures: make([]Texture, len(meshes))}
	for _, n := range meshes {
		mesh, ok := r.meshes[n]
		if !ok {
			return Model{}, eris.Errorf("model %q references unknown mesh %q", name, n)
		}
		m.Meshes = append(m.Meshes, mesh)
	}
	for i, n := range textures {
		if n == "" {
			continue
		}
		tex, ok := r.textures[n]
		if !ok {
			return Model{}, eris.Errorf("model %q references unknown texture %q", name, n)
		}
		m.Textures[i] = tex
	}
	m.ID = r.id()
	r.models[name] = m
	return m, nil
}

func (r *Registry) Mesh(name string) (Mesh, bool) {
	m, ok := r.meshes[name]
	return m, ok
}

func (r *Registry) Model(name string) (Model, bool) {
	m, ok := r.models[name]
	return m, ok
}

func (r *Registry) Texture(name string) (Texture, bool) {
	t, ok := r.textures[name]
	return t, ok
}

func (r *Registry) Shader(name string) (Shader, bool) {
	s, ok := r.shaders[name]
	return s, ok
}
