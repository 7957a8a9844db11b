package asset

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/vmath"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	cube, err := r.RegisterMesh("cube", vmath.AABBFromCenter(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}), 24)
	require.NoError(t, err)
	assert.True(t, cube.Valid())

	got, ok := r.Mesh("cube")
	require.True(t, ok)
	assert.Equal(t, cube, got)

	_, ok = r.Mesh("sphere")
	assert.False(t, ok)

	_, err = r.RegisterMesh("cube", vmath.AABB{}, 0)
	assert.Error(t, err)
}

func TestRegistryModel(t *testing.T) {
	r := NewRegistry()
	_, err := r.RegisterMesh("hull", vmath.AABB{}, 8)
	require.NoError(t, err)
	_, err = r.RegisterMesh("turret", vmath.AABB{}, 8)
	require.NoError(t, err)
	camo, err := r.RegisterTexture("camo", 4, 4, '#')
	require.NoError(t, err)

	tank, err := r.RegisterModel("tank", []string{"hull", "turret"}, []string{"camo"})
	require.NoError(t, err)
	assert.True(t, tank.Valid())
	require.Len(t, tank.Meshes, 2)
	require.Len(t, tank.Textures, 2)
	assert.Equal(t, camo, tank.Textures[0])
	assert.False(t, tank.Textures[1].Valid())

	_, err = r.RegisterModel("broken", []string{"missing"}, nil)
	assert.Error(t, err)
	_, err = r.RegisterModel("empty", nil, nil)
	assert.Error(t, err)
}

func TestZeroHandlesInvalid(t *testing.T) {
	assert.False(t, Mesh{}.Valid())
	assert.False(t, Texture{}.Valid())
	assert.False(t, Shader{}.Valid())
	assert.False(t, Model{ID: 3}.Valid())
}

func TestProviderOnContext(t *testing.T) {
	ctx := engine.NewContext()
	_, ok := From(ctx)
	assert.False(t, ok)

	r := NewRegistry()
	Install(ctx, r)
	p, ok := From(ctx)
	require.True(t, ok)
	assert.Same(t, r, p.(*Registry))
}
