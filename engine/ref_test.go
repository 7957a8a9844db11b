package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-engine/core"
)

func TestRefInvalidAfterKill(t *testing.T) {
	ctx := NewContext()
	w := ctx.World
	e := w.Spawn("target")

	ref, ok := AddComponent(w, e, newProbe("a", 0, nil))
	require.True(t, ok)

	got, ok := ref.Get()
	require.True(t, ok)
	assert.Equal(t, "a", got.name)

	// Invalid as soon as the owner is killed, before and after the flush
	w.Kill(e)
	_, ok = ref.Get()
	assert.False(t, ok)
	w.Flush(ctx)
	assert.False(t, ref.Valid())

	// A recycled slot does not revive the reference
	w.Spawn("recycled")
	assert.False(t, ref.Valid())
}

func TestRefOfUnattachedIsZero(t *testing.T) {
	ref := RefOf(newProbe("a", 0, nil))
	assert.True(t, ref.IsZero())
	assert.False(t, ref.Valid())

	var zero Ref[*probe]
	_, ok := zero.Get()
	assert.False(t, ok)
}

func TestRefInvalidAfterDetach(t *testing.T) {
	ctx := NewContext()
	p := newProbe("a", 0, nil)
	spawnWith(ctx, p)
	ref := RefOf(p)

	ctx.World.Detach(p)
	assert.False(t, ref.Valid())
}

func TestMustGetAssertsOnStaleRef(t *testing.T) {
	if !core.AssertionsEnabled() {
		t.Skip("assertions compiled out")
	}
	ctx := NewContext()
	p := newProbe("a", 0, nil)
	e := spawnWith(ctx, p)
	ref := RefOf(p)

	assert.NotPanics(t, func() { ref.MustGet() })
	ctx.World.Kill(e)
	assert.Panics(t, func() { ref.MustGet() })
}

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()
	type service struct{ n int }

	_, ok := GetResource[*service](rs)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGetResource[*service](rs) })

	AddResource(rs, &service{n: 7})
	got, ok := GetResource[*service](rs)
	require.True(t, ok)
	assert.Equal(t, 7, got.n)

	RemoveResource[*service](rs)
	_, ok = GetResource[*service](rs)
	assert.False(t, ok)
}
