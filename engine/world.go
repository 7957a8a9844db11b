package engine

import (
	"github.com/lixenwraith/vi-engine/core"
)

type entitySlot struct {
	generation uint32
	used       bool // Allocated until the frame boundary frees it
	alive      bool // Cleared immediately by Kill
	name       string
	transform  *Transform
	components []Component // Ascending priority, stable by attachment
}

type detachRequest struct {
	entity    core.Entity
	component Component
}

// World is the arena of entities addressed by generational handles
// All mutation is single-threaded; removals are queued and applied by Flush
type World struct {
	ctx   *Context
	slots []entitySlot
	free  []uint32
	live  []core.Entity // Spawn order

	pendingKill   []core.Entity
	pendingDetach []detachRequest

	// Reused per pass to keep iteration stable under same-thread mutation
	entityScratch []core.Entity
	compScratch   []Component
	inPass        bool
}

func newWorld(ctx *Context) *World {
	return &World{
		ctx:   ctx,
		slots: make([]entitySlot, 0, 64),
		live:  make([]core.Entity, 0, 64),
	}
}

// Context returns the context the world was created with
func (w *World) Context() *Context { return w.ctx }

// Spawn allocates an entity owning a fresh identity Transform
func (w *World) Spawn(name string) core.Entity {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, entitySlot{generation: 1})
	}

	slot := &w.slots[idx]
	e := core.Entity{Index: idx, Generation: slot.generation}

	t := NewTransform()
	t.world = w
	t.owner = e
	t.transform = t
	t.state = StateActive

	slot.used = true
	slot.alive = true
	slot.name = name
	slot.transform = t
	slot.components = slot.components[:0]

	w.live = append(w.live, e)
	w.ctx.Logger.Debug().Stringer("entity", e).Str("name", name).Msg("spawn")
	return e
}

// Kill flags e dead immediately; unsetup and release happen at the next Flush
func (w *World) Kill(e core.Entity) {
	slot, ok := w.slot(e)
	if !ok || !slot.alive {
		return
	}
	slot.alive = false
	w.pendingKill = append(w.pendingKill, e)
	w.ctx.Logger.Debug().Stringer("entity", e).Str("name", slot.name).Msg("kill")
}

// Alive reports whether e refers to a live, unkilled entity
func (w *World) Alive(e core.Entity) bool {
	slot, ok := w.slot(e)
	return ok && slot.alive
}

// Name returns the spawn name of a live entity
func (w *World) Name(e core.Entity) (string, bool) {
	slot, ok := w.slot(e)
	if !ok || !slot.alive {
		return "", false
	}
	return slot.name, true
}

// Transform returns the transform owned by a live entity
func (w *World) Transform(e core.Entity) (*Transform, bool) {
	slot, ok := w.slot(e)
	if !ok || !slot.alive {
		return nil, false
	}
	return slot.transform, true
}

// Components returns a copy of the live entity's components in run order
func (w *World) Components(e core.Entity) []Component {
	slot, ok := w.slot(e)
	if !ok || !slot.alive {
		return nil
	}
	out := make([]Component, 0, len(slot.components))
	for _, c := range slot.components {
		if !c.base().detached {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of live entities
func (w *World) Count() int {
	n := 0
	for _, e := range w.live {
		if w.Alive(e) {
			n++
		}
	}
	return n
}

// Entities returns live entity handles in spawn order
func (w *World) Entities() []core.Entity {
	out := make([]core.Entity, 0, len(w.live))
	for _, e := range w.live {
		if w.Alive(e) {
			out = append(out, e)
		}
	}
	return out
}

// Attach binds c to e, inserts it by priority (stable) and runs Setup
// Returns false when e is not alive
func (w *World) Attach(e core.Entity, c Component) bool {
	slot, ok := w.slot(e)
	if !ok || !slot.alive {
		return false
	}

	b := c.base()
	core.Assert(b.state == StateConstructed, "component attached twice (state %s)", b.state)

	b.world = w
	b.owner = e
	b.transform = slot.transform
	b.state = StateInitialized

	// Insertion sort: equal priorities keep attachment order
	pos := len(slot.components)
	for i, o := range slot.components {
		if b.priority < o.base().priority {
			pos = i
			break
		}
	}
	slot.components = append(slot.components, nil)
	copy(slot.components[pos+1:], slot.components[pos:])
	slot.components[pos] = c

	if s, ok := c.(Setupper); ok {
		s.Setup(w.ctx)
	}
	b.state = StateActive
	return true
}

// Detach stops c from running immediately and unsetups it at the next Flush
func (w *World) Detach(c Component) {
	b := c.base()
	if b.world != w || b.detached || b.state != StateActive {
		return
	}
	b.detached = true
	w.pendingDetach = append(w.pendingDetach, detachRequest{entity: b.owner, component: c})
}

// Update runs one serial update pass over entities alive at pass start
func (w *World) Update(ctx *Context) {
	w.visit(func(c Component) {
		if u, ok := c.(Updater); ok {
			u.Update(ctx)
		}
	})
}

// Render runs RenderHook components in the same order as Update
func (w *World) Render(ctx *Context) {
	w.visit(func(c Component) {
		if r, ok := c.(RenderHook); ok {
			r.Render(ctx)
		}
	})
}

func (w *World) visit(fn func(Component)) {
	core.Assert(!w.inPass, "re-entrant world pass")
	w.inPass = true
	defer func() { w.inPass = false }()

	// Snapshot: entities spawned mid-pass run next frame
	w.entityScratch = append(w.entityScratch[:0], w.live...)
	for _, e := range w.entityScratch {
		slot, ok := w.slot(e)
		if !ok || !slot.alive {
			continue
		}
		w.compScratch = append(w.compScratch[:0], slot.components...)
		for _, c := range w.compScratch {
			// A kill issued by an earlier component stops the rest of this entity
			// Re-resolved each step: hooks may spawn and grow the slot array
			if !w.Alive(e) {
				break
			}
			b := c.base()
			if b.inactive || b.detached || b.state != StateActive {
				continue
			}
			fn(c)
		}
	}
	clear(w.compScratch)
}

// Flush is the frame boundary: applies queued detaches and destroys killed entities
// Unsetup runs exactly once per component; kills issued during Flush are drained too
func (w *World) Flush(ctx *Context) {
	core.Assert(!w.inPass, "flush during world pass")

	for len(w.pendingDetach) > 0 || len(w.pendingKill) > 0 {
		detaches := w.pendingDetach
		w.pendingDetach = nil
		for _, d := range detaches {
			w.detachNow(ctx, d)
		}

		kills := w.pendingKill
		w.pendingKill = nil
		for _, e := range kills {
			w.destroy(ctx, e)
		}
	}
}

// Clear kills every entity and flushes
func (w *World) Clear(ctx *Context) {
	for _, e := range w.live {
		w.Kill(e)
	}
	w.Flush(ctx)
}

func (w *World) detachNow(ctx *Context, d detachRequest) {
	b := d.component.base()
	if b.state != StateActive {
		return
	}
	if slot, ok := w.slot(d.entity); ok {
		for i, c := range slot.components {
			if c == d.component {
				slot.components = append(slot.components[:i], slot.components[i+1:]...)
				break
			}
		}
	}
	unsetup(ctx, d.component)
}

func (w *World) destroy(ctx *Context, e core.Entity) {
	slot, ok := w.slot(e)
	if !ok {
		return
	}
	comps := slot.components
	transform := slot.transform

	// Teardown mirrors setup: highest priority first, transform last
	for i := len(comps) - 1; i >= 0; i-- {
		unsetup(ctx, comps[i])
	}
	unsetup(ctx, transform)

	// Unsetup hooks may spawn, so the slot pointer is resolved again
	slot = &w.slots[e.Index]

	for i, le := range w.live {
		if le == e {
			w.live = append(w.live[:i], w.live[i+1:]...)
			break
		}
	}

	clear(slot.components)
	slot.components = slot.components[:0]
	slot.transform = nil
	slot.name = ""
	slot.used = false
	slot.alive = false
	slot.generation++
	if slot.generation == 0 {
		slot.generation = 1
	}
	w.free = append(w.free, e.Index)
	ctx.Logger.Debug().Stringer("entity", e).Msg("destroy")
}

func unsetup(ctx *Context, c Component) {
	b := c.base()
	if b.state != StateActive {
		return
	}
	b.state = StateUnsetup
	if u, ok := c.(Unsetupper); ok {
		u.Unsetup(ctx)
	}
	b.state = StateDestroyed
}

// slot resolves e when the handle generation matches an allocated slot
// The pointer is only valid until the next Spawn
func (w *World) slot(e core.Entity) (*entitySlot, bool) {
	if e.IsZero() || int(e.Index) >= len(w.slots) {
		return nil, false
	}
	slot := &w.slots[e.Index]
	if !slot.used || slot.generation != e.Generation {
		return nil, false
	}
	return slot, true
}

// Get returns the first live component of type T on e
func Get[T Component](w *World, e core.Entity) (T, bool) {
	var zero T
	slot, ok := w.slot(e)
	if !ok || !slot.alive {
		return zero, false
	}
	for _, c := range slot.components {
		if tc, ok := c.(T); ok && !c.base().detached {
			return tc, true
		}
	}
	return zero, false
}

// AddComponent attaches c to e and returns a safe reference to it
func AddComponent[T Component](w *World, e core.Entity, c T) (Ref[T], bool) {
	if !w.Attach(e, c) {
		return Ref[T]{}, false
	}
	return RefOf(c), true
}
