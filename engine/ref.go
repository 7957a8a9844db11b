package engine

import "github.com/lixenwraith/vi-engine/core"

// Ref is a non-owning reference to an attached component
// Validate with Get before every use; a dead owner makes it observably invalid, never a crash
type Ref[T Component] struct {
	world *World
	owner core.Entity
	comp  T
}

// RefOf lets an attached component hand out a safe reference to itself
// Returns an invalid Ref when c is not attached
func RefOf[T Component](c T) Ref[T] {
	b := c.base()
	if b.world == nil {
		return Ref[T]{}
	}
	return Ref[T]{world: b.world, owner: b.owner, comp: c}
}

// Get returns the component while its owner is alive and it has not been detached
func (r Ref[T]) Get() (T, bool) {
	if !r.Valid() {
		var zero T
		return zero, false
	}
	return r.comp, true
}

// MustGet returns the component, asserting validity (a stale dereference is a logic defect)
func (r Ref[T]) MustGet() T {
	core.Assert(r.Valid(), "dereference of invalid ref to %s", r.owner)
	return r.comp
}

// Valid performs the liveness check
func (r Ref[T]) Valid() bool {
	if r.world == nil || !r.world.Alive(r.owner) {
		return false
	}
	b := r.comp.base()
	return b.owner == r.owner && b.state == StateActive && !b.detached
}

// Owner returns the referenced owner handle
func (r Ref[T]) Owner() core.Entity { return r.owner }

// IsZero reports an unset reference
func (r Ref[T]) IsZero() bool { return r.world == nil }
