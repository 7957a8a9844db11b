package engine

import "github.com/lixenwraith/vi-engine/core"

// State is the component lifecycle stage
type State uint8

const (
	StateConstructed State = iota // Created, not yet attached
	StateInitialized              // Owner and Transform bound, Setup pending
	StateActive                   // Set up; receives Update/Render while active
	StateUnsetup                  // Unsetup running at the frame boundary
	StateDestroyed                // Released; every Ref to it is invalid
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateInitialized:
		return "initialized"
	case StateActive:
		return "active"
	case StateUnsetup:
		return "unsetup"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Component is a behavior or data unit attached to an entity
// Implementations embed Base; hooks are optional interfaces below
type Component interface {
	base() *Base
}

// Setupper runs once, right after the component is bound to its owner
type Setupper interface {
	Setup(ctx *Context)
}

// Unsetupper runs exactly once when the component or its owner is destroyed at a frame boundary
type Unsetupper interface {
	Unsetup(ctx *Context)
}

// Updater runs once per frame in ascending priority order
type Updater interface {
	Update(ctx *Context)
}

// RenderHook runs once per frame after the update pass, before the render batch dispatches
type RenderHook interface {
	Render(ctx *Context)
}

// Base carries the ownership and scheduling state every component shares
type Base struct {
	world     *World
	owner     core.Entity
	transform *Transform
	priority  int
	inactive  bool
	detached  bool
	state     State
}

func (b *Base) base() *Base { return b }

// Owner returns the owning entity handle; validate with World.Alive before trusting it
func (b *Base) Owner() core.Entity { return b.owner }

// World returns the world the component is attached to, nil before attach
func (b *Base) World() *World { return b.world }

// Transform returns the owner's transform, nil before attach
func (b *Base) Transform() *Transform { return b.transform }

// PriorityOrder returns the update ordering key (ascending runs earlier)
func (b *Base) PriorityOrder() int { return b.priority }

// SetPriorityOrder sets the ordering key; only honored before attach
func (b *Base) SetPriorityOrder(p int) {
	core.Assert(b.state == StateConstructed, "priority changed after attach")
	b.priority = p
}

// IsActive reports whether the component participates in update and render
func (b *Base) IsActive() bool { return !b.inactive }

// SetActive toggles participation without detaching
func (b *Base) SetActive(active bool) { b.inactive = !active }

// State returns the lifecycle stage
func (b *Base) State() State { return b.state }

// Live reports whether the component is attached, set up and its owner alive
func (b *Base) Live() bool {
	return b.state == StateActive && !b.detached && b.world != nil && b.world.Alive(b.owner)
}

// Runnable reports whether the component should receive per-frame hooks
func (b *Base) Runnable() bool {
	return b.Live() && !b.inactive
}

// BaseOf exposes the shared state of a component held only by interface
func BaseOf(c Component) *Base {
	return c.base()
}
