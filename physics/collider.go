package physics

import (
	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/engine"
)

// DefaultLayer is the layer new colliders belong to
const DefaultLayer uint32 = 1

// Collider exposes a shape for overlap and raycast queries
// Registered with Physics from Setup until Unsetup
type Collider struct {
	engine.Base

	Shape      Shape
	DebugColor core.Color
	Layer      uint32

	physics *Physics
}

// NewCollider creates a collider on the default layer
func NewCollider(shape Shape) *Collider {
	return &Collider{
		Shape:      shape,
		DebugColor: core.ColorGreen,
		Layer:      DefaultLayer,
	}
}

func (c *Collider) Setup(ctx *engine.Context) {
	p, ok := From(ctx)
	core.Assert(ok, "collider set up without physics installed")
	if !ok {
		return
	}
	c.physics = p
	p.add(c)
}

func (c *Collider) Unsetup(ctx *engine.Context) {
	if c.physics != nil {
		c.physics.remove(c)
		c.physics = nil
	}
}

// Render queues a debug outline when the physics debug drawer is enabled
func (c *Collider) Render(ctx *engine.Context) {
	if c.physics == nil || !c.physics.Debug || c.physics.drawer == nil {
		return
	}
	c.physics.drawer.DrawDebugRect(c.Bounds().XY(), c.DebugColor)
}

// Bounds resolves the shape through the owner's transform
func (c *Collider) Bounds() Bounds {
	t := c.Transform()
	core.Assert(t != nil, "collider bounds queried before attach")
	if t == nil {
		return Bounds{Kind: c.Shape.Kind}
	}
	return c.Shape.Resolve(t)
}

// Overlaps tests shape overlap against another collider
func (c *Collider) Overlaps(other *Collider) bool {
	return Overlaps(c.Bounds(), other.Bounds())
}

// Raycast tests the ray against this collider within [0, ray.Distance]
func (c *Collider) Raycast(r Ray) (RayHit, bool) {
	dist, point, normal, ok := IntersectRay(r, c.Bounds())
	if !ok || dist > r.Distance {
		return RayHit{}, false
	}
	return RayHit{Point: point, Normal: normal, Distance: dist, Collider: c, Entity: c.Owner()}, true
}

// Registered reports whether the collider is currently in a Physics registry
func (c *Collider) Registered() bool {
	return c.physics != nil
}
