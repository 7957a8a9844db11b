package physics

import (
	"sort"

	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/vmath"
)

// DebugDrawer receives collider outlines when debug drawing is on
type DebugDrawer interface {
	DrawDebugRect(r vmath.Rect, color core.Color)
}

// Stats are cumulative query counters
type Stats struct {
	Raycasts     uint64
	ShapeTests   uint64
	OverlapTests uint64
}

// Physics is the registry of live colliders and answers queries against them
// Registration order is stable and doubles as the tie-break for equal distances
type Physics struct {
	Debug bool

	colliders []*Collider
	holes     int
	iterating int
	drawer    DebugDrawer
	stats     Stats
}

// New creates an empty registry
func New() *Physics {
	return &Physics{colliders: make([]*Collider, 0, 64)}
}

// Install creates a registry and publishes it on the context resources
func Install(ctx *engine.Context) *Physics {
	p := New()
	engine.AddResource(ctx.Resources, p)
	return p
}

// From returns the registry published on the context
func From(ctx *engine.Context) (*Physics, bool) {
	return engine.GetResource[*Physics](ctx.Resources)
}

// SetDebugDrawer wires the sink for collider outlines
func (p *Physics) SetDebugDrawer(d DebugDrawer) {
	p.drawer = d
}

func (p *Physics) add(c *Collider) {
	p.colliders = append(p.colliders, c)
}

// remove tolerates calls during a traversal by leaving a hole compacted afterwards
func (p *Physics) remove(c *Collider) {
	for i, o := range p.colliders {
		if o != c {
			continue
		}
		if p.iterating > 0 {
			p.colliders[i] = nil
			p.holes++
		} else {
			p.colliders = append(p.colliders[:i], p.colliders[i+1:]...)
		}
		return
	}
}

func (p *Physics) begin() { p.iterating++ }

func (p *Physics) end() {
	p.iterating--
	if p.iterating > 0 || p.holes == 0 {
		return
	}
	// Order-preserving compaction
	n := 0
	for _, c := range p.colliders {
		if c != nil {
			p.colliders[n] = c
			n++
		}
	}
	clear(p.colliders[n:])
	p.colliders = p.colliders[:n]
	p.holes = 0
}

// Count returns the number of registered colliders
func (p *Physics) Count() int {
	return len(p.colliders) - p.holes
}

// Colliders returns registered colliders in registration order
func (p *Physics) Colliders() []*Collider {
	out := make([]*Collider, 0, p.Count())
	for _, c := range p.colliders {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Stats returns cumulative query counters
func (p *Physics) Stats() Stats {
	return p.stats
}

// Raycast finds the closest hit in [0, ray.Distance] across all live colliders
// On a miss hit is left untouched; equal distances resolve to the earliest registered collider
func (p *Physics) Raycast(ray Ray, hit *RayHit, params RayParams) bool {
	p.stats.Raycasts++
	p.begin()
	defer p.end()

	var best RayHit
	found := false
	for _, c := range p.colliders {
		if !p.candidate(c, params) {
			continue
		}
		p.stats.ShapeTests++
		h, ok := c.Raycast(ray)
		if !ok {
			continue
		}
		if !params.CanHitFromOrigin && h.Distance <= originEpsilon {
			continue
		}
		if !found || h.Distance < best.Distance {
			best = h
			found = true
		}
	}

	if found && hit != nil {
		*hit = best
	}
	return found
}

// RaycastAll returns every hit sorted by distance, ties in registration order
func (p *Physics) RaycastAll(ray Ray, params RayParams) []RayHit {
	p.stats.Raycasts++
	p.begin()
	defer p.end()

	var hits []RayHit
	for _, c := range p.colliders {
		if !p.candidate(c, params) {
			continue
		}
		p.stats.ShapeTests++
		h, ok := c.Raycast(ray)
		if !ok || (!params.CanHitFromOrigin && h.Distance <= originEpsilon) {
			continue
		}
		hits = append(hits, h)
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Overlapping returns live colliders whose shapes overlap c, excluding c and its owner
func (p *Physics) Overlapping(c *Collider) []*Collider {
	p.begin()
	defer p.end()

	self := c.Bounds()
	var out []*Collider
	for _, o := range p.colliders {
		if o == nil || o == c || o.Owner() == c.Owner() || !o.Runnable() {
			continue
		}
		p.stats.OverlapTests++
		if Overlaps(self, o.Bounds()) {
			out = append(out, o)
		}
	}
	return out
}

// Each visits live colliders in registration order; removal during the visit is safe
func (p *Physics) Each(fn func(*Collider)) {
	p.begin()
	defer p.end()
	for _, c := range p.colliders {
		if c != nil && c.Runnable() {
			fn(c)
		}
	}
}

func (p *Physics) candidate(c *Collider, params RayParams) bool {
	if c == nil || !c.Runnable() {
		return false
	}
	if !params.Ignore.IsZero() && c.Owner() == params.Ignore {
		return false
	}
	if params.Mask != 0 && c.Layer&params.Mask == 0 {
		return false
	}
	return true
}
