package behavior

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/physics"
)

// LookAt turns its owner toward a target entity every frame
// The target is revalidated each frame; a dead target leaves the rotation unchanged
type LookAt struct {
	engine.Base

	Target core.Entity

	lost bool
}

// NewLookAt creates a look-at running after movement
func NewLookAt(target core.Entity) *LookAt {
	l := &LookAt{Target: target}
	l.SetPriorityOrder(10)
	return l
}

// Lost reports whether the target was gone at the last update
func (l *LookAt) Lost() bool { return l.lost }

func (l *LookAt) Update(ctx *engine.Context) {
	target, ok := ctx.World.Transform(l.Target)
	l.lost = !ok
	if !ok {
		return
	}
	l.Transform().LookAt(target.WorldLocation())
}

// DefaultArmMargin is the gap kept between the arm end and a blocking collider
const DefaultArmMargin float32 = 0.2

// SpringArm keeps its owner at Length along Direction from the target pivot
// and pulls in when a collider blocks the arm, then faces the pivot
type SpringArm struct {
	engine.Base

	Target    core.Entity
	Length    float32
	Direction mgl32.Vec3
	Offset    mgl32.Vec3 // pivot offset from the target location
	Margin    float32
	Mask      uint32

	current float32
	lost    bool
}

// NewSpringArm creates an arm of the given length behind the target along +Z
func NewSpringArm(target core.Entity, length float32) *SpringArm {
	a := &SpringArm{
		Target:    target,
		Length:    length,
		Direction: mgl32.Vec3{0, 0, 1},
		Margin:    DefaultArmMargin,
	}
	a.SetPriorityOrder(20)
	return a
}

// CurrentLength returns the arm length after the last collision test
func (a *SpringArm) CurrentLength() float32 { return a.current }

func (a *SpringArm) Lost() bool { return a.lost }

func (a *SpringArm) Update(ctx *engine.Context) {
	target, ok := ctx.World.Transform(a.Target)
	a.lost = !ok
	if !ok || a.Direction.Len() == 0 {
		return
	}

	pivot := target.WorldLocation().Add(a.Offset)
	dir := a.Direction.Normalize()
	length := a.Length

	if p, ok := physics.From(ctx); ok {
		ray := physics.NewRay(pivot, dir, a.Length)
		// Closest hit that is neither the target nor the arm owner
		for _, hit := range p.RaycastAll(ray, physics.RayParams{Ignore: a.Target, Mask: a.Mask}) {
			if hit.Entity == a.Owner() {
				continue
			}
			length = max(0, hit.Distance-a.Margin)
			break
		}
	}

	a.current = length
	t := a.Transform()
	t.SetWorldLocation(pivot.Add(dir.Mul(length)))
	t.LookAt(pivot)
}
