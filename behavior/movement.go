// Package behavior holds generic components that query input and physics through
// the per-frame context: movement with collision, look-at, spring arm and lifetime.
package behavior

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/input"
	"github.com/lixenwraith/vi-engine/physics"
	"github.com/lixenwraith/vi-engine/vmath"
)

// Bindings maps keys to movement directions in the owner's XY plane
type Bindings struct {
	Forward, Back, Left, Right input.Key
}

// DefaultBindings uses WASD with arrow keys as the secondary set
var DefaultBindings = []Bindings{
	{Forward: input.RuneKey('w'), Back: input.RuneKey('s'), Left: input.RuneKey('a'), Right: input.RuneKey('d')},
	{
		Forward: input.SpecialKey(tcell.KeyUp),
		Back:    input.SpecialKey(tcell.KeyDown),
		Left:    input.SpecialKey(tcell.KeyLeft),
		Right:   input.SpecialKey(tcell.KeyRight),
	},
}

// DefaultSkinWidth is the gap kept between a mover and what it collides with
const DefaultSkinWidth float32 = 0.05

// Movement translates its owner every frame by Velocity plus input, in units per second
// With Collide set, travel is clamped by a raycast along the motion
type Movement struct {
	engine.Base

	Velocity  mgl32.Vec3
	Speed     float32
	MaxSpeed  float32
	Bindings  []Bindings
	Collide   bool
	SkinWidth float32
	Mask      uint32

	blocked bool
	last    mgl32.Vec3
}

// NewMovement creates a colliding mover driven by the default bindings
func NewMovement(speed float32) *Movement {
	return &Movement{
		Speed:     speed,
		Bindings:  DefaultBindings,
		Collide:   true,
		SkinWidth: DefaultSkinWidth,
	}
}

// Blocked reports whether the last step was shortened by a collider
func (m *Movement) Blocked() bool { return m.blocked }

// LastStep returns the translation applied in the last update
func (m *Movement) LastStep() mgl32.Vec3 { return m.last }

func (m *Movement) Update(ctx *engine.Context) {
	m.blocked = false
	m.last = mgl32.Vec3{}

	v := m.Velocity
	if in, ok := input.From(ctx); ok && m.Speed > 0 {
		v = v.Add(m.steer(in).Mul(m.Speed))
	}
	if m.MaxSpeed > 0 && v.Len() > m.MaxSpeed {
		v = v.Normalize().Mul(m.MaxSpeed)
	}

	step := v.Mul(ctx.DeltaSeconds())
	dist := step.Len()
	if dist < vmath.Epsilon {
		return
	}

	t := m.Transform()
	if m.Collide {
		if p, ok := physics.From(ctx); ok {
			ray := physics.NewRay(t.WorldLocation(), step, dist+m.SkinWidth)
			var hit physics.RayHit
			params := physics.RayParams{Ignore: m.Owner(), Mask: m.Mask}
			if p.Raycast(ray, &hit, params) {
				allowed := max(0, hit.Distance-m.SkinWidth)
				if allowed < dist {
					step = ray.Direction.Mul(allowed)
					m.blocked = true
				}
			}
		}
	}

	t.Translate(step)
	m.last = step
}

// steer returns the unnormalized input direction; +Y is forward
func (m *Movement) steer(in input.Provider) mgl32.Vec3 {
	dir := mgl32.Vec3{in.Axis(input.AxisMoveX), in.Axis(input.AxisMoveY), 0}
	for _, b := range m.Bindings {
		if in.Down(b.Forward) {
			dir[1]++
		}
		if in.Down(b.Back) {
			dir[1]--
		}
		if in.Down(b.Right) {
			dir[0]++
		}
		if in.Down(b.Left) {
			dir[0]--
		}
	}
	if dir.Len() > 1 {
		dir = dir.Normalize()
	}
	return dir
}
