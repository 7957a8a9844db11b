package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/core"
	"github.com/lixenwraith/vi-engine/vmath"
)

// Transform holds location/rotation/scale and a lazily cached local-to-world matrix
// The matrix is recomputed only when a setter marked it dirty or the parent's matrix changed
type Transform struct {
	Base

	location mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3

	matrix   mgl32.Mat4
	dirty    bool
	revision uint64 // Bumped on every recompute; children compare against it

	parent         core.Entity
	boundParent    *Transform // Parent used for the cached matrix, nil if none
	parentRevision uint64

	recomputes int
}

// NewTransform creates an identity transform
func NewTransform() *Transform {
	return &Transform{
		rotation: mgl32.QuatIdent(),
		scale:    vmath.One,
		matrix:   mgl32.Ident4(),
		dirty:    true,
	}
}

func (t *Transform) Location() mgl32.Vec3 { return t.location }

func (t *Transform) Rotation() mgl32.Quat { return t.rotation }

func (t *Transform) Scale() mgl32.Vec3 { return t.scale }

func (t *Transform) SetLocation(v mgl32.Vec3) {
	t.location = v
	t.dirty = true
}

func (t *Transform) SetRotation(q mgl32.Quat) {
	t.rotation = q
	t.dirty = true
}

func (t *Transform) SetScale(v mgl32.Vec3) {
	t.scale = v
	t.dirty = true
}

// Translate offsets the location
func (t *Transform) Translate(d mgl32.Vec3) {
	t.SetLocation(t.location.Add(d))
}

// Rotate applies q on top of the current rotation
func (t *Transform) Rotate(q mgl32.Quat) {
	t.SetRotation(q.Mul(t.rotation).Normalize())
}

// Dirty reports whether the next Matrix call recomputes the local part
func (t *Transform) Dirty() bool { return t.dirty }

// Recomputes counts matrix recomputations since creation
func (t *Transform) Recomputes() int { return t.recomputes }

// Matrix returns the local-to-world matrix, composed T*R*S and prefixed by the parent's matrix
func (t *Transform) Matrix() mgl32.Mat4 {
	parent := t.parentTransform()

	var parentMatrix mgl32.Mat4
	if parent != nil {
		// Refresh the chain first so its revision is current
		parentMatrix = parent.Matrix()
	}

	stale := t.dirty || parent != t.boundParent
	if parent != nil && parent.revision != t.parentRevision {
		stale = true
	}
	if !stale {
		return t.matrix
	}

	local := vmath.Compose(t.location, t.rotation, t.scale)
	if parent != nil {
		t.matrix = parentMatrix.Mul4(local)
		t.parentRevision = parent.revision
	} else {
		t.matrix = local
	}
	t.boundParent = parent
	t.dirty = false
	t.revision++
	t.recomputes++
	return t.matrix
}

// WorldLocation returns the translation of the world matrix
func (t *Transform) WorldLocation() mgl32.Vec3 {
	return t.Matrix().Col(3).Vec3()
}

// Forward applies the rotation to the local forward axis
func (t *Transform) Forward() mgl32.Vec3 { return t.rotation.Rotate(vmath.Forward) }

// Right applies the rotation to the local right axis
func (t *Transform) Right() mgl32.Vec3 { return t.rotation.Rotate(vmath.Right) }

// Up applies the rotation to the local up axis
func (t *Transform) Up() mgl32.Vec3 { return t.rotation.Rotate(vmath.Up) }

// WorldScale returns the scale accumulated through the parent chain
// Signs are kept so mirrored parents mirror their children
func (t *Transform) WorldScale() mgl32.Vec3 {
	if parent := t.parentTransform(); parent != nil {
		ps := parent.WorldScale()
		return mgl32.Vec3{t.scale.X() * ps.X(), t.scale.Y() * ps.Y(), t.scale.Z() * ps.Z()}
	}
	return t.scale
}

// WorldRotation returns the rotation accumulated through the parent chain
func (t *Transform) WorldRotation() mgl32.Quat {
	if parent := t.parentTransform(); parent != nil {
		return parent.WorldRotation().Mul(t.rotation).Normalize()
	}
	return t.rotation
}

// SetWorldLocation places the transform at a world position, converting through the parent
func (t *Transform) SetWorldLocation(v mgl32.Vec3) {
	if parent := t.parentTransform(); parent != nil {
		v = vmath.TransformPoint(parent.Matrix().Inv(), v)
	}
	t.SetLocation(v)
}

// LookAt orients the world forward axis toward a world-space target
// A target at the world location is a no-op
func (t *Transform) LookAt(target mgl32.Vec3) {
	dir := target.Sub(t.WorldLocation())
	if dir.Len() < vmath.Epsilon {
		return
	}
	rot := vmath.LookRotation(dir, vmath.Up)
	if parent := t.parentTransform(); parent != nil {
		rot = parent.WorldRotation().Inverse().Mul(rot).Normalize()
	}
	t.SetRotation(rot)
}

// Rect maps a local 2D rect through the world XY scale and world location
func (t *Transform) Rect(local vmath.Rect) vmath.Rect {
	loc := t.WorldLocation()
	scale := t.WorldScale()
	return local.
		Scale(mgl32.Vec2{scale.X(), scale.Y()}).
		Translate(mgl32.Vec2{loc.X(), loc.Y()})
}

// SetParent attaches this transform under the transform of entity p
// Zero p detaches; returns false for unknown entities or when a cycle would form
func (t *Transform) SetParent(p core.Entity) bool {
	if p.IsZero() {
		t.parent = core.Entity{}
		return true
	}
	if t.world == nil {
		return false
	}
	pt, ok := t.world.Transform(p)
	if !ok {
		return false
	}
	for cur := pt; cur != nil; cur = cur.parentTransform() {
		if cur == t {
			return false
		}
	}
	t.parent = p
	return true
}

// Parent returns the parent entity handle, zero when unparented
func (t *Transform) Parent() core.Entity { return t.parent }

// parentTransform resolves the parent, nil when unset or no longer alive
func (t *Transform) parentTransform() *Transform {
	if t.parent.IsZero() || t.world == nil {
		return nil
	}
	pt, ok := t.world.Transform(t.parent)
	if !ok {
		return nil
	}
	return pt
}
