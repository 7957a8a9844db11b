package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-engine/vmath"
)

func TestMatrixCachedUntilMutation(t *testing.T) {
	tr := NewTransform()

	m1 := tr.Matrix()
	assert.Equal(t, 1, tr.Recomputes())
	assert.True(t, m1.ApproxEqual(mgl32.Ident4()))

	// Consecutive reads without mutation must not recompute
	tr.Matrix()
	tr.Matrix()
	assert.Equal(t, 1, tr.Recomputes())
	assert.False(t, tr.Dirty())

	tr.SetLocation(mgl32.Vec3{1, 2, 3})
	assert.True(t, tr.Dirty())
	tr.Matrix()
	assert.Equal(t, 2, tr.Recomputes())
}

func TestMatrixReflectsMostRecentValues(t *testing.T) {
	tr := NewTransform()

	// Several mutations between reads collapse into one recompute
	tr.SetLocation(mgl32.Vec3{100, 100, 100})
	tr.SetScale(mgl32.Vec3{9, 9, 9})
	tr.SetLocation(mgl32.Vec3{1, 2, 3})
	rot := mgl32.QuatRotate(mgl32.DegToRad(45), vmath.Up)
	tr.SetRotation(rot)
	tr.SetScale(mgl32.Vec3{2, 3, 4})

	want := vmath.Compose(mgl32.Vec3{1, 2, 3}, rot, mgl32.Vec3{2, 3, 4})
	got := tr.Matrix()
	assert.True(t, got.ApproxEqualThreshold(want, 1e-5), "got %v want %v", got, want)
	assert.Equal(t, 1, tr.Recomputes())
}

func TestAxesFollowRotation(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.Forward().ApproxEqual(vmath.Forward))
	assert.True(t, tr.Right().ApproxEqual(vmath.Right))
	assert.True(t, tr.Up().ApproxEqual(vmath.Up))

	tr.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), vmath.Up))
	assert.True(t, tr.Forward().ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-5), "forward %v", tr.Forward())
	assert.True(t, tr.Right().ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5), "right %v", tr.Right())
}

func TestLookAt(t *testing.T) {
	tr := NewTransform()
	tr.SetLocation(mgl32.Vec3{1, 1, 1})
	tr.LookAt(mgl32.Vec3{1, 1, 11})
	assert.True(t, tr.Forward().ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5))

	before := tr.Rotation()
	tr.LookAt(tr.Location())
	assert.Equal(t, before, tr.Rotation(), "degenerate target keeps rotation")
}

func TestRectOffsetsAndScales(t *testing.T) {
	tr := NewTransform()
	tr.SetLocation(mgl32.Vec3{10, 20, 0})
	tr.SetScale(mgl32.Vec3{2, 3, 1})

	got := tr.Rect(vmath.Rect{X: -1, Y: -1, W: 2, H: 2})
	assert.Equal(t, vmath.Rect{X: 8, Y: 17, W: 4, H: 6}, got)
}

func TestParentChangeInvalidatesChild(t *testing.T) {
	ctx := NewContext()
	w := ctx.World

	parent := w.Spawn("parent")
	child := w.Spawn("child")
	pt, _ := w.Transform(parent)
	ct, _ := w.Transform(child)

	require.True(t, ct.SetParent(parent))
	pt.SetLocation(mgl32.Vec3{5, 0, 0})
	ct.SetLocation(mgl32.Vec3{0, 1, 0})

	assert.True(t, ct.WorldLocation().ApproxEqual(mgl32.Vec3{5, 1, 0}))
	n := ct.Recomputes()

	ct.Matrix()
	assert.Equal(t, n, ct.Recomputes(), "no change, no recompute")

	pt.SetLocation(mgl32.Vec3{7, 0, 0})
	assert.True(t, ct.WorldLocation().ApproxEqual(mgl32.Vec3{7, 1, 0}))
	assert.Equal(t, n+1, ct.Recomputes())

	// Dead parent is observably ignored
	w.Kill(parent)
	assert.True(t, ct.WorldLocation().ApproxEqual(mgl32.Vec3{0, 1, 0}))
}

func TestSetParentRejectsCycles(t *testing.T) {
	ctx := NewContext()
	w := ctx.World

	a := w.Spawn("a")
	b := w.Spawn("b")
	at, _ := w.Transform(a)
	bt, _ := w.Transform(b)

	require.True(t, bt.SetParent(a))
	assert.False(t, at.SetParent(b))
	assert.False(t, at.SetParent(a))
	assert.True(t, bt.SetParent(w.Spawn("c")))
}

func TestWorldGeometryFollowsParent(t *testing.T) {
	ctx := NewContext()
	w := ctx.World

	parent := w.Spawn("parent")
	child := w.Spawn("child")
	pt, _ := w.Transform(parent)
	ct, _ := w.Transform(child)
	require.True(t, ct.SetParent(parent))

	pt.SetLocation(mgl32.Vec3{10, 0, 0})
	pt.SetScale(mgl32.Vec3{2, 2, 2})
	ct.SetScale(mgl32.Vec3{1, -1, 1})

	assert.Equal(t, mgl32.Vec3{2, -2, 2}, ct.WorldScale())
	assert.Equal(t, vmath.Rect{X: 8, Y: -2, W: 4, H: 4}, ct.Rect(vmath.Rect{X: -1, Y: -1, W: 2, H: 2}))

	ct.SetWorldLocation(mgl32.Vec3{14, 0, 0})
	assert.True(t, ct.Location().ApproxEqualThreshold(mgl32.Vec3{2, 0, 0}, 1e-5))
	assert.True(t, ct.WorldLocation().ApproxEqualThreshold(mgl32.Vec3{14, 0, 0}, 1e-5))
}

func TestLookAtUnderRotatedParent(t *testing.T) {
	ctx := NewContext()
	w := ctx.World

	parent := w.Spawn("parent")
	child := w.Spawn("child")
	pt, _ := w.Transform(parent)
	ct, _ := w.Transform(child)
	require.True(t, ct.SetParent(parent))

	pt.SetLocation(mgl32.Vec3{10, 0, 0})
	pt.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), vmath.Up))

	ct.LookAt(mgl32.Vec3{10, 0, 10})
	forward := ct.WorldRotation().Rotate(vmath.Forward)
	assert.True(t, forward.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-4), "forward %v", forward)
}
