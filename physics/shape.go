package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/engine"
	"github.com/lixenwraith/vi-engine/vmath"
)

// ShapeKind tags the collider shape variant
type ShapeKind uint8

const (
	ShapeRect   ShapeKind = iota // 2D rectangle on the XY plane, unbounded in Z
	ShapeBox                     // Axis-aligned 3D box
	ShapeSphere                  // Sphere
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Shape is a closed sum type over collider shapes, expressed in the owner's local space
// Only the fields of the active Kind are meaningful
type Shape struct {
	Kind   ShapeKind
	Rect   vmath.Rect // ShapeRect
	Center mgl32.Vec3 // ShapeBox, ShapeSphere: offset from owner location
	Size   mgl32.Vec3 // ShapeBox: full extents
	Radius float32    // ShapeSphere
}

// RectShape creates a rectangle shape from a local rect
func RectShape(local vmath.Rect) Shape {
	return Shape{Kind: ShapeRect, Rect: local.Canon()}
}

// BoxShape creates an axis-aligned box centered at a local offset
func BoxShape(center, size mgl32.Vec3) Shape {
	return Shape{Kind: ShapeBox, Center: center, Size: size}
}

// SphereShape creates a sphere centered at a local offset
func SphereShape(center mgl32.Vec3, radius float32) Shape {
	return Shape{Kind: ShapeSphere, Center: center, Radius: radius}
}

// Bounds is a shape resolved into world space
type Bounds struct {
	Kind   ShapeKind
	Rect   vmath.Rect
	Box    vmath.AABB
	Center mgl32.Vec3
	Radius float32
}

// Resolve maps the shape through the transform's world location and accumulated scale
// Rotation is ignored: rects and boxes stay axis aligned
func (s Shape) Resolve(t *engine.Transform) Bounds {
	loc := t.WorldLocation()
	scale := t.WorldScale()

	switch s.Kind {
	case ShapeRect:
		r := s.Rect.
			Scale(mgl32.Vec2{scale.X(), scale.Y()}).
			Translate(mgl32.Vec2{loc.X(), loc.Y()})
		return Bounds{Kind: ShapeRect, Rect: r}
	case ShapeBox:
		center := loc.Add(mulElem(s.Center, scale))
		return Bounds{Kind: ShapeBox, Box: vmath.AABBFromCenter(center, mulElem(s.Size, scale))}
	case ShapeSphere:
		center := loc.Add(mulElem(s.Center, scale))
		return Bounds{Kind: ShapeSphere, Center: center, Radius: s.Radius * maxAbs(scale)}
	default:
		return Bounds{Kind: s.Kind}
	}
}

// XY returns the bounds projected onto the XY plane, used for debug drawing
func (b Bounds) XY() vmath.Rect {
	switch b.Kind {
	case ShapeRect:
		return b.Rect
	case ShapeBox:
		return b.Box.XY()
	case ShapeSphere:
		return vmath.Rect{X: b.Center.X() - b.Radius, Y: b.Center.Y() - b.Radius, W: 2 * b.Radius, H: 2 * b.Radius}
	default:
		return vmath.Rect{}
	}
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func maxAbs(v mgl32.Vec3) float32 {
	m := math.Max(math.Abs(float64(v.X())), math.Abs(float64(v.Y())))
	return float32(math.Max(m, math.Abs(float64(v.Z()))))
}
