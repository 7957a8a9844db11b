package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/vi-engine/vmath"
)

// Overlaps tests two world-space shapes for strictly positive overlap
// Touching boundaries do not overlap; rect pairs compare on the XY plane
func Overlaps(a, b Bounds) bool {
	if a.Kind > b.Kind {
		a, b = b, a
	}

	switch {
	case a.Kind == ShapeRect && b.Kind == ShapeRect:
		return a.Rect.Intersects(b.Rect)
	case a.Kind == ShapeRect && b.Kind == ShapeBox:
		return a.Rect.Intersects(b.Box.XY())
	case a.Kind == ShapeRect && b.Kind == ShapeSphere:
		return rectSphere(a.Rect, b.Center, b.Radius)
	case a.Kind == ShapeBox && b.Kind == ShapeBox:
		return a.Box.Intersects(b.Box)
	case a.Kind == ShapeBox && b.Kind == ShapeSphere:
		p := a.Box.ClosestPoint(b.Center)
		return p.Sub(b.Center).LenSqr() < b.Radius*b.Radius
	case a.Kind == ShapeSphere && b.Kind == ShapeSphere:
		r := a.Radius + b.Radius
		return a.Center.Sub(b.Center).LenSqr() < r*r
	}
	return false
}

func rectSphere(r vmath.Rect, center mgl32.Vec3, radius float32) bool {
	cx := mgl32.Clamp(center.X(), r.X, r.X+r.W)
	cy := mgl32.Clamp(center.Y(), r.Y, r.Y+r.H)
	dx, dy := center.X()-cx, center.Y()-cy
	return dx*dx+dy*dy < radius*radius
}
