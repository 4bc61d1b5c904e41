package physics

import (
	"github.com/lixenwraith/card-grove/core"
)

// AABB is an axis-aligned bounding box in world space
type AABB struct {
	Min, Max core.Vec2
}

// FromCenter builds a box from a center point and half extents
func FromCenter(center, half core.Vec2) AABB {
	return AABB{
		Min: core.Vec2{X: center.X - half.X, Y: center.Y - half.Y},
		Max: core.Vec2{X: center.X + half.X, Y: center.Y + half.Y},
	}
}

// Overlaps reports whether two boxes intersect
// Touching edges do not count as overlap
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// Contains reports whether the box contains a point
func (a AABB) Contains(p core.Vec2) bool {
	return a.Min.X < p.X && p.X < a.Max.X &&
		a.Min.Y < p.Y && p.Y < a.Max.Y
}
