package core

import "math"

// Vec2 is a 2D world-space vector
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by factor
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Length returns the vector magnitude
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared magnitude without sqrt
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Length()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// DistanceSq returns the squared distance between two points
func (v Vec2) DistanceSq(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}
