// Package core provides fundamental types and utilities for the arena.
// It contains no external dependencies (especially no Bubble Tea or ECS) to
// keep simulation inputs pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a planar vector. Used for the movement stick of an intent.
type Vec2 struct {
	X, Y float64
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// NormalizeOrZero returns a unit vector, or the zero vector for zero input.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Vec3 is a world-space vector. The arena is top-down: X is east, Z is
// south, Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSq returns the squared length.
func (v Vec3) LengthSq() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Distance returns the distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// NormalizeOrZero returns a unit vector, or the zero vector for zero input.
func (v Vec3) NormalizeOrZero() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
