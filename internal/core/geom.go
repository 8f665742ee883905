// Package core provides fundamental types and utilities for the survivors platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in continuous world space.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector's length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalized returns a unit-length vector in the same direction.
// Returns the zero vector for degenerate (zero-length) input.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Angle returns the vector's angle in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns a unit vector pointing along the given angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	rr := r1 + r2
	d := c1.Sub(c2)
	return d.X*d.X+d.Y*d.Y <= rr*rr
}

// PointInCircle reports whether a point lies inside the circle.
func PointInCircle(p, center Vec2, r float64) bool {
	return CirclesOverlap(p, 0, center, r)
}

// RectCircleOverlap reports whether an axis-aligned rectangle centered at rc
// with half-extents hw, hh intersects the circle at cc with radius r.
// Degenerate extents or radius simply shrink the test; it never fails.
func RectCircleOverlap(rc Vec2, hw, hh float64, cc Vec2, r float64) bool {
	dx := math.Abs(cc.X-rc.X) - hw
	dy := math.Abs(cc.Y-rc.Y) - hh
	if dx > r || dy > r {
		return false
	}
	if dx <= 0 || dy <= 0 {
		return true
	}
	return dx*dx+dy*dy <= r*r
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
