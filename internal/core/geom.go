// Package core provides fundamental types and utilities for the frogger
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for cell-space drawing.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Span is a continuous horizontal interval in pixel space.
// The simulation runs in pixels; spans are what hazards and the actor
// occupy within a lane.
type Span struct {
	X float64 // Left edge
	W float64 // Width
}

// Right returns the x-coordinate of the right edge.
func (s Span) Right() float64 {
	return s.X + s.W
}

// Overlaps reports whether two spans share any horizontal extent.
// Touching edges do not count as overlap.
func (s Span) Overlaps(other Span) bool {
	return s.X < other.Right() && other.X < s.Right()
}

// Inset returns the span shrunk by d on both edges.
// A span never inverts; insets larger than half the width collapse it
// to a point at the center.
func (s Span) Inset(d float64) Span {
	w := s.W - 2*d
	if w < 0 {
		return Span{X: s.X + s.W/2, W: 0}
	}
	return Span{X: s.X + d, W: w}
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
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
