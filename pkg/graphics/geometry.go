// Package graphics provides the geometry, color and text measurement types
// shared by the tab scroll engine and its hosts.
package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// ContainsX reports whether x lies within [Left, Right).
func (r Rect) ContainsX(x float64) bool {
	return x >= r.Left && x < r.Right
}

// EdgeInsets describes padding on each side of a box. The scroll engine
// only uses the horizontal edges.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt restricts value to [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// NearlyEqual returns true if two float64 values are approximately equal.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
