// Package core provides fundamental types and utilities for the arcade.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in playfield pixels.
// Positions are fractional so sub-pixel velocities accumulate correctly.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a rectangle of the given size centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// SetLeft moves the rectangle so its left edge is at x.
func (r *Rect) SetLeft(x float64) {
	r.X = x
}

// SetRight moves the rectangle so its right edge is at x.
func (r *Rect) SetRight(x float64) {
	r.X = x - r.W
}

// SetTop moves the rectangle so its top edge is at y.
func (r *Rect) SetTop(y float64) {
	r.Y = y
}

// SetBottom moves the rectangle so its bottom edge is at y.
func (r *Rect) SetBottom(y float64) {
	r.Y = y - r.H
}

// SetCenter moves the rectangle so its center is at (cx, cy).
func (r *Rect) SetCenter(cx, cy float64) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Translate moves the rectangle by (dx, dy).
func (r *Rect) Translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}
