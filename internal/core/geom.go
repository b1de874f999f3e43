// Package core provides fundamental types and utilities for the game and its
// front-ends. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Box is an axis-aligned bounding box in world units.
// All simulation entities expose their hitbox as a Box.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether the two boxes intersect on both axes.
// Touching edges count as overlapping. The test is symmetric.
func (b Box) Overlaps(other Box) bool {
	if b.Right() < other.X || other.Right() < b.X {
		return false
	}
	if b.Bottom() < other.Y || other.Bottom() < b.Y {
		return false
	}
	return true
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
