// Package core provides fundamental types shared by the simulation, the
// frame driver and the media backends. It has no external dependencies so
// game logic stays pure and testable.
package core

// FRect is an axis-aligned rectangle in continuous window coordinates.
type FRect struct {
	X, Y float32 // Top-left corner position
	W, H float32 // Width and height
}

// NewFRect creates a new rectangle with the given position and dimensions.
func NewFRect(x, y, w, h float32) FRect {
	return FRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float32 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r FRect) Intersects(other FRect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale returns the rectangle with position and size multiplied by sx, sy.
// Backends use it to map window coordinates onto a differently sized target.
func (r FRect) Scale(sx, sy float32) FRect {
	return FRect{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}
}
