// Package physics provides axis-aligned collision detection utilities.
package physics

// Rect is an axis-aligned bounding box in world coordinates.
// X, Y is the bottom-left corner; the box extends to X+W, Y+H.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle with the given origin and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap. Boxes that only share an
// edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the box.
// The left and bottom edges are inclusive, the right and top exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Top()
}

// CenterX returns the x-coordinate of the box center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// Clamp restricts v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
