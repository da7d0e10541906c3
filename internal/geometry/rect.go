// Package geometry provides the integer cell-grid primitives shared by the
// layout tree and the drag-and-drop engine.
package geometry

// Point is a position in viewport cells.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned bounding box in viewport cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// MidX returns the horizontal midpoint of the rect.
func (r Rect) MidX() int {
	return r.X + r.Width/2
}

// MidY returns the vertical midpoint of the rect.
func (r Rect) MidY() int {
	return r.Y + r.Height/2
}

// Right returns the first column past the rect.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Clamp constrains value to the inclusive range [lo, hi]. When hi < lo the
// range is collapsed to lo, which is what a window larger than its surface
// degrades to.
func Clamp(value, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampInto positions a box of the given size inside the container so that it
// is fully visible, keeping the candidate position when it already fits.
func ClampInto(candidate Point, width, height int, container Rect) Point {
	return Point{
		X: Clamp(candidate.X, container.X, container.Right()-width),
		Y: Clamp(candidate.Y, container.Y, container.Bottom()-height),
	}
}
