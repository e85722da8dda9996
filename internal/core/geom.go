// Package core provides the cell-level types the runner shell renders
// with. It contains no external dependencies (especially no Bubble Tea)
// so the projection from world space to cells stays testable.
package core

// Rect is an axis-aligned box in screen cell coordinates. The right
// and bottom edges are exclusive, so a 1x1 rect covers a single cell.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a rect from a top-left corner and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two rects share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the rect's center cell, rounding toward the top left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Abs returns the absolute value of an int.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
