// Package sim implements the frame-stepped simulation core of the runner:
// player physics, procedural obstacle and power-up spawning, per-variant
// motion, and broad/continuous/narrow-phase collision detection. The
// package is pure logic with no external dependencies so it can be
// advanced and inspected from tests and headless tools alike.
package sim

import "math"

// Rect is an axis-aligned bounding box in world coordinates.
// Y grows downward, matching screen space.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX returns the x-coordinate of the rectangle's center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the y-coordinate of the rectangle's center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Inset returns the rectangle shrunk by pad on every side.
// A negative pad expands the rectangle instead.
func (r Rect) Inset(pad float64) Rect {
	return Rect{X: r.X + pad, Y: r.Y + pad, W: r.W - 2*pad, H: r.H - 2*pad}
}

// Overlaps reports whether two rectangles overlap. Edges that exactly
// touch count as overlapping: comparisons are inclusive within eps.
func (r Rect) Overlaps(other Rect, eps float64) bool {
	return r.X <= other.Right()+eps &&
		other.X <= r.Right()+eps &&
		r.Y <= other.Bottom()+eps &&
		other.Y <= r.Bottom()+eps
}

// ContainsPoint reports whether the point (x, y) lies inside the
// rectangle, edges inclusive.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// SweptAABB computes the time of impact of a rectangle moving by
// (dx, dy) over one tick against a static rectangle, using the slab
// method. The returned TOI is in [0, 1]; ok is false when the paths do
// not cross within the tick. If the rectangles already overlap at the
// start of the tick the TOI is exactly 0.
//
// Zero-velocity axes substitute infinite entry/exit times rather than
// guarding the division: a finite "no collision" answer there would
// silently re-admit tunneling.
func SweptAABB(moving Rect, dx, dy float64, target Rect) (toi float64, ok bool) {
	if moving.Overlaps(target, 0) {
		return 0, true
	}

	var entryX, exitX float64
	if dx == 0 {
		if moving.Right() < target.X || moving.X > target.Right() {
			return 0, false
		}
		entryX = math.Inf(-1)
		exitX = math.Inf(1)
	} else {
		invEntry := target.X - moving.Right()
		invExit := target.Right() - moving.X
		if dx < 0 {
			invEntry = target.Right() - moving.X
			invExit = target.X - moving.Right()
		}
		entryX = invEntry / dx
		exitX = invExit / dx
	}

	var entryY, exitY float64
	if dy == 0 {
		if moving.Bottom() < target.Y || moving.Y > target.Bottom() {
			return 0, false
		}
		entryY = math.Inf(-1)
		exitY = math.Inf(1)
	} else {
		invEntry := target.Y - moving.Bottom()
		invExit := target.Bottom() - moving.Y
		if dy < 0 {
			invEntry = target.Bottom() - moving.Y
			invExit = target.Y - moving.Bottom()
		}
		entryY = invEntry / dy
		exitY = invExit / dy
	}

	entry := math.Max(entryX, entryY)
	exit := math.Min(exitX, exitY)

	if entry > exit || entry < 0 || entry > 1 {
		return 0, false
	}
	return entry, true
}

// SegmentsIntersect reports whether the segments (x1,y1)-(x2,y2) and
// (x3,y3)-(x4,y4) cross. Both intersection parameters are bounded to
// [0, 1]; parallel segments never intersect.
func SegmentsIntersect(x1, y1, x2, y2, x3, y3, x4, y4 float64) bool {
	denom := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if denom == 0 {
		return false
	}
	uA := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / denom
	uB := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / denom
	return uA >= 0 && uA <= 1 && uB >= 0 && uB <= 1
}

// SegmentIntersectsRect reports whether the segment (x1,y1)-(x2,y2)
// crosses or lies inside the rectangle.
func SegmentIntersectsRect(x1, y1, x2, y2 float64, r Rect) bool {
	// A segment fully inside the rect crosses no edge.
	if r.ContainsPoint(x1, y1) || r.ContainsPoint(x2, y2) {
		return true
	}
	if SegmentsIntersect(x1, y1, x2, y2, r.X, r.Y, r.Right(), r.Y) {
		return true
	}
	if SegmentsIntersect(x1, y1, x2, y2, r.X, r.Bottom(), r.Right(), r.Bottom()) {
		return true
	}
	if SegmentsIntersect(x1, y1, x2, y2, r.X, r.Y, r.X, r.Bottom()) {
		return true
	}
	return SegmentsIntersect(x1, y1, x2, y2, r.Right(), r.Y, r.Right(), r.Bottom())
}

// CircleIntersectsRect reports whether a circle at (cx, cy) with the
// given radius touches the rectangle. Compares squared distance from
// the circle center to the nearest point on the rectangle.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	nearestX := math.Max(r.X, math.Min(cx, r.Right()))
	nearestY := math.Max(r.Y, math.Min(cy, r.Bottom()))
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= radius*radius
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
