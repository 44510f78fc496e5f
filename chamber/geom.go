package chamber

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// OverlapsCircle reports whether the rectangle overlaps a circle.
// Uses the closest-point test: clamp the circle center to the rectangle
// and compare the squared distance against the squared radius.
func (r Rect) OverlapsCircle(cx, cy, radius float64) bool {
	closestX := math.Max(r.X, math.Min(cx, r.X+r.W))
	closestY := math.Max(r.Y, math.Min(cy, r.Y+r.H))

	dx := cx - closestX
	dy := cy - closestY

	return dx*dx+dy*dy < radius*radius
}

// dist returns the euclidean distance between two points.
func dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
