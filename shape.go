package wicket

import "math"

// Shape is a widget's collision region. Shapes are positioned with their
// origin centered on the widget's location; Update re-syncs position and
// scale from the widget's transform every frame before hit testing.
type Shape interface {
	// Contains reports whether the point (x, y) lies inside the shape.
	Contains(x, y float64) bool

	setTransform(x, y, scaleX, scaleY float64)
}

// RectShape is an axis-aligned rectangular collision region centered on the
// owning widget's position. Containment honors the widget's scale.
type RectShape struct {
	Width, Height float64

	x, y           float64
	scaleX, scaleY float64
}

// NewRectShape creates a rectangular collision shape of the given size.
func NewRectShape(width, height float64) *RectShape {
	return &RectShape{Width: width, Height: height, scaleX: 1, scaleY: 1}
}

// Contains reports whether (x, y) lies inside the scaled, centered bounds.
// Points on the edge are considered inside.
func (r *RectShape) Contains(x, y float64) bool {
	hw := r.Width * r.scaleX / 2
	hh := r.Height * r.scaleY / 2
	return x >= r.x-hw && x <= r.x+hw &&
		y >= r.y-hh && y <= r.y+hh
}

func (r *RectShape) setTransform(x, y, scaleX, scaleY float64) {
	r.x = x
	r.y = y
	r.scaleX = scaleX
	r.scaleY = scaleY
}

// CircleShape is a circular collision region centered on the owning widget's
// position. Containment uses the unscaled radius.
type CircleShape struct {
	Radius float64

	x, y           float64
	scaleX, scaleY float64
}

// NewCircleShape creates a circular collision shape of the given radius.
func NewCircleShape(radius float64) *CircleShape {
	return &CircleShape{Radius: radius, scaleX: 1, scaleY: 1}
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (c *CircleShape) Contains(x, y float64) bool {
	return distance(x, y, c.x, c.y) < c.Radius
}

func (c *CircleShape) setTransform(x, y, scaleX, scaleY float64) {
	c.x = x
	c.y = y
	c.scaleX = scaleX
	c.scaleY = scaleY
}

// distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// clampMagnitude limits v to [-limit, limit].
func clampMagnitude(v, limit float64) float64 {
	return clamp(v, -limit, limit)
}
