package wicket

// Transform holds the position, scale, and rotation shared by all widgets.
// Fields may be set directly or through the setters; widgets read the
// transform every Update and Draw, so changes take effect the next frame.
type Transform struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians, applied around the centered origin at draw time
}

// newTransform returns a Transform with identity scale.
func newTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// SetPosition sets the widget's position.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

// Position returns the widget's position.
func (t *Transform) Position() (x, y float64) {
	return t.X, t.Y
}

// SetScale sets the widget's scale factors.
func (t *Transform) SetScale(sx, sy float64) {
	t.ScaleX = sx
	t.ScaleY = sy
}

// Scale returns the widget's scale factors.
func (t *Transform) Scale() (sx, sy float64) {
	return t.ScaleX, t.ScaleY
}

// SetRotation sets the widget's rotation in radians.
func (t *Transform) SetRotation(r float64) {
	t.Rotation = r
}
