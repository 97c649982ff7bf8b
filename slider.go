package wicket

import "github.com/hajimehoshi/ebiten/v2"

// Slider is a draggable control whose value in [-1, 1] tracks the cursor
// along one axis while hit. It renders from the same vertical spritesheet
// format as Knob.
//
// Freezing a slider turns it into a progress bar: with transitions disabled
// the value only changes through SetValue, and Update keeps the displayed
// frame in sync.
//
// The zero value is not usable; construct with NewSlider.
type Slider struct {
	Clickable

	sprite Sprite
	axis   Axis
	value  float64
}

// NewSlider creates a slider with the given rectangular collision shape,
// spritesheet, and travel axis. Panics if shape is nil.
func NewSlider(shape *RectShape, sprite Sprite, axis Axis) *Slider {
	if shape == nil {
		panic("wicket: NewSlider requires a collision shape")
	}
	s := &Slider{sprite: sprite, axis: axis}
	s.init(shape)
	return s
}

// Axis returns the slider's travel axis.
func (s *Slider) Axis() Axis {
	return s.axis
}

// Update runs the base transitions, then, while Hit, recomputes the value
// from the cursor's offset from the slider's center, normalized by the
// collision shape's size and the widget's scale. The value is clamped to
// [-1, 1] and the spritesheet frame re-selected every frame.
func (s *Slider) Update(p Pointer) {
	s.Clickable.Update(p)

	if s.state == StateHit {
		shape := s.shape.(*RectShape)
		x, y := p.CursorPosition()
		switch s.axis {
		case AxisHorizontal:
			s.value = (x - s.X) / shape.Width * 2 / s.ScaleX
		case AxisVertical:
			// Inverted: up = higher value.
			s.value = (s.Y - y) / shape.Height * 2 / s.ScaleY
		}
	}

	s.value = clamp(s.value, -1, 1)
	s.sprite.setSheetFrame(s.value)
}

// Value returns the slider's value in [-1, 1].
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue sets the slider's value directly, with no clamping. Intended for
// progress-bar use while frozen; the next Update clamps and re-frames.
func (s *Slider) SetValue(v float64) {
	s.value = v
}

// Draw renders the current spritesheet frame.
func (s *Slider) Draw(dst *ebiten.Image) {
	s.sprite.draw(dst, s.Transform)
}
