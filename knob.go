package wicket

import "github.com/hajimehoshi/ebiten/v2"

// Knob is a rotary control with a value in [-1, 1], adjusted by scrolling
// the wheel while hovered or dragging vertically while hit. It renders one
// frame of a vertical spritesheet of square frames, selected proportionally
// to the value.
//
// The zero value is not usable; construct with NewKnob.
type Knob struct {
	Clickable

	sprite Sprite
	tuning Tuning
	value  float64

	// prevPointerY is refreshed at the end of Update, after the frame's
	// events have already been handled, so drag deltas compare against the
	// prior frame's cursor position.
	prevPointerY float64
}

// NewKnob creates a knob with the given circular collision shape and
// spritesheet. Panics if shape is nil.
func NewKnob(shape *CircleShape, sprite Sprite) *Knob {
	if shape == nil {
		panic("wicket: NewKnob requires a collision shape")
	}
	k := &Knob{sprite: sprite, tuning: DefaultTuning()}
	k.init(shape)
	return k
}

// SetTuning replaces the knob's input-response tuning.
func (k *Knob) SetTuning(t Tuning) {
	k.tuning = t
}

// HandleEvent runs the base state machine, then applies value adjustments:
// a vertical wheel scroll while Hover, or a pointer move while Hit (drag up
// increases the value). Each adjustment is capped per event and the value
// is clamped to [-1, 1].
func (k *Knob) HandleEvent(e Event) {
	k.Clickable.HandleEvent(e)

	if k.state == StateHover && e.Type == EventWheel && e.WheelY != 0 {
		k.value += clampMagnitude(e.WheelY*k.tuning.ScrollSensitivity, k.tuning.MaxScrollStep)
	}
	if k.state == StateHit && e.Type == EventPointerMove {
		k.value += clampMagnitude((k.prevPointerY-e.Y)*k.tuning.DragSensitivity, k.tuning.MaxDragStep)
	}

	k.value = clamp(k.value, -1, 1)
}

// Update runs the base transitions, clamps the value, re-selects the
// spritesheet frame, and records the cursor Y for the next frame's drag
// delta.
func (k *Knob) Update(p Pointer) {
	k.Clickable.Update(p)

	k.value = clamp(k.value, -1, 1)
	k.sprite.setSheetFrame(k.value)

	_, y := p.CursorPosition()
	k.prevPointerY = y
}

// Value returns the knob's value in [-1, 1].
func (k *Knob) Value() float64 {
	return k.value
}

// SetValue sets the knob position from v in [0, 1], mapped onto the internal
// [-1, 1] range (0 → -1, 0.5 → 0, 1 → +1). Panics outside [0, 1].
func (k *Knob) SetValue(v float64) {
	if v < 0 || v > 1 {
		panic("wicket: Knob.SetValue expects a value in [0, 1]")
	}
	k.value = (v - 0.5) * 2
}

// Draw renders the current spritesheet frame.
func (k *Knob) Draw(dst *ebiten.Image) {
	k.sprite.draw(dst, k.Transform)
}
