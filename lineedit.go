package wicket

import (
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// minPrintableRune is the first code point LineEdit accepts; anything below
// is a control character.
const minPrintableRune = 32

// LineEdit is a single-line text entry. While hovered, typed printable
// characters append to the buffer and Backspace removes the last one.
//
// The zero value is not usable; construct with NewLineEdit.
type LineEdit struct {
	Clickable

	label Label
}

// NewLineEdit creates a text entry with the given rectangular collision
// shape, font face, and initial text. Panics if shape is nil. A nil face is
// allowed; the widget then edits its buffer but draws nothing.
func NewLineEdit(shape *RectShape, face text.Face, initial string) *LineEdit {
	if shape == nil {
		panic("wicket: NewLineEdit requires a collision shape")
	}
	le := &LineEdit{label: NewLabel(face, initial)}
	le.init(shape)
	return le
}

// HandleEvent runs the base state machine, then, while Hover, applies text
// editing: printable characters (code point ≥ 32) append to the buffer,
// Backspace removes the last character.
func (le *LineEdit) HandleEvent(e Event) {
	le.Clickable.HandleEvent(e)

	if le.state != StateHover {
		return
	}
	switch e.Type {
	case EventChar:
		if e.Rune >= minPrintableRune {
			le.label.appendRune(e.Rune)
		}
	case EventKeyDown:
		if e.Key == ebiten.KeyBackspace {
			le.label.removeLastRune()
		}
	}
}

// Update runs the base transitions and re-centers the label's origin on its
// current measured bounds, so edits from this frame draw centered.
func (le *LineEdit) Update(p Pointer) {
	le.Clickable.Update(p)
	le.label.measure()
}

// SetText replaces the text buffer.
func (le *LineEdit) SetText(s string) {
	le.label.SetText(s)
}

// Text returns the text buffer.
func (le *LineEdit) Text() string {
	return le.label.Text()
}

// SetColor sets the text color.
func (le *LineEdit) SetColor(c Color) {
	le.label.Color = c
}

// Draw renders the text centered on the widget's position.
func (le *LineEdit) Draw(dst *ebiten.Image) {
	le.label.draw(dst, le.Transform)
}
