package wicket

import (
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Label is a single line of text drawn with its origin centered on its own
// measured bounds. The content is kept as code points so editing operates on
// whole characters.
//
// The face is supplied by the caller and may be nil, in which case the label
// measures as empty and draws nothing (useful in tests).
type Label struct {
	Face  text.Face
	Color Color

	runes     []rune
	measuredW float64
	measuredH float64
	dirty     bool
}

// NewLabel creates a label with the given face and initial content.
func NewLabel(face text.Face, content string) Label {
	return Label{
		Face:  face,
		Color: ColorWhite,
		runes: []rune(content),
		dirty: true,
	}
}

// SetText replaces the label's content.
func (l *Label) SetText(s string) {
	l.runes = []rune(s)
	l.dirty = true
}

// Text returns the label's content.
func (l *Label) Text() string {
	return string(l.runes)
}

// appendRune appends one code point.
func (l *Label) appendRune(r rune) {
	l.runes = append(l.runes, r)
	l.dirty = true
}

// removeLastRune removes the final code point. No-op when empty.
func (l *Label) removeLastRune() {
	if len(l.runes) == 0 {
		return
	}
	l.runes = l.runes[:len(l.runes)-1]
	l.dirty = true
}

// measure recomputes the cached text bounds if dirty.
func (l *Label) measure() (w, h float64) {
	if l.dirty {
		if l.Face == nil || len(l.runes) == 0 {
			l.measuredW, l.measuredH = 0, 0
		} else {
			l.measuredW, l.measuredH = text.Measure(string(l.runes), l.Face, 0)
		}
		l.dirty = false
	}
	return l.measuredW, l.measuredH
}

// draw renders the label centered on t's position. Nothing is drawn without
// a face.
func (l *Label) draw(dst *ebiten.Image, t Transform) {
	if l.Face == nil || len(l.runes) == 0 {
		return
	}
	w, h := l.measure()

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(t.ScaleX, t.ScaleY)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColorScale(premultiplied(l.Color))

	text.Draw(dst, string(l.runes), l.Face, op)
}
