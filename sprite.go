package wicket

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a drawable image with a logical size and an active source frame.
// Value type — widgets store sprites directly.
//
// Width and Height default to the image bounds but can be set independently,
// which lets geometry (frame selection, button collision sizing) be exercised
// without a live texture.
type Sprite struct {
	Image  *ebiten.Image
	Width  float64 // full image width in texels
	Height float64 // full image height in texels
	Color  Color

	// src is the active source sub-rectangle. Zero means the whole image.
	src image.Rectangle

	// base is the sprite's origin within a shared atlas image; sheet frame
	// rects are offset by it.
	base image.Point
}

// NewSprite creates a sprite sized from the image bounds.
func NewSprite(img *ebiten.Image) Sprite {
	if img == nil {
		panic("wicket: NewSprite requires an image")
	}
	b := img.Bounds()
	return Sprite{
		Image:  img,
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
		Color:  ColorWhite,
	}
}

// setFrame selects the source sub-rectangle drawn by draw.
func (s *Sprite) setFrame(r image.Rectangle) {
	s.src = r
}

// setSheetFrame selects the vertical spritesheet frame for value in [-1, 1],
// offset by the sprite's base origin so sheets packed inside an atlas resolve
// to the correct region of the shared image.
func (s *Sprite) setSheetFrame(value float64) {
	s.setFrame(sheetFrameRect(s.Width, s.Height, value).Add(s.base))
}

// frameSize returns the dimensions of the active source frame.
func (s *Sprite) frameSize() (w, h float64) {
	if s.src.Empty() {
		return s.Width, s.Height
	}
	return float64(s.src.Dx()), float64(s.src.Dy())
}

// draw renders the sprite's active frame with its origin centered on the
// frame bounds, transformed by t. A sprite with no image draws nothing.
func (s *Sprite) draw(dst *ebiten.Image, t Transform) {
	if s.Image == nil {
		return
	}
	img := s.Image
	if !s.src.Empty() {
		img = s.Image.SubImage(s.src).(*ebiten.Image)
	}

	fw, fh := s.frameSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-fw/2, -fh/2)
	op.GeoM.Scale(t.ScaleX, t.ScaleY)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.X, t.Y)

	c := s.Color
	if c == (Color{}) {
		c = ColorWhite
	}
	op.ColorScale.ScaleWithColorScale(premultiplied(c))

	dst.DrawImage(img, op)
}

// premultiplied converts a Color to an ebiten.ColorScale.
func premultiplied(c Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	return cs
}

// sheetFrames returns the number of square frames in a vertical spritesheet
// of the given dimensions (height / width, minimum 1).
func sheetFrames(sheetW, sheetH float64) int {
	n := int(sheetH / sheetW)
	if n < 1 {
		n = 1
	}
	return n
}

// sheetFrameRect returns the source rectangle of the spritesheet frame
// selected by value in [-1, 1]: frame 0 at -1, frame N-1 at +1, proportional
// in between. Panics when the sheet has no width — a knob or slider sprite
// without a bound texture is a contract violation, not a runtime error.
func sheetFrameRect(sheetW, sheetH, value float64) image.Rectangle {
	if sheetW <= 0 {
		panic("wicket: spritesheet has no size; bind a texture before use")
	}
	if globalDebug {
		debugCheckSheet(sheetW, sheetH)
	}
	n := sheetFrames(sheetW, sheetH)
	idx := int(math.Round(float64(n-1) * (value + 1) / 2))
	w := int(sheetW)
	top := idx * w
	return image.Rect(0, top, w, top+w)
}
