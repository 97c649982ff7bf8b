package wicket

import "github.com/hajimehoshi/ebiten/v2"

// Button is a clickable control with one sprite per interaction state.
// Its collision rectangle is sized from the idle sprite's bounds.
//
// The zero value is not usable; construct with NewButton.
type Button struct {
	Clickable

	sprites [stateCount]Sprite
}

// NewButton creates a button from its idle, hover, and hit sprites. The
// three sprites normally share dimensions; only the idle sprite's bounds
// define the clickable area.
func NewButton(idle, hover, hit Sprite) *Button {
	b := &Button{sprites: [stateCount]Sprite{idle, hover, hit}}
	b.init(NewRectShape(idle.Width, idle.Height))
	return b
}

// Sprite returns the sprite bound to state s.
func (b *Button) Sprite(s State) Sprite {
	return b.sprites[s]
}

// SetSprite replaces the sprite bound to state s. Replacing the idle sprite
// resizes the collision rectangle to match.
func (b *Button) SetSprite(s State, sprite Sprite) {
	b.sprites[s] = sprite
	if s == StateIdle {
		if r, ok := b.shape.(*RectShape); ok {
			r.Width = sprite.Width
			r.Height = sprite.Height
		}
	}
}

// Draw renders the sprite matching the current state.
func (b *Button) Draw(dst *ebiten.Image) {
	b.sprites[b.state].draw(dst, b.Transform)
}
