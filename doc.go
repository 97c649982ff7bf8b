// Package wicket is an image-based widget kit for [Ebitengine].
//
// Wicket provides four interactive controls — [Button], [Knob],
// [Slider], and [LineEdit] — each driven by the same hover/press
// interaction state machine ([Clickable]) and rendered from sprites
// you supply. There is no layout engine and no widget tree: every
// widget is independent, and the host game loop drives it directly.
//
// # Quick start
//
// Feed input to each widget, update it with the cursor, then draw:
//
//	type Game struct {
//		poller wicket.Poller
//		events []wicket.Event
//		knob   *wicket.Knob
//	}
//
//	func (g *Game) Update() error {
//		g.events = g.poller.AppendEvents(g.events[:0])
//		for _, e := range g.events {
//			g.knob.HandleEvent(e)
//		}
//		g.knob.Update(wicket.Cursor{})
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.knob.Draw(screen) }
//
// # Widget states
//
// Every widget is in exactly one of three states: [StateIdle],
// [StateHover], or [StateHit]. Callbacks can be bound per state:
//
//	btn := wicket.NewButton(idle, hover, hit)
//	btn.Bind(wicket.StateHit, func() { fmt.Println("pressed") })
//
// Freezing pins a widget in a state (useful for disabled buttons or
// progress bars built from a frozen [Slider]):
//
//	bar.Freeze(wicket.StateIdle)
//	bar.SetValue(progress)
//
// # Spritesheets
//
// Knob and Slider render from a vertical spritesheet of N square
// frames (sheet height / sheet width = N); the displayed frame tracks
// the widget's value in [-1, 1]. Button takes one sprite per state,
// optionally resolved from a TexturePacker atlas via
// [Atlas.ButtonSprites].
//
// Textures and fonts are supplied by the caller; wicket never loads
// image or font files itself.
//
// # Testing without a window
//
// [Harness] queues synthetic events and stands in for the real cursor,
// and [LoadScript] replays JSON interaction scripts through it.
//
// [Ebitengine]: https://ebitengine.org
package wicket
