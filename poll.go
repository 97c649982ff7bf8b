package wicket

import "github.com/hajimehoshi/ebiten/v2"

// pollButtons maps MouseButton values to the ebiten buttons the Poller watches.
var pollButtons = [3]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// pollKeys are the keys the Poller reports as EventKeyDown. Only Backspace is
// meaningful to the built-in widgets; callers reacting to more keys should
// poll ebiten directly.
var pollKeys = [1]ebiten.Key{ebiten.KeyBackspace}

// Poller converts live Ebitengine input into discrete Events, once per frame.
// It performs its own edge detection; the zero value is ready to use.
//
// Call AppendEvents at the top of the host's Update, then feed each event to
// every widget's HandleEvent before calling the widgets' Update.
type Poller struct {
	prevButtons [3]bool
	prevKeys    [1]bool
	lastX       float64
	lastY       float64
	moved       bool // lastX/lastY valid (first frame emits no move)
	runeBuf     []rune
}

// AppendEvents appends this frame's input events to events and returns the
// extended slice. Event order is pointer presses/releases, cursor move,
// wheel, typed characters, then key presses.
func (p *Poller) AppendEvents(events []Event) []Event {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	for i, b := range pollButtons {
		pressed := ebiten.IsMouseButtonPressed(b)
		if pressed != p.prevButtons[i] {
			t := EventPointerUp
			if pressed {
				t = EventPointerDown
			}
			events = append(events, Event{
				Type:   t,
				Button: MouseButton(i),
				X:      x,
				Y:      y,
			})
			p.prevButtons[i] = pressed
		}
	}

	if p.moved && (x != p.lastX || y != p.lastY) {
		events = append(events, Event{Type: EventPointerMove, X: x, Y: y})
	}
	p.lastX = x
	p.lastY = y
	p.moved = true

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		events = append(events, Event{Type: EventWheel, WheelX: wx, WheelY: wy})
	}

	p.runeBuf = ebiten.AppendInputChars(p.runeBuf[:0])
	for _, r := range p.runeBuf {
		events = append(events, Event{Type: EventChar, Rune: r})
	}

	for i, k := range pollKeys {
		pressed := ebiten.IsKeyPressed(k)
		if pressed && !p.prevKeys[i] {
			events = append(events, Event{Type: EventKeyDown, Key: k})
		}
		p.prevKeys[i] = pressed
	}

	return events
}
