package wicket

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventPointerDown EventType = iota // a mouse button was pressed
	EventPointerUp                    // a mouse button was released
	EventPointerMove                  // the cursor moved
	EventWheel                        // the mouse wheel scrolled
	EventChar                         // a character was typed
	EventKeyDown                      // a key was pressed
)

// Event is a single discrete input event delivered to HandleEvent.
// A single flat struct is used for all event types to avoid interface
// dispatch on the hot path; only the fields relevant to Type are set.
type Event struct {
	Type   EventType
	Button MouseButton // pointer down/up

	// Cursor position for pointer down/up/move.
	X, Y float64

	// Wheel deltas for EventWheel. Knobs react to WheelY only.
	WheelX, WheelY float64

	// Rune is the typed character for EventChar.
	Rune rune

	// Key is the pressed key for EventKeyDown.
	Key ebiten.Key
}

// Pointer supplies the current cursor position to Update. The live
// implementation is Cursor; tests substitute a Harness or a stub.
type Pointer interface {
	CursorPosition() (x, y float64)
}

// Cursor is a Pointer that reads the live Ebitengine cursor.
// The zero value is ready to use.
type Cursor struct{}

// CursorPosition returns the cursor position in screen coordinates.
func (Cursor) CursorPosition() (x, y float64) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my)
}
