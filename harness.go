package wicket

import "github.com/hajimehoshi/ebiten/v2"

// Widget is the common surface of every wicket control: it consumes events,
// updates against the cursor, and draws exactly one primitive.
type Widget interface {
	HandleEvent(Event)
	Update(Pointer)
	Draw(dst *ebiten.Image)
}

var (
	_ Widget = (*Button)(nil)
	_ Widget = (*Knob)(nil)
	_ Widget = (*Slider)(nil)
	_ Widget = (*LineEdit)(nil)
)

// Harness drives widgets with synthetic input, no window required. It queues
// events (one consumed per Step) and stands in for the real cursor, which
// makes interaction sequences deterministic — useful for automated tests and
// headless runs.
type Harness struct {
	widgets []Widget
	queue   []Event

	// cursor as the widgets see it; advanced when pointer events are delivered.
	cursorX float64
	cursorY float64

	// queued cursor position; where Press/Release events will land.
	queuedX float64
	queuedY float64
}

// NewHarness creates a harness driving the given widgets.
func NewHarness(widgets ...Widget) *Harness {
	return &Harness{widgets: widgets}
}

// Add registers another widget with the harness.
func (h *Harness) Add(w Widget) {
	h.widgets = append(h.widgets, w)
}

// CursorPosition implements Pointer: the position of the last delivered
// pointer event.
func (h *Harness) CursorPosition() (x, y float64) {
	return h.cursorX, h.cursorY
}

// MoveTo queues a cursor move to (x, y).
func (h *Harness) MoveTo(x, y float64) {
	h.queuedX, h.queuedY = x, y
	h.queue = append(h.queue, Event{Type: EventPointerMove, X: x, Y: y})
}

// Press queues a left-button press at the queued cursor position.
func (h *Harness) Press() {
	h.queue = append(h.queue, Event{
		Type: EventPointerDown, Button: MouseButtonLeft,
		X: h.queuedX, Y: h.queuedY,
	})
}

// Release queues a left-button release at the queued cursor position.
func (h *Harness) Release() {
	h.queue = append(h.queue, Event{
		Type: EventPointerUp, Button: MouseButtonLeft,
		X: h.queuedX, Y: h.queuedY,
	})
}

// Click queues a move to (x, y) followed by a press and a release.
// Consumes three steps.
func (h *Harness) Click(x, y float64) {
	h.MoveTo(x, y)
	h.Press()
	h.Release()
}

// Drag queues a full drag: move and press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). steps is the number of
// intermediate move events (minimum 1).
func (h *Harness) Drag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	h.MoveTo(fromX, fromY)
	h.Press()
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		h.MoveTo(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.Release()
}

// Wheel queues a mouse-wheel event with the given deltas.
func (h *Harness) Wheel(dx, dy float64) {
	h.queue = append(h.queue, Event{Type: EventWheel, WheelX: dx, WheelY: dy})
}

// Type queues one character event per rune of s.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.queue = append(h.queue, Event{Type: EventChar, Rune: r})
	}
}

// Key queues a key-press event.
func (h *Harness) Key(k ebiten.Key) {
	h.queue = append(h.queue, Event{Type: EventKeyDown, Key: k})
}

// Step advances one frame: it delivers at most one queued event to every
// widget, then updates every widget with the harness as the cursor — the
// same event-then-update order a real host loop uses. Returns whether an
// event was consumed; a Step with an empty queue is an idle frame.
func (h *Harness) Step() bool {
	consumed := false
	if len(h.queue) > 0 {
		e := h.queue[0]
		copy(h.queue, h.queue[1:])
		h.queue = h.queue[:len(h.queue)-1]

		switch e.Type {
		case EventPointerDown, EventPointerUp, EventPointerMove:
			h.cursorX, h.cursorY = e.X, e.Y
		}
		for _, w := range h.widgets {
			w.HandleEvent(e)
		}
		consumed = true
	}

	for _, w := range h.widgets {
		w.Update(h)
	}
	return consumed
}

// Run steps until the event queue drains, ending with one idle frame so
// hover state settles.
func (h *Harness) Run() {
	for h.Step() {
	}
}
