package wicket

// Callback is invoked when a widget enters the state it is bound to.
// Callbacks run synchronously on the caller's goroutine and must not
// re-enter the widget's mutating methods (state is mid-transition).
type Callback func()

// noop is the default callback for every state.
func noop() {}

// Clickable is the interaction state machine shared by all widgets. It is
// invisible: it only tracks its state (Idle/Hover/Hit) against a collision
// shape. The concrete widgets embed it and add their own rendering and
// input handling on top.
//
// A transition always fires the destination state's callback, not the
// source's.
type Clickable struct {
	Transform

	shape     Shape
	state     State
	callbacks [stateCount]Callback
	frozen    bool
}

// NewClickable creates a state machine over the given collision shape.
// A nil shape gets a 1×1 rectangular placeholder.
func NewClickable(shape Shape) *Clickable {
	c := &Clickable{}
	c.init(shape)
	return c
}

// init is shared by NewClickable and the widget constructors, which embed
// Clickable by value.
func (c *Clickable) init(shape Shape) {
	if shape == nil {
		shape = NewRectShape(1, 1)
	}
	c.shape = shape
	c.Transform = newTransform()
	for i := range c.callbacks {
		c.callbacks[i] = noop
	}
}

// Bind replaces the callback invoked when the widget enters state s.
// A nil fn restores the default no-op.
func (c *Clickable) Bind(s State, fn Callback) {
	if fn == nil {
		fn = noop
	}
	c.callbacks[s] = fn
}

// Freeze forces the widget into state s and disables all automatic
// transitions until Unfreeze. The bound callback is not invoked.
func (c *Clickable) Freeze(s State) {
	c.state = s
	c.frozen = true
}

// Unfreeze re-enables automatic transitions. The current state is kept;
// normal transition rules resume on the next Update.
func (c *Clickable) Unfreeze() {
	c.frozen = false
}

// HandleEvent advances the state machine for one input event. A left press
// while Hover transitions to Hit; a left release while Hit transitions back
// to Hover. All other events are ignored at this layer. No-op while frozen.
func (c *Clickable) HandleEvent(e Event) {
	if c.frozen {
		return
	}
	switch e.Type {
	case EventPointerDown:
		if c.state == StateHover && e.Button == MouseButtonLeft {
			c.state = StateHit
			c.call()
		}
	case EventPointerUp:
		if c.state == StateHit && e.Button == MouseButtonLeft {
			c.state = StateHover
			c.call()
		}
	}
}

// Update re-syncs the collision shape from the widget's transform (this runs
// even while frozen, so late position or scale changes self-correct), then
// applies the hover transitions: Idle→Hover when the shape contains the
// cursor, Hover→Idle when it no longer does. Hit is only exited by
// HandleEvent's release case — dragging outside the shape does not cancel
// a Hit.
func (c *Clickable) Update(p Pointer) {
	c.shape.setTransform(c.X, c.Y, c.ScaleX, c.ScaleY)

	if c.frozen {
		return
	}

	x, y := p.CursorPosition()
	if c.state == StateIdle && c.shape.Contains(x, y) {
		c.state = StateHover
		c.call()
	} else if c.state == StateHover && !c.shape.Contains(x, y) {
		c.state = StateIdle
		c.call()
	}
}

// Shape returns the widget's collision shape.
func (c *Clickable) Shape() Shape {
	return c.shape
}

// State returns the current interaction state.
func (c *Clickable) State() State {
	return c.state
}

// Callback returns the callback bound to state s (never nil).
func (c *Clickable) Callback(s State) Callback {
	return c.callbacks[s]
}

// Frozen reports whether automatic transitions are disabled.
func (c *Clickable) Frozen() bool {
	return c.frozen
}

// call invokes the callback bound to the current state.
func (c *Clickable) call() {
	c.callbacks[c.state]()
}
