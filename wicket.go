package wicket

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// State identifies a widget's interaction state. Every widget is in exactly
// one state at any time; transitions are driven by HandleEvent and Update,
// never set directly except via Freeze.
type State uint8

const (
	StateIdle  State = iota // cursor outside the widget
	StateHover              // cursor inside the widget, button up
	StateHit                // pressed; held until the button is released
)

// stateCount is the number of interaction states (size of callback tables).
const stateCount = 3

// String returns the state name for debug output.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHover:
		return "Hover"
	case StateHit:
		return "Hit"
	default:
		return "Unknown"
	}
}

// Axis selects a Slider's travel direction.
type Axis uint8

const (
	AxisHorizontal Axis = iota // value tracks the cursor's X offset
	AxisVertical               // value tracks the cursor's Y offset (up = higher)
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
