package wicket

import (
	"image"
	"math"
	"testing"
)

// testSheet is a 32-wide, 5-frame vertical spritesheet with no live texture.
func testSheet() Sprite {
	return Sprite{Width: 32, Height: 160}
}

// newTestKnob returns a knob centered at (50, 50) with radius 30.
func newTestKnob() *Knob {
	k := NewKnob(NewCircleShape(30), testSheet())
	k.SetPosition(50, 50)
	return k
}

// hoverKnob drives the knob into Hover.
func hoverKnob(t *testing.T, k *Knob) {
	t.Helper()
	k.Update(stubPointer{50, 50})
	if k.State() != StateHover {
		t.Fatalf("knob state = %v, want Hover", k.State())
	}
}

// hitKnob drives the knob into Hit.
func hitKnob(t *testing.T, k *Knob) {
	t.Helper()
	hoverKnob(t, k)
	k.HandleEvent(Event{Type: EventPointerDown, Button: MouseButtonLeft, X: 50, Y: 50})
	if k.State() != StateHit {
		t.Fatalf("knob state = %v, want Hit", k.State())
	}
}

func TestKnobSetValueMapping(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"min", 0, -1},
		{"mid", 0.5, 0},
		{"max", 1, 1},
		{"quarter", 0.25, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newTestKnob()
			k.SetValue(tt.in)
			if math.Abs(k.Value()-tt.want) > 1e-9 {
				t.Errorf("SetValue(%v): value = %v, want %v", tt.in, k.Value(), tt.want)
			}
		})
	}
}

func TestKnobSetValueOutOfRangePanics(t *testing.T) {
	for _, v := range []float64{-0.1, 1.1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetValue(%v) did not panic", v)
				}
			}()
			newTestKnob().SetValue(v)
		}()
	}
}

func TestKnobWheelAdjustsValueWhileHover(t *testing.T) {
	k := newTestKnob()
	hoverKnob(t, k)

	k.HandleEvent(Event{Type: EventWheel, WheelY: 0.5})
	if math.Abs(k.Value()-0.05) > 1e-9 {
		t.Errorf("value after 0.5 wheel tick = %v, want 0.05", k.Value())
	}

	// A large scroll is capped per event.
	k.HandleEvent(Event{Type: EventWheel, WheelY: 10})
	if math.Abs(k.Value()-0.15) > 1e-9 {
		t.Errorf("value after capped scroll = %v, want 0.15", k.Value())
	}

	// Caps apply in both directions.
	k.HandleEvent(Event{Type: EventWheel, WheelY: -10})
	if math.Abs(k.Value()-0.05) > 1e-9 {
		t.Errorf("value after capped negative scroll = %v, want 0.05", k.Value())
	}
}

func TestKnobWheelIgnoredWhileIdle(t *testing.T) {
	k := newTestKnob()
	k.HandleEvent(Event{Type: EventWheel, WheelY: 5})
	if k.Value() != 0 {
		t.Errorf("wheel while Idle changed value to %v", k.Value())
	}
}

func TestKnobHorizontalWheelIgnored(t *testing.T) {
	k := newTestKnob()
	hoverKnob(t, k)
	k.HandleEvent(Event{Type: EventWheel, WheelX: 5})
	if k.Value() != 0 {
		t.Errorf("horizontal wheel changed value to %v", k.Value())
	}
}

func TestKnobDragAdjustsValueWhileHit(t *testing.T) {
	k := newTestKnob()
	hitKnob(t, k) // prevPointerY is 50 from the hover update

	// Drag up by 5px: (50-45) * 0.01 = 0.05.
	k.HandleEvent(Event{Type: EventPointerMove, X: 50, Y: 45})
	if math.Abs(k.Value()-0.05) > 1e-9 {
		t.Errorf("value after 5px upward drag = %v, want 0.05", k.Value())
	}

	// A huge jump is capped per event.
	k.HandleEvent(Event{Type: EventPointerMove, X: 50, Y: -500})
	if math.Abs(k.Value()-0.15) > 1e-9 {
		t.Errorf("value after capped drag = %v, want 0.15", k.Value())
	}
}

func TestKnobDragDeltaUsesPreviousFrame(t *testing.T) {
	k := newTestKnob()
	hitKnob(t, k) // prevPointerY = 50

	// Two moves within the same frame both compare against the prior
	// frame's cursor Y, not the preceding event.
	k.HandleEvent(Event{Type: EventPointerMove, X: 50, Y: 47}) // (50-47)*0.01 = 0.03
	k.HandleEvent(Event{Type: EventPointerMove, X: 50, Y: 44}) // (50-44)*0.01 = 0.06
	if math.Abs(k.Value()-0.09) > 1e-9 {
		t.Errorf("value after same-frame moves = %v, want 0.09", k.Value())
	}

	// After Update the reference Y advances to the new cursor position.
	k.Update(stubPointer{50, 44})
	k.HandleEvent(Event{Type: EventPointerMove, X: 50, Y: 41}) // (44-41)*0.01 = 0.03
	if math.Abs(k.Value()-0.12) > 1e-9 {
		t.Errorf("value after next-frame move = %v, want 0.12", k.Value())
	}
}

func TestKnobDragIgnoredWhileHover(t *testing.T) {
	k := newTestKnob()
	hoverKnob(t, k)
	k.HandleEvent(Event{Type: EventPointerMove, X: 50, Y: 20})
	if k.Value() != 0 {
		t.Errorf("move while Hover changed value to %v", k.Value())
	}
}

func TestKnobValueStaysClamped(t *testing.T) {
	k := newTestKnob()
	hoverKnob(t, k)

	for i := 0; i < 50; i++ {
		k.HandleEvent(Event{Type: EventWheel, WheelY: 1})
	}
	if k.Value() != 1 {
		t.Errorf("value after 50 wheel ticks = %v, want 1", k.Value())
	}

	for i := 0; i < 100; i++ {
		k.HandleEvent(Event{Type: EventWheel, WheelY: -1})
	}
	if k.Value() != -1 {
		t.Errorf("value after 100 reverse ticks = %v, want -1", k.Value())
	}
}

func TestKnobTuning(t *testing.T) {
	k := newTestKnob()
	k.SetTuning(Tuning{
		DragSensitivity:   0.1,
		ScrollSensitivity: 0.5,
		MaxScrollStep:     1,
		MaxDragStep:       1,
	})
	hoverKnob(t, k)

	k.HandleEvent(Event{Type: EventWheel, WheelY: 1})
	if math.Abs(k.Value()-0.5) > 1e-9 {
		t.Errorf("value with custom scroll sensitivity = %v, want 0.5", k.Value())
	}
}

func TestKnobFrameSelection(t *testing.T) {
	k := newTestKnob()
	tests := []struct {
		name  string
		value float64 // SetValue input in [0, 1]
		top   int
	}{
		{"first frame", 0, 0},
		{"middle frame", 0.5, 64},
		{"last frame", 1, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k.SetValue(tt.value)
			k.Update(stubPointer{0, 0})
			want := image.Rect(0, tt.top, 32, tt.top+32)
			if k.sprite.src != want {
				t.Errorf("frame rect = %v, want %v", k.sprite.src, want)
			}
		})
	}
}

func TestNewKnobNilShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewKnob(nil, ...) did not panic")
		}
	}()
	NewKnob(nil, testSheet())
}

func TestKnobZeroSheetPanics(t *testing.T) {
	k := NewKnob(NewCircleShape(30), Sprite{})
	defer func() {
		if recover() == nil {
			t.Error("Update with an unbound spritesheet did not panic")
		}
	}()
	k.Update(stubPointer{0, 0})
}
