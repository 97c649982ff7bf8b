package wicket

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenKnobValue(t *testing.T) {
	k := newTestKnob()
	k.SetValue(0) // internal -1

	tw := TweenKnobValue(k, 1, 1, ease.Linear)
	tw.Update(0.5)
	if math.Abs(k.Value()) > 1e-6 {
		t.Errorf("value at halfway = %v, want 0", k.Value())
	}

	tw.Update(0.5)
	if !tw.Done {
		t.Error("tween should be done after the full duration")
	}
	if math.Abs(k.Value()-1) > 1e-6 {
		t.Errorf("value at end = %v, want 1", k.Value())
	}

	// Further updates are no-ops.
	tw.Update(1)
	if math.Abs(k.Value()-1) > 1e-6 {
		t.Errorf("value changed after done: %v", k.Value())
	}
}

func TestTweenSliderValueWhileFrozen(t *testing.T) {
	s := newTestSlider(AxisHorizontal)
	s.Freeze(StateIdle)

	tw := TweenSliderValue(s, 0.5, 2, ease.Linear)
	tw.Update(1)
	if math.Abs(s.Value()-0.25) > 1e-6 {
		t.Errorf("value at halfway = %v, want 0.25", s.Value())
	}
	tw.Update(1)
	if math.Abs(s.Value()-0.5) > 1e-6 {
		t.Errorf("value at end = %v, want 0.5", s.Value())
	}
}

func TestTweenTargetClamped(t *testing.T) {
	k := newTestKnob()
	tw := TweenKnobValue(k, 5, 1, ease.Linear)
	tw.Update(1)
	if k.Value() != 1 {
		t.Errorf("value = %v, want 1 (target clamped to range)", k.Value())
	}
}
