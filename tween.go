package wicket

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ValueTween animates a Knob or Slider value toward a target over time.
// Create one via TweenKnobValue or TweenSliderValue and call Update(dt)
// each frame.
//
// There is no global animation manager — users call Update themselves.
type ValueTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// Update advances the tween by dt seconds and writes the eased value to the
// widget. When the tween finishes, Done is set to true and further calls are
// no-ops.
func (v *ValueTween) Update(dt float32) {
	if v.Done {
		return
	}
	val, finished := v.tween.Update(dt)
	*v.field = clamp(float64(val), -1, 1)
	v.Done = finished
}

// TweenKnobValue creates a ValueTween that animates the knob's value to the
// given target in [-1, 1] over the specified duration using the easing
// function.
func TweenKnobValue(k *Knob, to float64, duration float32, fn ease.TweenFunc) *ValueTween {
	return &ValueTween{
		tween: gween.New(float32(k.value), float32(clamp(to, -1, 1)), duration, fn),
		field: &k.value,
	}
}

// TweenSliderValue creates a ValueTween that animates the slider's value to
// the given target in [-1, 1] over the specified duration using the easing
// function. Works on frozen sliders, which makes animated progress bars a
// one-liner.
func TweenSliderValue(s *Slider, to float64, duration float32, fn ease.TweenFunc) *ValueTween {
	return &ValueTween{
		tween: gween.New(float32(s.value), float32(clamp(to, -1, 1)), duration, fn),
		field: &s.value,
	}
}
