package wicket

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Default input-response tuning.
const (
	defaultDragSensitivity   = 0.01
	defaultScrollSensitivity = 0.1
	defaultMaxScrollStep     = 0.1
	defaultMaxDragStep       = 0.1
)

// Tuning adjusts how strongly knob input maps onto value changes.
// All fields must be positive.
type Tuning struct {
	// DragSensitivity scales vertical drag distance (pixels) to value delta.
	DragSensitivity float64 `yaml:"dragSensitivity"`

	// ScrollSensitivity scales wheel ticks to value delta.
	ScrollSensitivity float64 `yaml:"scrollSensitivity"`

	// MaxScrollStep caps the value change of a single wheel event.
	MaxScrollStep float64 `yaml:"maxScrollStep"`

	// MaxDragStep caps the value change of a single drag event.
	MaxDragStep float64 `yaml:"maxDragStep"`
}

// DefaultTuning returns the stock tuning values.
func DefaultTuning() Tuning {
	return Tuning{
		DragSensitivity:   defaultDragSensitivity,
		ScrollSensitivity: defaultScrollSensitivity,
		MaxScrollStep:     defaultMaxScrollStep,
		MaxDragStep:       defaultMaxDragStep,
	}
}

// LoadTuning parses tuning from YAML. Omitted fields keep their defaults;
// zero or negative values are rejected.
func LoadTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("wicket: failed to parse tuning YAML: %w", err)
	}
	if err := t.validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t Tuning) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"dragSensitivity", t.DragSensitivity},
		{"scrollSensitivity", t.ScrollSensitivity},
		{"maxScrollStep", t.MaxScrollStep},
		{"maxDragStep", t.MaxDragStep},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("wicket: tuning %s must be positive, got %g", f.name, f.value)
		}
	}
	return nil
}
