package wicket

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep represents a single action in an interaction script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Frames int     `json:"frames,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
}

// scriptFile is the top-level JSON structure for an interaction script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a JSON interaction script through a Harness, one frame per
// Step call. Supported actions: "move" (x, y), "press", "release", "click"
// (x, y), "drag" (fromX/fromY/toX/toY, steps), "wheel" (deltaY), "type"
// (text), "key" (key, only "backspace"), and "wait" (frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON interaction script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("wicket: failed to parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("wicket: script has no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has been executed and drained.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one frame: it drains pending harness events
// first, then queues the next action and runs one harness step.
func (s *Script) Step(h *Harness) {
	if s.done {
		return
	}
	// Drain queued events before advancing to the next action.
	if len(h.queue) > 0 {
		h.Step()
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		h.Step()
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move":
		h.MoveTo(st.X, st.Y)
	case "press":
		h.Press()
	case "release":
		h.Release()
	case "click":
		h.Click(st.X, st.Y)
	case "drag":
		h.Drag(st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
	case "wheel":
		h.Wheel(0, st.DeltaY)
	case "type":
		h.Type(st.Text)
	case "key":
		if st.Key == "backspace" {
			h.Key(ebiten.KeyBackspace)
		}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	h.Step()

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(h.queue) == 0 {
		s.done = true
	}
}

// Run steps the script to completion.
func (s *Script) Run(h *Harness) {
	for !s.done {
		s.Step(h)
	}
}
