package motion

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Node   string  `json:"node,omitempty"`
	Value  string  `json:"value,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
	MS     int     `json:"ms,omitempty"`
}

// scriptFile is the top-level JSON structure for a playback script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script plays back injected input, control changes, scrolling and
// screenshots across frames, for demos and automated visual checks. Attach
// to a Scene via SetScript.
//
// Supported actions:
//
//	click       press and release at x, y, or at the center of node
//	drag        fromX, fromY to toX, toY over frames
//	input       commit value to the slider or select named node
//	scroll      scroll the page by dy
//	wait        pause for frames, or until ms of scene time have passed
//	screenshot  capture the next drawn frame under label
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	waitUntil time.Duration
	done      bool
}

// LoadScript parses a JSON playback script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// SetScript attaches a Script to the scene. The script advances once per
// Update, before input is processed.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has run.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.waitUntil > 0 {
		if s.loop.Now() < r.waitUntil {
			return
		}
		r.waitUntil = 0
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		x, y := st.X, st.Y
		if st.Node != "" {
			n := s.root.FindByName(st.Node)
			if n == nil {
				debugf("script: no node %q", st.Node)
				break
			}
			b := n.Bounds()
			x, y = b.X+b.Width/2, b.Y+b.Height/2-s.scrollY
		}
		s.InjectClick(x, y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "input":
		if n := s.root.FindByName(st.Node); n != nil {
			n.Input(st.Value)
		} else {
			debugf("script: no node %q", st.Node)
		}
	case "scroll":
		s.ScrollBy(st.DY)
	case "wait":
		if st.MS > 0 {
			r.waitUntil = s.loop.Now() + time.Duration(st.MS)*time.Millisecond
		} else if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		debugf("script: unknown action %q", st.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.waitUntil == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
