package fruitfall

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a session script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// sessionScript is the top-level JSON structure for a session script.
type sessionScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences scripted pose deliveries across frames for
// automated, headless gameplay sessions. Supported actions:
//
//	{"action": "start"}                    — call Game.Start
//	{"action": "pose", "label": "left"}    — deliver a pose label
//	{"action": "wait", "frames": 30}       — let the given number of ticks pass
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON session script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script sessionScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse session script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse session script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step applies at most one scripted action to g. Call once per frame,
// before Game.Update, until Done reports true.
func (r *ScriptRunner) Step(g *Game) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "start":
		g.Start()
	case "pose":
		g.SetPose(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
