package fruitfall

import (
	"image/color"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is converted for rendering.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns the color with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts to a premultiplied-alpha color.RGBA for submission to ebiten.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and velocities.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range. Used by the particle pool for
// randomized spawn bands.
type Range struct {
	Min, Max float64
}

// Phase identifies the session state. Transitions are one-directional
// (Ready → Playing → GameOver) except via Game.Start, which resets to
// Playing from any phase.
type Phase uint8

const (
	PhaseReady    Phase = iota // initial, idle; nothing simulates
	PhasePlaying               // active simulation
	PhaseGameOver              // terminal until Start re-enters Playing
)

// String returns the phase name for debug output.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "READY"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Tier is the category of a falling item, determining its score value and
// visual/hazard semantics.
type Tier uint8

const (
	TierApple   Tier = iota // common low-value catch
	TierGrape               // common mid-value catch
	TierOrange              // rare catch
	TierDiamond             // jackpot; triggers the screen flash
	TierBomb                // hazard; costs a life and resets the combo
)

// IsHazard reports whether catching this tier costs a life instead of scoring.
func (t Tier) IsHazard() bool {
	return t == TierBomb
}

// ScoreValue returns the base score awarded for catching this tier, before
// the combo multiplier. Hazards award nothing.
func (t Tier) ScoreValue() int {
	switch t {
	case TierApple:
		return 10
	case TierGrape:
		return 20
	case TierOrange:
		return 30
	case TierDiamond:
		return 100
	default:
		return 0
	}
}

// BurstColor returns the particle burst color for this tier.
func (t Tier) BurstColor() Color {
	switch t {
	case TierApple:
		return Color{R: 0.92, G: 0.26, B: 0.21, A: 1}
	case TierGrape:
		return Color{R: 0.62, G: 0.32, B: 0.86, A: 1}
	case TierOrange:
		return Color{R: 1.0, G: 0.62, B: 0.12, A: 1}
	case TierDiamond:
		return Color{R: 0.45, G: 0.92, B: 1.0, A: 1}
	default:
		// Neutral ash burst for hazards.
		return Color{R: 0.62, G: 0.6, B: 0.58, A: 1}
	}
}

// String returns the tier name for debug output.
func (t Tier) String() string {
	switch t {
	case TierApple:
		return "apple"
	case TierGrape:
		return "grape"
	case TierOrange:
		return "orange"
	case TierDiamond:
		return "diamond"
	case TierBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Lane labels accepted by Game.SetPose. Matching is case-insensitive;
// anything else is silently ignored.
const (
	LabelLeft   = "left"
	LabelCenter = "center"
	LabelRight  = "right"
)

// parseLane maps a pose label to a lane index. ok is false for labels
// outside the closed set.
func parseLane(label string) (lane int, ok bool) {
	switch strings.ToLower(label) {
	case LabelLeft:
		return 0, true
	case LabelCenter:
		return 1, true
	case LabelRight:
		return 2, true
	default:
		return 0, false
	}
}
