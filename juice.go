package fruitfall

import (
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// juice holds the transient screen effects: hazard screen shake and the
// jackpot full-screen flash. Both are purely visual; the shake is applied as
// a render-time translation and never touches logical positions.
type juice struct {
	shake *gween.Tween // amplitude, eased down to zero
	flash *gween.Tween // overlay alpha, eased down to zero

	shakeAmp   float32
	flashAlpha float32
}

// reset cancels any running effects.
func (j *juice) reset() {
	j.shake = nil
	j.flash = nil
	j.shakeAmp = 0
	j.flashAlpha = 0
}

// startShake restarts the screen shake at full amplitude.
func (j *juice) startShake() {
	j.shake = gween.New(shakeAmplitude, 0, shakeDuration, ease.OutQuad)
	j.shakeAmp = shakeAmplitude
}

// startFlash restarts the full-screen flash at full alpha.
func (j *juice) startFlash() {
	j.flash = gween.New(flashMaxAlpha, 0, flashDuration, ease.OutQuad)
	j.flashAlpha = flashMaxAlpha
}

// step advances both tweens by dt seconds, clearing each when it finishes.
func (j *juice) step(dt float32) {
	if j.shake != nil {
		v, done := j.shake.Update(dt)
		j.shakeAmp = v
		if done {
			j.shake = nil
			j.shakeAmp = 0
		}
	}
	if j.flash != nil {
		v, done := j.flash.Update(dt)
		j.flashAlpha = v
		if done {
			j.flash = nil
			j.flashAlpha = 0
		}
	}
}

// offset returns the current frame's shake translation: random jitter scaled
// by the decaying amplitude. Zero when no shake is running.
func (j *juice) offset() (dx, dy float64) {
	if j.shakeAmp <= 0 {
		return 0, 0
	}
	amp := float64(j.shakeAmp)
	return (rand.Float64()*2 - 1) * amp, (rand.Float64()*2 - 1) * amp
}
