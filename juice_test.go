package fruitfall

import "testing"

func TestShakeDecaysToZero(t *testing.T) {
	var j juice
	j.startShake()
	if j.shakeAmp != shakeAmplitude {
		t.Fatalf("shakeAmp = %f, want %f at start", j.shakeAmp, float64(shakeAmplitude))
	}

	j.step(shakeDuration / 2)
	mid := j.shakeAmp
	if mid <= 0 || mid >= shakeAmplitude {
		t.Errorf("mid-shake amplitude = %f, want inside (0, %f)", mid, float64(shakeAmplitude))
	}

	j.step(shakeDuration)
	if j.shakeAmp != 0 || j.shake != nil {
		t.Errorf("shake not cleared: amp=%f tween=%v", j.shakeAmp, j.shake)
	}
}

func TestFlashDecaysToZero(t *testing.T) {
	var j juice
	j.startFlash()
	if j.flashAlpha != flashMaxAlpha {
		t.Fatalf("flashAlpha = %f, want %f at start", j.flashAlpha, float64(flashMaxAlpha))
	}
	j.step(flashDuration + 0.01)
	if j.flashAlpha != 0 || j.flash != nil {
		t.Errorf("flash not cleared: alpha=%f tween=%v", j.flashAlpha, j.flash)
	}
}

func TestOffsetBoundedByAmplitude(t *testing.T) {
	var j juice
	if dx, dy := j.offset(); dx != 0 || dy != 0 {
		t.Errorf("idle offset = (%f, %f), want (0, 0)", dx, dy)
	}

	j.startShake()
	for i := 0; i < 100; i++ {
		dx, dy := j.offset()
		if dx < -shakeAmplitude || dx > shakeAmplitude ||
			dy < -shakeAmplitude || dy > shakeAmplitude {
			t.Fatalf("offset (%f, %f) exceeds amplitude %f", dx, dy, float64(shakeAmplitude))
		}
	}
}

func TestRestartOverridesRunningEffect(t *testing.T) {
	var j juice
	j.startShake()
	j.step(shakeDuration * 0.9)
	j.startShake()
	if j.shakeAmp != shakeAmplitude {
		t.Errorf("restart amplitude = %f, want %f", j.shakeAmp, float64(shakeAmplitude))
	}
}

func TestResetCancelsEffects(t *testing.T) {
	var j juice
	j.startShake()
	j.startFlash()
	j.reset()
	if j.shakeAmp != 0 || j.flashAlpha != 0 || j.shake != nil || j.flash != nil {
		t.Error("reset should clear all juice state")
	}
}
