package fruitfall

import (
	"math"
	"testing"
)

func TestGenerateSoundProducesSamples(t *testing.T) {
	kinds := []SoundKind{SoundCatch, SoundJackpot, SoundHazard, SoundLevelUp, SoundGameOver}
	for _, k := range kinds {
		buf := generateSound(k)
		if len(buf) == 0 {
			t.Errorf("kind %d produced no samples", k)
		}
		if len(buf)%8 != 0 {
			t.Errorf("kind %d buffer length %d not frame-aligned", k, len(buf))
		}
	}
	if buf := generateSound(SoundKind(99)); buf != nil {
		t.Error("unknown kind should produce nil")
	}
}

func TestNilAudioIsSilentNoop(t *testing.T) {
	var a *Audio
	a.Play(SoundCatch) // must not panic

	g := newTestGame(quietConfig())
	g.Start()
	placeItem(g, TierApple, 1)
	g.Update() // plays through a nil audio without crashing
}

func TestSamplesStayInRange(t *testing.T) {
	// The mixer sums tones; peak amplitude must stay clear of clipping.
	for _, k := range []SoundKind{SoundCatch, SoundJackpot, SoundHazard} {
		buf := generateSound(k)
		for i := 0; i+3 < len(buf); i += 8 {
			bits := uint32(buf[i]) | uint32(buf[i+1])<<8 |
				uint32(buf[i+2])<<16 | uint32(buf[i+3])<<24
			s := math.Float32frombits(bits)
			if s > 1.01 || s < -1.01 {
				t.Fatalf("kind %d sample %f out of range", k, s)
			}
		}
	}
}
