package fruitfall

import (
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	sfxVolume = 0.6
)

// SoundKind identifies the game's sound effects.
type SoundKind int

const (
	SoundCatch    SoundKind = iota // any non-jackpot scoring catch
	SoundJackpot                   // diamond catch
	SoundHazard                    // bomb hit
	SoundLevelUp                   // 1000-point crossing
	SoundGameOver                  // last life lost
)

// Audio plays short procedural sound effects. All effects are synthesized;
// no assets are loaded. Attach to a session with Game.SetAudio; the engine
// runs identically without one.
type Audio struct {
	ctx   *oto.Context
	ready chan struct{}
}

// NewAudio initializes the audio device.
func NewAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready}, nil
}

// Play synthesizes and plays the effect. Playback is skipped, not queued,
// while the device is still warming up.
func (a *Audio) Play(kind SoundKind) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < 2; ch++ {
		off := i*8 + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

func frames(seconds float64) int {
	return int(seconds * sampleRate)
}

// addTone mixes a sine tone with a linear attack/decay envelope into buf
// starting at frame start.
func addTone(buf []byte, start, length int, freq, gain float64) {
	attack := length / 10
	for i := 0; i < length; i++ {
		env := 1.0
		if i < attack {
			env = float64(i) / float64(attack)
		} else {
			env = 1 - float64(i-attack)/float64(length-attack)
		}
		s := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * gain * env
		mixStereoF32(buf, start+i, s)
	}
}

// mixStereoF32 adds a sample on top of what is already in the buffer.
func mixStereoF32(buf []byte, i int, sample float64) {
	off := i * 8
	old := math.Float32frombits(uint32(buf[off]) | uint32(buf[off+1])<<8 |
		uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24)
	putStereoF32(buf, i, float64(old)+sample)
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundCatch:
		// Quick upward chirp.
		n := frames(0.09)
		buf := make([]byte, n*8)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			freq := 880 + 440*t
			env := 1 - t
			s := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * 0.5 * env
			putStereoF32(buf, i, s)
		}
		return buf
	case SoundJackpot:
		// Rising three-note arpeggio.
		n := frames(0.34)
		buf := make([]byte, n*8)
		note := frames(0.1)
		addTone(buf, 0, note, 523.25, 0.45)
		addTone(buf, note, note, 659.25, 0.45)
		addTone(buf, 2*note, frames(0.14), 783.99, 0.5)
		return buf
	case SoundHazard:
		// Low thud with a noise tail.
		n := frames(0.25)
		buf := make([]byte, n*8)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			env := (1 - t) * (1 - t)
			s := math.Sin(2*math.Pi*90*float64(i)/sampleRate) * 0.7 * env
			s += (rand.Float64()*2 - 1) * 0.25 * env
			putStereoF32(buf, i, s)
		}
		return buf
	case SoundLevelUp:
		n := frames(0.18)
		buf := make([]byte, n*8)
		half := n / 2
		addTone(buf, 0, half, 659.25, 0.4)
		addTone(buf, half, n-half, 987.77, 0.4)
		return buf
	case SoundGameOver:
		// Slow descending slide.
		n := frames(0.55)
		buf := make([]byte, n*8)
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			freq := 392 * math.Pow(0.5, t)
			env := 1 - t
			s := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * 0.5 * env
			putStereoF32(buf, i, s)
		}
		return buf
	default:
		return nil
	}
}
