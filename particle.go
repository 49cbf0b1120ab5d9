package fruitfall

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// particle holds per-slot simulation state. Unexported; managed by ParticlePool.
type particle struct {
	x, y   float64
	vx, vy float64
	life   float64 // decays from 1.0 to 0
	size   float64
	color  Color
}

// ParticlePool is a fixed-capacity pool of burst particles. All slots are
// allocated once at construction; Spawn reuses dead slots and Update compacts
// the alive prefix with swap-remove, so steady-state simulation allocates
// nothing.
type ParticlePool struct {
	particles []particle
	alive     int
}

// NewParticlePool creates a pool with the given capacity. Capacities below 1
// fall back to 100 slots.
func NewParticlePool(capacity int) *ParticlePool {
	if capacity < 1 {
		capacity = 100
	}
	return &ParticlePool{particles: make([]particle, capacity)}
}

// Capacity returns the fixed slot count.
func (p *ParticlePool) Capacity() int {
	return len(p.particles)
}

// AliveCount returns the number of active particles.
func (p *ParticlePool) AliveCount() int {
	return p.alive
}

// Reset deactivates every particle.
func (p *ParticlePool) Reset() {
	p.alive = 0
}

// Spawn activates up to count particles bursting out of (x, y) with
// randomized angle, speed, and size, full life, and the given color.
// Requests are truncated to the free slots and to a per-event cap of 32;
// the number actually activated is returned.
func (p *ParticlePool) Spawn(x, y float64, c Color, count int) int {
	if count > maxBurstRequest {
		count = maxBurstRequest
	}
	if free := len(p.particles) - p.alive; count > free {
		count = free
	}
	for i := 0; i < count; i++ {
		pt := &p.particles[p.alive]
		angle := rand.Float64() * 2 * math.Pi
		speed := particleSpeedBand.Random()
		pt.x = x
		pt.y = y
		pt.vx = math.Cos(angle) * speed
		pt.vy = math.Sin(angle) * speed
		pt.life = 1.0
		pt.size = particleSizeBand.Random()
		pt.color = c
		p.alive++
	}
	return count
}

// Update advances every active particle by one tick: position by velocity,
// velocity by gravity, life by decay, size by shrink. Dead particles are
// swap-removed in the same pass.
func (p *ParticlePool) Update() {
	i := 0
	for i < p.alive {
		pt := &p.particles[i]
		pt.life -= particleDecay
		if pt.life <= 0 {
			p.alive--
			p.particles[i] = p.particles[p.alive]
			continue
		}
		pt.vy += particleGravity
		pt.x += pt.vx
		pt.y += pt.vy
		pt.size *= particleShrink
		i++
	}
}

// Draw renders active particles as filled circles with alpha equal to the
// remaining life, offset by the render-only shake translation (dx, dy).
func (p *ParticlePool) Draw(screen *ebiten.Image, dx, dy float64) {
	for i := 0; i < p.alive; i++ {
		pt := &p.particles[i]
		clr := pt.color.WithAlpha(pt.life * pt.color.A).toRGBA()
		vector.DrawFilledCircle(screen,
			float32(pt.x+dx), float32(pt.y+dy), float32(pt.size), clr, true)
	}
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}
