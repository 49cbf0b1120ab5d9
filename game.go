package fruitfall

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game owns one catcher session: the state machine, the player, the item
// stream, the particle pool, and the juice timers. All mutation happens
// inside Start, SetPose, and Update; the host calls Update then Draw once
// per frame tick and delivers stabilized pose labels via SetPose at whatever
// cadence the pose pipeline produces them.
type Game struct {
	cfg Config

	phase     Phase
	score     int
	life      int
	level     int
	combo     int
	maxCombo  int
	baseSpeed float64
	tick      uint64

	player Player
	items  *stream
	pool   *ParticlePool
	fx     juice

	rng   *rand.Rand
	audio *Audio
	debug bool

	// OnScore is called after every scoring event (catch, hazard hit, or a
	// combo-resetting miss) and once with reset values when Start is called.
	OnScore func(score, life, level, combo int)
	// OnGameOver is called exactly once per session, when life reaches zero.
	OnGameOver func(score, level int)
}

// NewGame creates a session in the Ready phase. Zero fields in cfg are
// normalized to defaults; see Config.
func NewGame(cfg Config) *Game {
	cfg.normalize()
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	g := &Game{
		cfg:   cfg,
		rng:   rng,
		items: newStream(rng),
		pool:  NewParticlePool(cfg.PoolCapacity),
		level: 1,
		life:  cfg.InitialLives,
	}
	g.player.reset(&cfg)
	return g
}

// Config returns a copy of the normalized session configuration.
func (g *Game) Config() Config { return g.cfg }

// Phase returns the current session phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Life returns the remaining lives.
func (g *Game) Life() int { return g.life }

// Level returns the current difficulty level.
func (g *Game) Level() int { return g.level }

// Combo returns the count of consecutive non-hazard catches.
func (g *Game) Combo() int { return g.combo }

// MaxCombo returns the best combo reached this session.
func (g *Game) MaxCombo() int { return g.maxCombo }

// SetAudio attaches an optional sound system. A nil audio (the default)
// disables sound without affecting simulation.
func (g *Game) SetAudio(a *Audio) { g.audio = a }

// Start resets score, lives, level, combo, items, particles, juice, and
// speed, and enters the Playing phase from any phase. Listeners are
// notified once with the reset values.
func (g *Game) Start() {
	g.phase = PhasePlaying
	g.score = 0
	g.life = g.cfg.InitialLives
	g.level = 1
	g.combo = 0
	g.maxCombo = 0
	g.baseSpeed = g.cfg.BaseSpeed
	g.tick = 0
	g.player.reset(&g.cfg)
	g.items.reset()
	g.pool.Reset()
	g.fx.reset()
	g.notifyScore()
}

// SetPose updates the player's target lane from a stabilized pose label.
// Calls outside the Playing phase and unrecognized labels are silently
// ignored.
func (g *Game) SetPose(label string) {
	if g.phase != PhasePlaying {
		return
	}
	g.player.setTarget(label, &g.cfg)
}

// Update advances the simulation by one tick: spawn timing, player motion,
// item advancement and collision, particle physics, then juice countdowns.
// It is a no-op outside the Playing phase.
func (g *Game) Update() {
	if g.phase != PhasePlaying {
		return
	}
	g.tick++
	g.items.trySpawn(&g.cfg, g.level, g.baseSpeed)
	g.player.step(g.cfg.Smoothing)
	g.items.advance(g.cfg.Height, g.resolve, g.missItem)
	g.pool.Update()
	g.fx.step(1 / float32(ebiten.TPS()))

	if g.debug && g.tick%60 == 0 {
		g.debugLog()
	}
}

// playerY returns the fixed vertical center of the catcher.
func (g *Game) playerY() float64 {
	return g.cfg.Height - playerMarginY
}

// resolve tests one item against the player and applies the hit. It reports
// whether the item was consumed. Once a hazard ends the session mid-pass,
// the rest of the tick's items resolve to nothing: no hits, no score, no
// further notifications.
func (g *Game) resolve(it *Item) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if math.Abs(it.Y-g.playerY()) >= g.cfg.HitDistance ||
		math.Abs(it.X-g.player.X) >= g.cfg.HitDistance {
		return false
	}
	if it.Tier.IsHazard() {
		g.hitHazard(it)
	} else {
		g.catchItem(it)
	}
	return true
}

// hitHazard applies a hazard collision: one life lost, combo gone, screen
// shake, ash burst; ends the session when the last life goes.
func (g *Game) hitHazard(it *Item) {
	g.life--
	g.combo = 0
	g.fx.startShake()
	g.pool.Spawn(it.X, it.Y, it.Tier.BurstColor(), hazardBurstCount)
	g.playSound(SoundHazard)
	g.notifyScore()
	if g.life <= 0 {
		g.life = 0
		g.phase = PhaseGameOver
		g.playSound(SoundGameOver)
		if g.OnGameOver != nil {
			g.OnGameOver(g.score, g.level)
		}
	}
}

// catchItem applies a scoring collision: combo up, multiplied score, a
// tier-colored burst, the jackpot flash when due, and the difficulty ramp
// on every 1000-point crossing.
func (g *Game) catchItem(it *Item) {
	g.combo++
	if g.combo > g.maxCombo {
		g.maxCombo = g.combo
	}
	multiplier := 1 + g.combo/comboPerMultiplier
	before := g.score
	g.score += it.Tier.ScoreValue() * multiplier

	if it.Tier == TierDiamond {
		g.fx.startFlash()
		g.playSound(SoundJackpot)
	} else {
		g.playSound(SoundCatch)
	}
	g.pool.Spawn(it.X, it.Y, it.Tier.BurstColor(), catchBurstCount)

	for crossed := g.score/scorePerLevel - before/scorePerLevel; crossed > 0; crossed-- {
		g.level++
		g.baseSpeed += speedStepPerLevel
		g.playSound(SoundLevelUp)
	}
	g.notifyScore()
}

// missItem handles an item falling past the field. Under the combo-resetting
// policy a non-empty combo is cleared and listeners are told; otherwise the
// miss is a no-op.
func (g *Game) missItem(*Item) {
	if g.phase != PhasePlaying || !g.cfg.MissResetsCombo || g.combo == 0 {
		return
	}
	g.combo = 0
	g.notifyScore()
}

func (g *Game) notifyScore() {
	if g.OnScore != nil {
		g.OnScore(g.score, g.life, g.level, g.combo)
	}
}

func (g *Game) playSound(kind SoundKind) {
	if g.audio != nil {
		g.audio.Play(kind)
	}
}
