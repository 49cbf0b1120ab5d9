package fruitfall

// Fixed gameplay constants. Per-tick values assume the 60 TPS frame clock;
// session-level knobs that hosts may want to vary live on Config instead.
const (
	laneCount = 3

	itemRadius      = 16.0
	itemSpinPerTick = 0.06 // radians; only the diamond renders its spin

	spawnIntervalStep = 3 // ticks shaved off the spawn interval per level
	speedJitter       = 1.4
	speedStepPerLevel = 0.3
	scorePerLevel     = 1000 // score crossing that raises level and baseSpeed

	comboPerMultiplier = 10 // multiplier = 1 + combo/comboPerMultiplier

	catchBurstCount  = 12
	hazardBurstCount = 18
	maxBurstRequest  = 32 // per-event cap on a single particle burst

	particleGravity = 0.12  // px/tick^2 downward
	particleDecay   = 0.025 // life lost per tick (life starts at 1.0)
	particleShrink  = 0.97  // size multiplier per tick

	shakeDuration  = 0.3 // seconds
	shakeAmplitude = 9.0 // px at full strength
	flashDuration  = 0.25
	flashMaxAlpha  = 0.7

	playerHalfWidth = 28.0
	playerMarginY   = 80.0 // player center sits this far above the bottom edge
)

// Particle spawn bands (px/tick and px).
var (
	particleSpeedBand = Range{Min: 1.2, Max: 4.2}
	particleSizeBand  = Range{Min: 2, Max: 5}
)
