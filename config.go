package fruitfall

// SpawnEntry is one row of a SpawnTable: rolls strictly below Threshold
// (and at or above every earlier threshold) select Tier.
type SpawnEntry struct {
	Threshold float64
	Tier      Tier
}

// SpawnTable is an ordered cumulative-probability table mapping a uniform
// roll in [0, 1) to an item tier. Keeping the distribution as data makes the
// tier probabilities inspectable and testable rather than buried in branches.
type SpawnTable []SpawnEntry

// Pick returns the tier for a roll in [0, 1). Rolls at or past the final
// threshold fall through to the last entry.
func (t SpawnTable) Pick(roll float64) Tier {
	for _, e := range t {
		if roll < e.Threshold {
			return e.Tier
		}
	}
	return t[len(t)-1].Tier
}

// DefaultSpawnTable returns the standard tier distribution:
// bomb 20%, diamond 10%, orange 20%, grape 20%, apple 30%.
func DefaultSpawnTable() SpawnTable {
	return SpawnTable{
		{Threshold: 0.20, Tier: TierBomb},
		{Threshold: 0.30, Tier: TierDiamond},
		{Threshold: 0.50, Tier: TierOrange},
		{Threshold: 0.70, Tier: TierGrape},
		{Threshold: 1.00, Tier: TierApple},
	}
}

// Config controls a game session. Zero values are normalized to the
// defaults below, so Config{} is a playable configuration.
type Config struct {
	// Width and Height are the logical field dimensions in pixels.
	Width, Height float64
	// InitialLives is the life count at session start.
	InitialLives int
	// PoolCapacity is the fixed particle pool size.
	PoolCapacity int
	// Smoothing is the per-tick exponential smoothing factor applied to
	// player movement, in (0, 1]. 1 teleports; smaller values glide.
	Smoothing float64
	// HitDistance is the axis-wise catch distance between player and item
	// centers.
	HitDistance float64
	// BaseSpeed is the starting fall speed in px/tick. Each level adds a
	// fixed step on top.
	BaseSpeed float64
	// SpawnInterval is the level-1 spawn period in ticks. It shrinks with
	// level, floored at MinSpawnInterval.
	SpawnInterval int
	// MinSpawnInterval floors the level-adjusted spawn period.
	MinSpawnInterval int
	// SpawnTable selects item tiers. Defaults to DefaultSpawnTable.
	SpawnTable SpawnTable
	// MissResetsCombo selects the miss policy: when true an item falling
	// past the field resets the combo; when false a miss is a no-op.
	MissResetsCombo bool
}

// DefaultConfig returns the standard session configuration, including the
// combo-resetting miss policy.
func DefaultConfig() Config {
	return Config{
		Width:            480,
		Height:           640,
		InitialLives:     3,
		PoolCapacity:     100,
		Smoothing:        0.4,
		HitDistance:      42,
		BaseSpeed:        2.2,
		SpawnInterval:    48,
		MinSpawnInterval: 16,
		SpawnTable:       DefaultSpawnTable(),
		MissResetsCombo:  true,
	}
}

// normalize fills zero values with defaults and clamps out-of-range knobs.
// Bad configuration degrades to playable, never to an error.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.InitialLives <= 0 {
		c.InitialLives = def.InitialLives
	}
	if c.PoolCapacity <= 0 {
		c.PoolCapacity = def.PoolCapacity
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		c.Smoothing = def.Smoothing
	}
	if c.HitDistance <= 0 {
		c.HitDistance = def.HitDistance
	}
	if c.BaseSpeed <= 0 {
		c.BaseSpeed = def.BaseSpeed
	}
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = def.SpawnInterval
	}
	if c.MinSpawnInterval <= 0 {
		c.MinSpawnInterval = def.MinSpawnInterval
	}
	if c.MinSpawnInterval > c.SpawnInterval {
		c.MinSpawnInterval = c.SpawnInterval
	}
	if len(c.SpawnTable) == 0 {
		c.SpawnTable = def.SpawnTable
	}
}

// laneWidth returns the width of one lane.
func (c *Config) laneWidth() float64 {
	return c.Width / laneCount
}

// laneCenterX returns the horizontal center of a lane.
func (c *Config) laneCenterX(lane int) float64 {
	return c.laneWidth() * (float64(lane) + 0.5)
}
