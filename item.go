package fruitfall

import "math/rand/v2"

// Item is a falling collectible or hazard. Items live in an insertion-ordered,
// order-irrelevant slice and are swap-removed during the advance pass.
type Item struct {
	Lane     int
	X, Y     float64
	Tier     Tier
	Speed    float64 // px/tick
	Rotation float64 // radians; advances every tick
}

const initialItemCap = 64

// stream spawns and advances falling items. The backing array is allocated
// once and reused across sessions.
type stream struct {
	items     []Item
	spawnTick int
	rng       *rand.Rand
}

func newStream(rng *rand.Rand) *stream {
	return &stream{
		items: make([]Item, 0, initialItemCap),
		rng:   rng,
	}
}

// reset drops all items and restarts the spawn timer.
func (st *stream) reset() {
	st.items = st.items[:0]
	st.spawnTick = 0
}

// interval returns the level-adjusted spawn period in ticks.
func (st *stream) interval(cfg *Config, level int) int {
	iv := cfg.SpawnInterval - (level-1)*spawnIntervalStep
	if iv < cfg.MinSpawnInterval {
		iv = cfg.MinSpawnInterval
	}
	return iv
}

// trySpawn advances the spawn timer one tick and, when it fires, pushes a new
// item at the top of a random lane with a tier drawn from the spawn table and
// speed = baseSpeed plus jitter.
func (st *stream) trySpawn(cfg *Config, level int, baseSpeed float64) {
	st.spawnTick++
	if st.spawnTick < st.interval(cfg, level) {
		return
	}
	st.spawnTick = 0

	lane := st.rng.IntN(laneCount)
	st.items = append(st.items, Item{
		Lane:  lane,
		X:     cfg.laneCenterX(lane),
		Y:     -itemRadius,
		Tier:  cfg.SpawnTable.Pick(st.rng.Float64()),
		Speed: baseSpeed + st.rng.Float64()*speedJitter,
	})
}

// advance moves every item one tick and hands it to resolve; items that
// resolve as caught are removed, and items crossing the bottom boundary are
// reported to miss and removed. Swap-remove re-examines the swapped-in slot,
// so the single pass tolerates removal without skipping elements.
func (st *stream) advance(fieldHeight float64, resolve func(*Item) bool, miss func(*Item)) {
	i := 0
	for i < len(st.items) {
		it := &st.items[i]
		it.Y += it.Speed
		it.Rotation += itemSpinPerTick
		if resolve(it) {
			st.removeAt(i)
			continue
		}
		if it.Y > fieldHeight+itemRadius {
			miss(it)
			st.removeAt(i)
			continue
		}
		i++
	}
}

func (st *stream) removeAt(i int) {
	last := len(st.items) - 1
	st.items[i] = st.items[last]
	st.items = st.items[:last]
}
