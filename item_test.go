package fruitfall

import (
	"math/rand/v2"
	"testing"
)

func newTestStream() *stream {
	return newStream(rand.New(rand.NewPCG(7, 11)))
}

func TestSpawnTablePick(t *testing.T) {
	table := DefaultSpawnTable()
	cases := []struct {
		roll float64
		want Tier
	}{
		{0.0, TierBomb},
		{0.19, TierBomb},
		{0.20, TierDiamond},
		{0.29, TierDiamond},
		{0.30, TierOrange},
		{0.49, TierOrange},
		{0.50, TierGrape},
		{0.69, TierGrape},
		{0.70, TierApple},
		{0.99, TierApple},
		{1.0, TierApple}, // falls through to the last entry
	}
	for _, c := range cases {
		if got := table.Pick(c.roll); got != c.want {
			t.Errorf("Pick(%.2f) = %v, want %v", c.roll, got, c.want)
		}
	}
}

func TestIntervalShrinksWithLevelAndFloors(t *testing.T) {
	cfg := DefaultConfig()
	st := newTestStream()

	base := st.interval(&cfg, 1)
	if base != cfg.SpawnInterval {
		t.Errorf("level-1 interval = %d, want %d", base, cfg.SpawnInterval)
	}
	if iv := st.interval(&cfg, 2); iv != base-spawnIntervalStep {
		t.Errorf("level-2 interval = %d, want %d", iv, base-spawnIntervalStep)
	}
	if iv := st.interval(&cfg, 1000); iv != cfg.MinSpawnInterval {
		t.Errorf("high-level interval = %d, want floor %d", iv, cfg.MinSpawnInterval)
	}
}

func TestTrySpawnFiresOnInterval(t *testing.T) {
	cfg := DefaultConfig()
	st := newTestStream()

	for i := 0; i < cfg.SpawnInterval-1; i++ {
		st.trySpawn(&cfg, 1, cfg.BaseSpeed)
	}
	if len(st.items) != 0 {
		t.Fatalf("items = %d before interval elapsed, want 0", len(st.items))
	}
	st.trySpawn(&cfg, 1, cfg.BaseSpeed)
	if len(st.items) != 1 {
		t.Fatalf("items = %d after interval elapsed, want 1", len(st.items))
	}

	it := st.items[0]
	if it.Lane < 0 || it.Lane >= laneCount {
		t.Errorf("lane = %d, outside [0, %d)", it.Lane, laneCount)
	}
	assertNear(t, "x", it.X, cfg.laneCenterX(it.Lane))
	assertNear(t, "y", it.Y, -itemRadius)
	if it.Speed < cfg.BaseSpeed || it.Speed >= cfg.BaseSpeed+speedJitter {
		t.Errorf("speed = %f, outside [%f, %f)", it.Speed, cfg.BaseSpeed, cfg.BaseSpeed+speedJitter)
	}
}

func TestTrySpawnTierDistributionMatchesTable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnInterval = 1
	cfg.MinSpawnInterval = 1
	st := newTestStream()

	counts := map[Tier]int{}
	const rounds = 5000
	for i := 0; i < rounds; i++ {
		st.trySpawn(&cfg, 1, cfg.BaseSpeed)
		counts[st.items[len(st.items)-1].Tier]++
		st.reset()
	}

	// 20% bombs ± generous slack for 5000 draws.
	frac := float64(counts[TierBomb]) / rounds
	if frac < 0.15 || frac > 0.25 {
		t.Errorf("bomb fraction = %f, want ~0.20", frac)
	}
	if counts[TierApple] == 0 || counts[TierDiamond] == 0 {
		t.Error("expected every tier to appear over 5000 draws")
	}
}

func TestAdvanceMovesAndSpins(t *testing.T) {
	st := newTestStream()
	st.items = append(st.items, Item{X: 100, Y: 10, Speed: 3})

	st.advance(640, func(*Item) bool { return false }, func(*Item) {})

	assertNear(t, "y", st.items[0].Y, 13)
	assertNear(t, "rotation", st.items[0].Rotation, itemSpinPerTick)
}

func TestAdvanceRemovesCaughtWithoutSkipping(t *testing.T) {
	st := newTestStream()
	for i := 0; i < 4; i++ {
		st.items = append(st.items, Item{Lane: i % laneCount, X: float64(i), Y: 10, Speed: 1})
	}

	// Catch items at x==1 and x==2; every survivor must still advance once.
	st.advance(640, func(it *Item) bool {
		return it.X == 1 || it.X == 2
	}, func(*Item) {})

	if len(st.items) != 2 {
		t.Fatalf("items = %d, want 2", len(st.items))
	}
	for _, it := range st.items {
		if it.X == 1 || it.X == 2 {
			t.Errorf("caught item x=%f still present", it.X)
		}
		assertNear(t, "y", it.Y, 11)
	}
}

func TestAdvanceReportsBottomCrossingsAsMisses(t *testing.T) {
	st := newTestStream()
	st.items = append(st.items,
		Item{X: 1, Y: 630, Speed: 2},   // stays in field
		Item{X: 2, Y: 700, Speed: 2},   // already past
		Item{X: 3, Y: 655.5, Speed: 2}, // crosses 640+itemRadius this tick
	)

	var missed []float64
	st.advance(640, func(*Item) bool { return false }, func(it *Item) {
		missed = append(missed, it.X)
	})

	if len(st.items) != 1 || st.items[0].X != 1 {
		t.Fatalf("surviving items = %v, want just x=1", st.items)
	}
	if len(missed) != 2 {
		t.Fatalf("missed = %v, want 2 entries", missed)
	}
}

func TestStreamResetKeepsBackingArray(t *testing.T) {
	st := newTestStream()
	for i := 0; i < 10; i++ {
		st.items = append(st.items, Item{})
	}
	capBefore := cap(st.items)
	st.reset()
	if len(st.items) != 0 {
		t.Errorf("len = %d after reset, want 0", len(st.items))
	}
	if cap(st.items) != capBefore {
		t.Errorf("cap = %d after reset, want %d (array reuse)", cap(st.items), capBefore)
	}
}
