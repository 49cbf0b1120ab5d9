package fruitfall

import "testing"

func TestNormalizeFillsZeroValues(t *testing.T) {
	var cfg Config
	cfg.normalize()
	def := DefaultConfig()

	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Errorf("dimensions = %fx%f, want defaults", cfg.Width, cfg.Height)
	}
	if cfg.PoolCapacity != def.PoolCapacity {
		t.Errorf("pool capacity = %d, want %d", cfg.PoolCapacity, def.PoolCapacity)
	}
	if cfg.Smoothing != def.Smoothing {
		t.Errorf("smoothing = %f, want %f", cfg.Smoothing, def.Smoothing)
	}
	if len(cfg.SpawnTable) == 0 {
		t.Error("spawn table should be defaulted")
	}
}

func TestNormalizeClampsBadValues(t *testing.T) {
	cfg := Config{Smoothing: 1.7, SpawnInterval: 10, MinSpawnInterval: 50}
	cfg.normalize()

	if cfg.Smoothing != DefaultConfig().Smoothing {
		t.Errorf("smoothing = %f, out-of-range value should reset", cfg.Smoothing)
	}
	if cfg.MinSpawnInterval > cfg.SpawnInterval {
		t.Errorf("min interval %d exceeds interval %d", cfg.MinSpawnInterval, cfg.SpawnInterval)
	}
}

func TestDefaultSpawnTableCoversUnitInterval(t *testing.T) {
	table := DefaultSpawnTable()
	prev := 0.0
	for i, e := range table {
		if e.Threshold <= prev {
			t.Errorf("entry %d threshold %f not strictly increasing", i, e.Threshold)
		}
		prev = e.Threshold
	}
	if prev != 1.0 {
		t.Errorf("final threshold = %f, want 1.0", prev)
	}
}

func TestLaneGeometry(t *testing.T) {
	cfg := DefaultConfig()
	assertNear(t, "lane width", cfg.laneWidth(), cfg.Width/laneCount)
	assertNear(t, "lane 0 center", cfg.laneCenterX(0), cfg.Width/6)
	assertNear(t, "lane 1 center", cfg.laneCenterX(1), cfg.Width/2)
	assertNear(t, "lane 2 center", cfg.laneCenterX(2), cfg.Width*5/6)
}
