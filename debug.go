package fruitfall

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, a stats line is
// printed to stderr once per second of simulated time.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// debugLog prints the per-second simulation stats line.
func (g *Game) debugLog() {
	_, _ = fmt.Fprintf(os.Stderr,
		"[fruitfall] tick=%d phase=%s score=%d life=%d level=%d combo=%d items=%d particles=%d\n",
		g.tick, g.phase, g.score, g.life, g.level, g.combo,
		len(g.items.items), g.pool.AliveCount())
}
