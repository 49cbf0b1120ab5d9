package fruitfall

// Player is the catcher. Pose labels set a target lane; the rendered
// position glides toward the target with per-tick exponential smoothing
// rather than teleporting.
type Player struct {
	X       float64 // current horizontal center
	TargetX float64
	Lane    int // last accepted lane
}

// reset snaps the player to the center lane.
func (p *Player) reset(cfg *Config) {
	p.Lane = laneCount / 2
	p.X = cfg.laneCenterX(p.Lane)
	p.TargetX = p.X
}

// setTarget maps a pose label to a target position. Unrecognized labels
// leave the previous target unchanged and report false.
func (p *Player) setTarget(label string, cfg *Config) bool {
	lane, ok := parseLane(label)
	if !ok {
		return false
	}
	p.Lane = lane
	p.TargetX = cfg.laneCenterX(lane)
	return true
}

// step moves the current position toward the target by the smoothing factor.
func (p *Player) step(smoothing float64) {
	p.X += (p.TargetX - p.X) * smoothing
}
