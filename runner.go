package fruitfall

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int // window width; defaults to the game's field width
	Height int // window height; defaults to the game's field height
	// ShowFPS overlays an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// OnUpdate, when set, runs before each tick. This is the place for
	// host concerns: input handling, draining a pose feed, HUD state.
	// Returning an error stops the loop.
	OnUpdate func(*Game) error
	// OnDraw, when set, runs after the game has drawn each frame, on top
	// of the finished scene. Hosts use it for HUD layers.
	OnDraw func(*Game, *ebiten.Image)
}

// Run creates a window and drives the game loop for you, calling
// Game.Update and Game.Draw once per frame tick in that order. For full
// control (custom input handling, HUD layers), implement ebiten.Game
// yourself and call Update/Draw directly; see the package documentation.
func Run(g *Game, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = int(g.cfg.Width)
	}
	if h <= 0 {
		h = int(g.cfg.Height)
	}
	title := cfg.Title
	if title == "" {
		title = "Fruitfall"
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(&runner{game: g, cfg: cfg})
}

// runner adapts a Game to the ebiten.Game interface.
type runner struct {
	game *Game
	cfg  RunConfig
}

func (r *runner) Update() error {
	if r.cfg.OnUpdate != nil {
		if err := r.cfg.OnUpdate(r.game); err != nil {
			return err
		}
	}
	r.game.Update()
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	r.game.Draw(screen)
	if r.cfg.OnDraw != nil {
		r.cfg.OnDraw(r.game, screen)
	}
	if r.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(r.game.cfg.Width), int(r.game.cfg.Height)
}
