package fruitfall

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	backgroundColor = Color{R: 0.05, G: 0.05, B: 0.1, A: 1}
	laneGuideColor  = Color{R: 1, G: 1, B: 1, A: 0.08}
	basketColor     = Color{R: 0.85, G: 0.65, B: 0.3, A: 1}
	basketRimColor  = Color{R: 0.6, G: 0.42, B: 0.16, A: 1}
	overlayDimColor = Color{R: 0, G: 0, B: 0, A: 0.6}
)

// whitePixel is the 1x1 source image for solid-color triangle fills.
// Created lazily on the first Draw so headless simulation never touches
// the graphics stack.
var (
	whitePixel     *ebiten.Image
	whitePixelOnce sync.Once
)

func solidPixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
	})
	return whitePixel
}

// Overlay faces, built from the bundled Go Regular on first use.
var (
	faceOnce   sync.Once
	titleFace  *text.GoTextFace
	detailFace *text.GoTextFace
)

func overlayFaces() (*text.GoTextFace, *text.GoTextFace) {
	faceOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			// Overlay text is skipped when the bundled font fails to parse.
			fmt.Fprintf(os.Stderr, "[fruitfall] bundled font unusable: %v\n", err)
			return
		}
		titleFace = &text.GoTextFace{Source: source, Size: 36}
		detailFace = &text.GoTextFace{Source: source, Size: 18}
	})
	return titleFace, detailFace
}

// Draw renders the current state onto screen: background, lane guides,
// particles, items, player, the jackpot flash overlay, and — only in
// GameOver — the final-score overlay. Screen shake is applied as a
// render-only translation of the play field; it never mutates logical
// positions.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor.toRGBA())

	dx, dy := g.fx.offset()

	g.drawLaneGuides(screen, dx, dy)
	g.pool.Draw(screen, dx, dy)
	for i := range g.items.items {
		drawItem(screen, &g.items.items[i], dx, dy)
	}
	g.drawPlayer(screen, dx, dy)

	if g.fx.flashAlpha > 0 {
		flash := Color{1, 1, 1, float64(g.fx.flashAlpha)}
		vector.DrawFilledRect(screen, 0, 0,
			float32(g.cfg.Width), float32(g.cfg.Height), flash.toRGBA(), false)
	}

	if g.phase == PhaseGameOver {
		g.drawGameOver(screen)
	}
}

func (g *Game) drawLaneGuides(screen *ebiten.Image, dx, dy float64) {
	clr := laneGuideColor.toRGBA()
	for lane := 1; lane < laneCount; lane++ {
		x := float32(g.cfg.laneWidth()*float64(lane) + dx)
		vector.StrokeLine(screen, x, float32(dy), x, float32(g.cfg.Height+dy), 2, clr, false)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image, dx, dy float64) {
	x := float32(g.player.X + dx)
	y := float32(g.playerY() + dy)
	hw := float32(playerHalfWidth)

	// Basket body: a trapezoid narrowing toward the bottom.
	fillPolygon(screen, basketColor, []Vec2{
		{X: float64(x - hw), Y: float64(y - 10)},
		{X: float64(x + hw), Y: float64(y - 10)},
		{X: float64(x + hw*0.7), Y: float64(y + 18)},
		{X: float64(x - hw*0.7), Y: float64(y + 18)},
	})
	vector.DrawFilledRect(screen, x-hw-3, y-14, 2*(hw+3), 6, basketRimColor.toRGBA(), false)
}

func drawItem(screen *ebiten.Image, it *Item, dx, dy float64) {
	x := float32(it.X + dx)
	y := float32(it.Y + dy)
	clr := it.Tier.BurstColor().toRGBA()

	switch it.Tier {
	case TierApple:
		vector.DrawFilledCircle(screen, x, y, 14, clr, true)
		stem := Color{R: 0.3, G: 0.65, B: 0.25, A: 1}.toRGBA()
		vector.DrawFilledRect(screen, x-1.5, y-19, 3, 7, stem, false)
	case TierGrape:
		// A small cluster reads better than a single blob.
		vector.DrawFilledCircle(screen, x, y+4, 9, clr, true)
		vector.DrawFilledCircle(screen, x-7, y-4, 9, clr, true)
		vector.DrawFilledCircle(screen, x+7, y-4, 9, clr, true)
	case TierOrange:
		vector.DrawFilledCircle(screen, x, y, 14, clr, true)
		leaf := Color{R: 0.25, G: 0.6, B: 0.3, A: 1}.toRGBA()
		vector.DrawFilledCircle(screen, x+6, y-13, 4, leaf, true)
	case TierDiamond:
		drawDiamond(screen, float64(x), float64(y), 15, it.Rotation, it.Tier.BurstColor())
	case TierBomb:
		body := Color{R: 0.2, G: 0.2, B: 0.22, A: 1}.toRGBA()
		vector.DrawFilledCircle(screen, x, y, 13, body, true)
		fuse := Color{R: 0.75, G: 0.7, B: 0.6, A: 1}.toRGBA()
		vector.StrokeLine(screen, x, y-13, x+6, y-20, 2, fuse, true)
		spark := Color{R: 1, G: 0.45, B: 0.1, A: 1}.toRGBA()
		vector.DrawFilledCircle(screen, x+6, y-20, 3, spark, true)
	}
}

// drawDiamond fills a rotated square glyph for the jackpot tier.
func drawDiamond(screen *ebiten.Image, cx, cy, r, rotation float64, c Color) {
	pts := make([]Vec2, 4)
	for i := 0; i < 4; i++ {
		a := rotation + float64(i)*math.Pi/2
		pts[i] = Vec2{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r}
	}
	fillPolygon(screen, c, pts)
}

// fillPolygon fills a convex polygon via the path-to-triangles route,
// tinting the shared white pixel.
func fillPolygon(screen *ebiten.Image, c Color, pts []Vec2) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R * c.A)
		vs[i].ColorG = float32(c.G * c.A)
		vs[i].ColorB = float32(c.B * c.A)
		vs[i].ColorA = float32(c.A)
	}
	screen.DrawTriangles(vs, is, solidPixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(g.cfg.Width), float32(g.cfg.Height), overlayDimColor.toRGBA(), false)

	title, detail := overlayFaces()
	if title == nil {
		return
	}
	cx := g.cfg.Width / 2
	cy := g.cfg.Height / 2

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy-60)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "GAME OVER", title, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("SCORE  %d", g.score), detail, op)

	op = &text.DrawOptions{}
	op.GeoM.Translate(cx, cy+32)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, fmt.Sprintf("LEVEL %d   BEST COMBO %d", g.level, g.maxCombo), detail, op)
}
