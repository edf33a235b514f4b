package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// hudFace renders HUD and banner text. Face7x13 advances 7px per glyph,
// which bannerText relies on for centring.
var hudFace font.Face = basicfont.Face7x13

// Draw implements ebiten.Game: the world renders into the logical-size
// buffer, then blits to the surface with the uniform view scale.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	g.worldBuf.Clear()
	g.drawWorld(g.worldBuf)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(g.viewScale, g.viewScale)
	opts.GeoM.Translate(g.viewOffX, g.viewOffY)
	screen.DrawImage(g.worldBuf, opts)

	g.drawHUD(screen)
}

func (g *Game) drawWorld(buf *ebiten.Image) {
	s := g.sim

	// Ground and a subtle grid.
	vector.FillRect(buf, 0, 0, float32(arenaWidth), float32(arenaHeight),
		color.RGBA{R: 26, G: 34, B: 28, A: 255}, false)
	drawGrid(buf, int(arenaWidth), int(arenaHeight), 40,
		color.RGBA{R: 32, G: 42, B: 34, A: 255})

	// Walls: interior obstacles get a lit top-left edge, the boundary
	// is a plain frame.
	wallFill := color.RGBA{R: 80, G: 76, B: 64, A: 255}
	wallLight := color.RGBA{R: 108, G: 102, B: 88, A: 200}
	wallDark := color.RGBA{R: 48, G: 45, B: 36, A: 200}
	for _, w := range s.Arena.Walls() {
		if w.Boundary {
			continue
		}
		x0, y0 := float32(w.X), float32(w.Y)
		ww, wh := float32(w.W), float32(w.H)
		vector.FillRect(buf, x0+3, y0+3, ww, wh, color.RGBA{R: 8, G: 6, B: 4, A: 90}, false)
		vector.FillRect(buf, x0, y0, ww, wh, wallFill, false)
		vector.StrokeLine(buf, x0, y0, x0+ww, y0, 1.0, wallLight, false)
		vector.StrokeLine(buf, x0, y0, x0, y0+wh, 1.0, wallLight, false)
		vector.StrokeLine(buf, x0, y0+wh, x0+ww, y0+wh, 1.0, wallDark, false)
		vector.StrokeLine(buf, x0+ww, y0, x0+ww, y0+wh, 1.0, wallDark, false)
	}
	vector.StrokeRect(buf, 0, 0, float32(arenaWidth), float32(arenaHeight),
		2.0, color.RGBA{R: 65, G: 90, B: 65, A: 255}, false)

	for _, b := range s.Effects.Bystanders() {
		drawBystander(buf, b)
	}
	for _, e := range s.Enemies {
		drawEnemy(buf, e)
	}
	if s.Player.Alive {
		drawPlayer(buf, s.Player)
	}
	for _, p := range s.Projectiles {
		drawProjectile(buf, p)
	}
	for _, p := range s.Effects.Particles() {
		drawParticle(buf, p)
	}
	for _, f := range s.Effects.Flashes() {
		drawFlash(buf, f)
	}
}

func drawGrid(buf *ebiten.Image, w, h, spacing int, c color.Color) {
	for x := 0; x <= w; x += spacing {
		vector.StrokeLine(buf, float32(x), 0, float32(x), float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		vector.StrokeLine(buf, 0, float32(y), float32(w), float32(y), 1.0, c, false)
	}
}

func drawPlayer(buf *ebiten.Image, p *Player) {
	px, py := float32(p.Pos.X), float32(p.Pos.Y)
	r := float32(p.Radius)

	// Visibility cone about the turret. Presentation only.
	coneCol := color.RGBA{R: 120, G: 200, B: 140, A: 26}
	a0 := p.TurretAngle - playerViewConeHalf
	a1 := p.TurretAngle + playerViewConeHalf
	ex0 := px + float32(math.Cos(a0))*playerViewConeLen
	ey0 := py + float32(math.Sin(a0))*playerViewConeLen
	ex1 := px + float32(math.Cos(a1))*playerViewConeLen
	ey1 := py + float32(math.Sin(a1))*playerViewConeLen
	vector.StrokeLine(buf, px, py, ex0, ey0, 1.0, coneCol, false)
	vector.StrokeLine(buf, px, py, ex1, ey1, 1.0, coneCol, false)

	vector.FillCircle(buf, px, py, r, color.RGBA{R: 60, G: 160, B: 90, A: 255}, true)
	vector.StrokeCircle(buf, px, py, r, 1.5, color.RGBA{R: 110, G: 220, B: 140, A: 255}, true)

	// Hull heading tick and turret barrel.
	hx := px + float32(math.Cos(p.BodyAngle))*r
	hy := py + float32(math.Sin(p.BodyAngle))*r
	vector.StrokeLine(buf, px, py, hx, hy, 2.0, color.RGBA{R: 30, G: 80, B: 45, A: 255}, true)
	bx := px + float32(math.Cos(p.TurretAngle))*(r+8)
	by := py + float32(math.Sin(p.TurretAngle))*(r+8)
	vector.StrokeLine(buf, px, py, bx, by, 3.0, color.RGBA{R: 200, G: 240, B: 210, A: 255}, true)
}

func drawEnemy(buf *ebiten.Image, e *Enemy) {
	if !e.Alive {
		return
	}
	preset := e.Preset()
	ex, ey := float32(e.Pos.X), float32(e.Pos.Y)
	r := float32(e.Radius)

	vector.FillCircle(buf, ex, ey, r, preset.body, true)
	bx := ex + float32(math.Cos(e.TurretAngle))*(r+8)
	bby := ey + float32(math.Sin(e.TurretAngle))*(r+8)
	vector.StrokeLine(buf, ex, ey, bx, bby, 3.0, preset.turret, true)

	// Alerted units carry a "!" marker, like a spotted indicator.
	if e.Alerted() {
		c := color.RGBA{R: 255, G: 200, B: 100, A: 180}
		topY := ey - r - 10
		vector.StrokeLine(buf, ex, topY, ex, topY+5, 1.5, c, false)
		vector.FillCircle(buf, ex, topY+7, 1.0, c, false)
	}

	// Health bar only once damaged.
	if e.Health < e.MaxHealth {
		frac := float32(e.Health / e.MaxHealth)
		barW := r * 2
		bx0 := ex - r
		by0 := ey - r - 5
		vector.FillRect(buf, bx0, by0, barW, 3, color.RGBA{R: 40, G: 40, B: 40, A: 200}, false)
		vector.FillRect(buf, bx0, by0, barW*frac, 3, color.RGBA{R: 220, G: 60, B: 50, A: 230}, false)
	}
}

func drawProjectile(buf *ebiten.Image, p *Projectile) {
	if !p.Active {
		return
	}
	trail := p.Trail()
	for i := 1; i < len(trail); i++ {
		a := uint8(40 + 30*i)
		vector.StrokeLine(buf,
			float32(trail[i-1].X), float32(trail[i-1].Y),
			float32(trail[i].X), float32(trail[i].Y),
			1.5, color.RGBA{R: a, G: a, B: uint8(float32(a) * 0.7), A: a}, false)
	}
	c := color.RGBA{R: 255, G: 230, B: 120, A: 255}
	if !p.Friendly {
		c = color.RGBA{R: 255, G: 120, B: 90, A: 255}
	}
	vector.FillCircle(buf, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), c, true)
}

func drawParticle(buf *ebiten.Image, p *Particle) {
	frac := p.Fraction()
	if frac <= 0 {
		return
	}
	c := color.RGBA{
		R: uint8(float64(p.Color.R) * frac),
		G: uint8(float64(p.Color.G) * frac),
		B: uint8(float64(p.Color.B) * frac),
		A: uint8(255 * frac),
	}
	vector.FillCircle(buf, float32(p.Pos.X), float32(p.Pos.Y),
		float32(p.Radius*frac), c, false)
}

func drawFlash(buf *ebiten.Image, f *Flash) {
	frac := f.Fraction()
	if frac <= 0 {
		return
	}
	c := color.RGBA{
		R: uint8(float64(f.Color.R) * frac),
		G: uint8(float64(f.Color.G) * frac),
		B: uint8(float64(f.Color.B) * frac),
		A: uint8(200 * frac),
	}
	vector.FillCircle(buf, float32(f.Pos.X), float32(f.Pos.Y),
		float32(f.Radius*frac), c, false)
}

func drawBystander(buf *ebiten.Image, b *Bystander) {
	if !b.Active {
		return
	}
	bx, by := float32(b.Pos.X), float32(b.Pos.Y)
	vector.FillCircle(buf, bx, by, float32(b.Radius),
		color.RGBA{R: 200, G: 190, B: 150, A: 255}, true)
	// Flailing direction tick.
	dir := b.Vel.Normalized().Scale(b.Radius + 4)
	vector.StrokeLine(buf, bx, by, bx+float32(dir.X), by+float32(dir.Y),
		1.0, color.RGBA{R: 150, G: 140, B: 110, A: 200}, false)
}

// drawHUD renders score, wave and health in surface space, plus the
// phase banners.
func (g *Game) drawHUD(screen *ebiten.Image) {
	snap := g.sim.Snapshot()

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("score: %d  wave: %d/%d  kills: %d",
			snap.Score, snap.Wave, maxWaves, snap.EnemiesKilled), 8, 8)

	// Health bar, bottom-left.
	frac := 0.0
	if snap.MaxHealth > 0 {
		frac = snap.PlayerHealth / snap.MaxHealth
	}
	barW := float32(180)
	bx := float32(8)
	by := float32(g.surfaceH - 22)
	vector.FillRect(screen, bx, by, barW, 12, color.RGBA{R: 30, G: 30, B: 30, A: 220}, false)
	vector.FillRect(screen, bx, by, barW*float32(frac), 12,
		color.RGBA{R: 70, G: 190, B: 90, A: 230}, false)
	vector.StrokeRect(screen, bx, by, barW, 12, 1.0,
		color.RGBA{R: 90, G: 120, B: 90, A: 200}, false)

	switch g.sim.Phase() {
	case PhaseMenu:
		g.bannerText(screen, "ARENA STRIKE", -20)
		g.bannerText(screen, "WASD move, mouse aim, click to start", 0)
	case PhasePaused:
		g.bannerText(screen, "PAUSED", 0)
	case PhaseOver:
		if snap.Victory {
			g.bannerText(screen, "VICTORY", -10)
		} else {
			g.bannerText(screen, "DEFEAT", -10)
		}
		g.bannerText(screen, fmt.Sprintf("final score %d - click to restart", snap.Score), 10)
	case PhaseRunning:
		if g.sim.BannerTimer > 0 {
			g.bannerText(screen, fmt.Sprintf("WAVE %d", snap.Wave), 0)
		}
	}
}

// bannerText centres a line of HUD text on the surface, offset dy
// pixels from the vertical middle.
func (g *Game) bannerText(screen *ebiten.Image, s string, dy int) {
	w := len(s) * 7 // Face7x13 glyph advance
	x := (g.surfaceW - w) / 2
	y := g.surfaceH/2 + dy
	text.Draw(screen, s, hudFace, x+1, y+1, color.RGBA{A: 200})
	text.Draw(screen, s, hudFace, x, y, color.RGBA{R: 220, G: 235, B: 220, A: 255})
}
