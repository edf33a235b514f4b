package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the simulation core to ebiten: it polls input, maps the
// pointer into arena units, steps the Sim once per frame with a
// wall-clock delta, and renders. The simulation itself never touches
// ebiten; everything ebiten-specific lives here and in draw.go.
type Game struct {
	sim    *Sim
	input  InputSource
	sounds *SoundManager

	// Offscreen buffer the world is rendered to at logical size, then
	// blitted to the surface with a single uniform scale.
	worldBuf *ebiten.Image

	surfaceW int
	surfaceH int
	// View transform, recomputed whenever the surface resizes.
	viewScale float64
	viewOffX  float64
	viewOffY  float64

	lastUpdate time.Time
	prevReport bool // edge detection for the debug-report key
}

// New creates the windowed game with a time-seeded session.
func New() *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	g := &Game{
		sim:       NewSim(rng),
		input:     NewKeyboardMouseInput(),
		sounds:    NewSoundManager(),
		worldBuf:  ebiten.NewImage(int(arenaWidth), int(arenaHeight)),
		viewScale: 1,
	}
	// Audio is optional: a missing output device degrades to silence.
	_ = g.sounds.Initialize()
	return g
}

// Update implements ebiten.Game. One display frame is one simulation
// tick; the elapsed wall-clock time is clamped inside Sim.Step.
func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / 60.0
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	in := g.input.Poll()
	// Pointer arrives in surface pixels; remove the letterbox offset
	// and divide by the uniform scale to get arena units.
	if g.viewScale > 0 {
		in.PointerX = (in.PointerX - g.viewOffX) / g.viewScale
		in.PointerY = (in.PointerY - g.viewOffY) / g.viewScale
	}

	if g.sim.Phase() == PhaseOver && in.FirePressed {
		g.restart()
		return nil
	}

	g.sim.Step(dt, in)

	ev := g.sim.Events()
	if ev.ShotsFired > 0 {
		g.sounds.PlayFire()
	}
	if ev.Hits > 0 || ev.WallImpacts > 0 {
		g.sounds.PlayHit()
	}
	if ev.Explosions > 0 {
		g.sounds.PlayExplosion()
	}

	g.handleReportKey()
	return nil
}

// restart discards the finished session and begins a fresh one.
func (g *Game) restart() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	g.sim = NewSim(rng)
}

// handleReportKey copies the session debug report to the clipboard on
// F1, edge-triggered.
func (g *Game) handleReportKey() {
	down := ebiten.IsKeyPressed(ebiten.KeyF1)
	if down && !g.prevReport {
		_ = copyDebugReport(g.sim)
	}
	g.prevReport = down
}

// Layout implements ebiten.Game. The surface size is taken as-is and
// the world is scaled by min(w/800, h/560), letterboxed about the
// centre.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	g.surfaceW = outsideWidth
	g.surfaceH = outsideHeight

	sx := float64(outsideWidth) / arenaWidth
	sy := float64(outsideHeight) / arenaHeight
	g.viewScale = sx
	if sy < sx {
		g.viewScale = sy
	}
	g.viewOffX = (float64(outsideWidth) - arenaWidth*g.viewScale) / 2
	g.viewOffY = (float64(outsideHeight) - arenaHeight*g.viewScale) / 2
	return outsideWidth, outsideHeight
}
