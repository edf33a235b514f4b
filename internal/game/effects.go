package game

import (
	"image/color"
	"math"
	"math/rand"
)

// Transient effect tuning.
const (
	hitParticleCount = 12
	hitSpeedMin      = 80.0
	hitSpeedMax      = 200.0
	hitLifeMin       = 0.3
	hitLifeMax       = 0.6
	hitFlashLife     = 0.15

	explosionParticleCount = 30
	explosionSpeedMin      = 50.0
	explosionSpeedMax      = 250.0
	explosionLifeMin       = 0.5
	explosionLifeMax       = 1.3
	explosionGravity       = 220.0 // units/s^2, pulls debris down

	smokeParticleCount = 15
	smokeGravity       = -60.0 // negative: smoke drifts upward
	smokeLifeMin       = 0.8
	smokeLifeMax       = 1.8

	sparkParticleCount = 8
	sparkConeHalf      = math.Pi / 6 // 60 degree cone about the reflection
	sparkSpeedMin      = 100.0
	sparkSpeedMax      = 250.0
	sparkLifeMin       = 0.2
	sparkLifeMax       = 0.4

	muzzleParticlesPerScale = 5

	bystanderRadius     = 8.0
	bystanderSpeedMin   = 180.0
	bystanderSpeedMax   = 260.0
	bystanderExitMargin = 50.0 // how far past the edge before despawn
)

// Particle is a short-lived ballistic dot. Opacity tracks remaining
// life and the radius shrinks with it.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Gravity float64 // units/s^2 applied to Vel.Y
	Life    float64 // seconds remaining
	MaxLife float64
	Radius  float64
	Color   color.RGBA
}

// Update advances the particle one tick.
func (p *Particle) Update(dt float64) {
	p.Vel.Y += p.Gravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life -= dt
}

// Done reports whether the particle has expired.
func (p *Particle) Done() bool { return p.Life <= 0 }

// Fraction returns remaining/initial life, clamped to [0,1].
func (p *Particle) Fraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clamp01(p.Life / p.MaxLife)
}

// Flash is a brief full-bright circle, used for muzzle blasts and
// impacts.
type Flash struct {
	Pos     Vec2
	Radius  float64
	Life    float64
	MaxLife float64
	Color   color.RGBA
}

func (f *Flash) Update(dt float64) { f.Life -= dt }
func (f *Flash) Done() bool        { return f.Life <= 0 }

// Fraction returns remaining/initial life, clamped to [0,1].
func (f *Flash) Fraction() float64 {
	if f.MaxLife <= 0 {
		return 0
	}
	return clamp01(f.Life / f.MaxLife)
}

// Bystander is a panicked NPC that bolts from a destroyed tank. It
// bounces off interior obstacles and despawns once well outside the
// arena.
type Bystander struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Active bool
}

// Update moves the bystander and reflects it off obstacles: the
// colliding velocity component flips damped by half, the other keeps
// most of its speed.
func (b *Bystander) Update(dt float64, obstacles []Wall, arena *Arena) {
	if !b.Active {
		return
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	for _, w := range obstacles {
		if !CircleRectOverlap(b.Pos, b.Radius, w) {
			continue
		}
		overlapLeft := b.Pos.X + b.Radius - w.X
		overlapRight := w.Right() - (b.Pos.X - b.Radius)
		overlapTop := b.Pos.Y + b.Radius - w.Y
		overlapBottom := w.Bottom() - (b.Pos.Y - b.Radius)
		overlapX := math.Min(overlapLeft, overlapRight)
		overlapY := math.Min(overlapTop, overlapBottom)

		if overlapX < overlapY {
			if overlapLeft < overlapRight {
				b.Pos.X = w.X - b.Radius
			} else {
				b.Pos.X = w.Right() + b.Radius
			}
			b.Vel.X *= -0.5
			b.Vel.Y *= 0.9
		} else {
			if overlapTop < overlapBottom {
				b.Pos.Y = w.Y - b.Radius
			} else {
				b.Pos.Y = w.Bottom() + b.Radius
			}
			b.Vel.Y *= -0.5
			b.Vel.X *= 0.9
		}
	}

	if b.Pos.X < -bystanderExitMargin || b.Pos.X > arena.Width+bystanderExitMargin ||
		b.Pos.Y < -bystanderExitMargin || b.Pos.Y > arena.Height+bystanderExitMargin {
		b.Active = false
	}
}

// EffectsManager owns every transient entity: particles, flashes and
// bystanders. Entities are marked dead during the tick and compacted in
// a single end-of-tick pass, never removed mid-iteration.
type EffectsManager struct {
	particles  []*Particle
	flashes    []*Flash
	bystanders []*Bystander
	rng        *rand.Rand
}

// NewEffectsManager creates an effects manager with its own rng.
func NewEffectsManager(rng *rand.Rand) *EffectsManager {
	return &EffectsManager{rng: rng}
}

// Update advances all transient entities and compacts expired ones.
func (em *EffectsManager) Update(dt float64, obstacles []Wall, arena *Arena) {
	for _, p := range em.particles {
		p.Update(dt)
	}
	for _, f := range em.flashes {
		f.Update(dt)
	}
	for _, b := range em.bystanders {
		b.Update(dt, obstacles, arena)
	}

	livePart := em.particles[:0]
	for _, p := range em.particles {
		if !p.Done() {
			livePart = append(livePart, p)
		}
	}
	em.particles = livePart

	liveFlash := em.flashes[:0]
	for _, f := range em.flashes {
		if !f.Done() {
			liveFlash = append(liveFlash, f)
		}
	}
	em.flashes = liveFlash

	liveBys := em.bystanders[:0]
	for _, b := range em.bystanders {
		if b.Active {
			liveBys = append(liveBys, b)
		}
	}
	em.bystanders = liveBys
}

// Particles returns the live particles.
func (em *EffectsManager) Particles() []*Particle { return em.particles }

// Flashes returns the live flashes.
func (em *EffectsManager) Flashes() []*Flash { return em.flashes }

// Bystanders returns the live bystanders.
func (em *EffectsManager) Bystanders() []*Bystander { return em.bystanders }

func (em *EffectsManager) rangeF(min, max float64) float64 {
	return min + em.rng.Float64()*(max-min)
}

// SpawnHitEffect bursts 12 particles in a full circle with directional
// jitter plus a short white flash.
func (em *EffectsManager) SpawnHitEffect(pos Vec2) {
	for i := 0; i < hitParticleCount; i++ {
		angle := float64(i)/hitParticleCount*2*math.Pi + em.rangeF(-0.3, 0.3)
		speed := em.rangeF(hitSpeedMin, hitSpeedMax)
		life := em.rangeF(hitLifeMin, hitLifeMax)
		em.particles = append(em.particles, &Particle{
			Pos:     pos,
			Vel:     FromAngle(angle).Scale(speed),
			Life:    life,
			MaxLife: life,
			Radius:  2.5,
			Color:   color.RGBA{R: 255, G: 200, B: 90, A: 255},
		})
	}
	em.flashes = append(em.flashes, &Flash{
		Pos: pos, Radius: 14, Life: hitFlashLife, MaxLife: hitFlashLife,
		Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
}

// explosionPalette colours the debris of a destroyed tank.
var explosionPalette = []color.RGBA{
	{R: 255, G: 120, B: 40, A: 255},
	{R: 255, G: 180, B: 60, A: 255},
	{R: 230, G: 70, B: 40, A: 255},
	{R: 255, G: 230, B: 120, A: 255},
}

// SpawnExplosion bursts 30 coloured debris particles with gravity, 15
// rising smoke particles, and a white-then-yellow flash pair.
func (em *EffectsManager) SpawnExplosion(pos Vec2) {
	for i := 0; i < explosionParticleCount; i++ {
		angle := em.rng.Float64() * 2 * math.Pi
		speed := em.rangeF(explosionSpeedMin, explosionSpeedMax)
		life := em.rangeF(explosionLifeMin, explosionLifeMax)
		em.particles = append(em.particles, &Particle{
			Pos:     pos,
			Vel:     FromAngle(angle).Scale(speed),
			Gravity: explosionGravity,
			Life:    life,
			MaxLife: life,
			Radius:  3.5,
			Color:   explosionPalette[em.rng.Intn(len(explosionPalette))],
		})
	}
	for i := 0; i < smokeParticleCount; i++ {
		angle := em.rng.Float64() * 2 * math.Pi
		speed := em.rangeF(20, 70)
		life := em.rangeF(smokeLifeMin, smokeLifeMax)
		grey := uint8(100 + em.rng.Intn(60))
		em.particles = append(em.particles, &Particle{
			Pos:     pos,
			Vel:     FromAngle(angle).Scale(speed),
			Gravity: smokeGravity,
			Life:    life,
			MaxLife: life,
			Radius:  5,
			Color:   color.RGBA{R: grey, G: grey, B: grey, A: 255},
		})
	}
	em.flashes = append(em.flashes,
		&Flash{Pos: pos, Radius: 34, Life: 0.2, MaxLife: 0.2,
			Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		&Flash{Pos: pos, Radius: 24, Life: 0.3, MaxLife: 0.3,
			Color: color.RGBA{R: 255, G: 220, B: 90, A: 255}},
	)
}

// SpawnWallSpark bursts 8 particles in a 60 degree cone about the
// reflected impact angle plus a small white flash.
func (em *EffectsManager) SpawnWallSpark(pos Vec2, reflectAngle float64) {
	for i := 0; i < sparkParticleCount; i++ {
		angle := reflectAngle + em.rangeF(-sparkConeHalf, sparkConeHalf)
		speed := em.rangeF(sparkSpeedMin, sparkSpeedMax)
		life := em.rangeF(sparkLifeMin, sparkLifeMax)
		em.particles = append(em.particles, &Particle{
			Pos:     pos,
			Vel:     FromAngle(angle).Scale(speed),
			Life:    life,
			MaxLife: life,
			Radius:  2,
			Color:   color.RGBA{R: 255, G: 240, B: 160, A: 255},
		})
	}
	em.flashes = append(em.flashes, &Flash{
		Pos: pos, Radius: 8, Life: 0.1, MaxLife: 0.1,
		Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
}

// SpawnMuzzleFlash bursts 5*scale yellow particles in a narrow cone
// around the firing angle plus a white flash sized by scale. Heavier
// classes pass scale > 1.
func (em *EffectsManager) SpawnMuzzleFlash(pos Vec2, angle, scale float64) {
	count := int(muzzleParticlesPerScale * scale)
	for i := 0; i < count; i++ {
		a := angle + em.rangeF(-0.2, 0.2)
		speed := em.rangeF(120, 220)
		life := em.rangeF(0.08, 0.18)
		em.particles = append(em.particles, &Particle{
			Pos:     pos,
			Vel:     FromAngle(a).Scale(speed),
			Life:    life,
			MaxLife: life,
			Radius:  2,
			Color:   color.RGBA{R: 255, G: 220, B: 80, A: 255},
		})
	}
	em.flashes = append(em.flashes, &Flash{
		Pos: pos, Radius: 8 * scale, Life: 0.1, MaxLife: 0.1,
		Color: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
}

// SpawnBystander releases a fleeing NPC at pos with a random direction
// and speed.
func (em *EffectsManager) SpawnBystander(pos Vec2) {
	angle := em.rng.Float64() * 2 * math.Pi
	speed := em.rangeF(bystanderSpeedMin, bystanderSpeedMax)
	em.bystanders = append(em.bystanders, &Bystander{
		Pos:    pos,
		Vel:    FromAngle(angle).Scale(speed),
		Radius: bystanderRadius,
		Active: true,
	})
}
