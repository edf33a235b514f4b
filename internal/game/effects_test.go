package game

import (
	"math"
	"testing"
)

func newTestEffects() *EffectsManager {
	return NewEffectsManager(testRng())
}

func TestEffects_HitEffectCounts(t *testing.T) {
	em := newTestEffects()
	em.SpawnHitEffect(Vec2{X: 400, Y: 280})
	if got := len(em.Particles()); got != hitParticleCount {
		t.Fatalf("hit effect must spawn %d particles, got %d", hitParticleCount, got)
	}
	if got := len(em.Flashes()); got != 1 {
		t.Fatalf("hit effect must spawn 1 flash, got %d", got)
	}
	for _, p := range em.Particles() {
		speed := p.Vel.Len()
		if speed < hitSpeedMin-1e-9 || speed > hitSpeedMax+1e-9 {
			t.Fatalf("hit particle speed %v outside [%v, %v]", speed, hitSpeedMin, hitSpeedMax)
		}
		if p.Life < hitLifeMin-1e-9 || p.Life > hitLifeMax+1e-9 {
			t.Fatalf("hit particle life %v outside [%v, %v]", p.Life, hitLifeMin, hitLifeMax)
		}
	}
}

func TestEffects_ExplosionCounts(t *testing.T) {
	em := newTestEffects()
	em.SpawnExplosion(Vec2{X: 400, Y: 280})
	want := explosionParticleCount + smokeParticleCount
	if got := len(em.Particles()); got != want {
		t.Fatalf("explosion must spawn %d particles, got %d", want, got)
	}
	if got := len(em.Flashes()); got != 2 {
		t.Fatalf("explosion must spawn a flash pair, got %d", got)
	}

	// Debris falls, smoke rises.
	var debris, smoke int
	for _, p := range em.Particles() {
		switch p.Gravity {
		case explosionGravity:
			debris++
		case smokeGravity:
			smoke++
		}
	}
	if debris != explosionParticleCount || smoke != smokeParticleCount {
		t.Fatalf("gravity split must be %d/%d, got %d/%d",
			explosionParticleCount, smokeParticleCount, debris, smoke)
	}
}

func TestEffects_WallSparkConeAboutReflection(t *testing.T) {
	em := newTestEffects()
	reflect := math.Pi / 3
	em.SpawnWallSpark(Vec2{X: 200, Y: 100}, reflect)
	if got := len(em.Particles()); got != sparkParticleCount {
		t.Fatalf("spark must spawn %d particles, got %d", sparkParticleCount, got)
	}
	for _, p := range em.Particles() {
		off := math.Abs(NormalizeAngle(p.Vel.Angle() - reflect))
		if off > sparkConeHalf+1e-9 {
			t.Fatalf("spark angle offset %v exceeds half cone %v", off, sparkConeHalf)
		}
	}
}

func TestEffects_MuzzleFlashScalesWithClass(t *testing.T) {
	em := newTestEffects()
	em.SpawnMuzzleFlash(Vec2{X: 100, Y: 100}, 0, 1.0)
	if got := len(em.Particles()); got != muzzleParticlesPerScale {
		t.Fatalf("scale 1 muzzle flash must spawn %d particles, got %d",
			muzzleParticlesPerScale, got)
	}

	boss := newTestEffects()
	boss.SpawnMuzzleFlash(Vec2{X: 100, Y: 100}, 0, 2.0)
	if got := len(boss.Particles()); got != muzzleParticlesPerScale*2 {
		t.Fatalf("scale 2 muzzle flash must spawn %d particles, got %d",
			muzzleParticlesPerScale*2, got)
	}
}

func TestEffects_ParticleFadesAndExpires(t *testing.T) {
	p := &Particle{Pos: Vec2{}, Vel: Vec2{X: 10}, Life: 0.5, MaxLife: 0.5}
	p.Update(0.25)
	if math.Abs(p.Fraction()-0.5) > 1e-9 {
		t.Fatalf("half-spent particle must report fraction 0.5, got %v", p.Fraction())
	}
	p.Update(0.3)
	if !p.Done() {
		t.Fatal("expired particle must report done")
	}
	if p.Fraction() != 0 {
		t.Fatalf("expired particle fraction must clamp to 0, got %v", p.Fraction())
	}
}

func TestEffects_GravityBendsTrajectory(t *testing.T) {
	p := &Particle{Vel: Vec2{X: 100}, Gravity: explosionGravity, Life: 2, MaxLife: 2}
	for i := 0; i < 30; i++ {
		p.Update(1.0 / 60.0)
	}
	if p.Vel.Y <= 0 {
		t.Fatalf("positive gravity must pull the particle down, vel.Y = %v", p.Vel.Y)
	}

	s := &Particle{Vel: Vec2{X: 10}, Gravity: smokeGravity, Life: 2, MaxLife: 2}
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60.0)
	}
	if s.Vel.Y >= 0 {
		t.Fatalf("smoke must drift upward, vel.Y = %v", s.Vel.Y)
	}
}

func TestEffects_UpdateCompactsExpired(t *testing.T) {
	em := newTestEffects()
	em.SpawnHitEffect(Vec2{X: 400, Y: 280})
	arena := NewArena()

	// Hit particles live at most 0.6s and the flash 0.15s.
	for i := 0; i < 60; i++ {
		em.Update(1.0/60.0, arena.Obstacles(), arena)
	}
	if len(em.Particles()) != 0 {
		t.Fatalf("all hit particles must compact away, %d left", len(em.Particles()))
	}
	if len(em.Flashes()) != 0 {
		t.Fatalf("all flashes must compact away, %d left", len(em.Flashes()))
	}
}

func TestBystander_ReflectsOffObstacle(t *testing.T) {
	arena := NewArena()
	wall := Wall{X: 200, Y: 100, W: 40, H: 200}
	b := &Bystander{
		Pos:    Vec2{X: 190, Y: 200},
		Vel:    Vec2{X: 200, Y: 40},
		Radius: bystanderRadius,
		Active: true,
	}

	b.Update(1.0/60.0, []Wall{wall}, arena)
	if b.Vel.X != -100 {
		t.Fatalf("colliding component must flip damped by half, got %v", b.Vel.X)
	}
	if b.Vel.Y != 36 {
		t.Fatalf("other component must keep 90%%, got %v", b.Vel.Y)
	}
	if b.Pos.X+b.Radius > wall.X {
		t.Fatalf("bystander must be pushed clear of the wall, x = %v", b.Pos.X)
	}
}

func TestBystander_DespawnsPastExitMargin(t *testing.T) {
	arena := NewArena()
	b := &Bystander{
		Pos:    Vec2{X: -bystanderExitMargin - 1, Y: 100},
		Vel:    Vec2{X: -10},
		Radius: bystanderRadius,
		Active: true,
	}
	b.Update(1.0/60.0, nil, arena)
	if b.Active {
		t.Fatal("bystander past the exit margin must despawn")
	}

	inside := &Bystander{
		Pos:    Vec2{X: -10, Y: 100},
		Vel:    Vec2{},
		Radius: bystanderRadius,
		Active: true,
	}
	inside.Update(1.0/60.0, nil, arena)
	if !inside.Active {
		t.Fatal("bystander inside the exit margin must stay")
	}
}

func TestBystander_SpawnSpeedInRange(t *testing.T) {
	em := newTestEffects()
	for i := 0; i < 20; i++ {
		em.SpawnBystander(Vec2{X: 400, Y: 280})
	}
	for _, b := range em.Bystanders() {
		speed := b.Vel.Len()
		if speed < bystanderSpeedMin-1e-9 || speed > bystanderSpeedMax+1e-9 {
			t.Fatalf("bystander speed %v outside [%v, %v]",
				speed, bystanderSpeedMin, bystanderSpeedMax)
		}
	}
}
