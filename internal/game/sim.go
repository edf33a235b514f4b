package game

import "math/rand"

// Session tuning.
const (
	maxTickDelta = 0.1 // seconds; clamps large deltas after a pause or tab switch
	hitScore     = 25  // score per landed player hit
)

// Phase is the session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Snapshot is the read-only session state exposed for presentation.
// Safe to copy freely; mutated only at tick boundaries.
type Snapshot struct {
	Score         int
	Wave          int
	PlayerHealth  float64
	MaxHealth     float64
	EnemiesKilled int
	GameOver      bool
	Victory       bool
}

// TickEvents counts the noisy things that happened during one tick, so
// the presentation layer can trigger sounds without the core knowing
// about audio.
type TickEvents struct {
	ShotsFired  int
	Hits        int
	WallImpacts int
	Explosions  int
}

// Sim owns the full simulation: arena, player, enemies, projectiles,
// transient effects, wave escalation and scoring. It is single-threaded
// by construction; everything is mutated inside Step and nowhere else.
type Sim struct {
	Arena       *Arena
	Player      *Player
	Enemies     []*Enemy
	Projectiles []*Projectile
	Effects     *EffectsManager

	phase   Phase
	victory bool
	score   int
	wave    int
	kills   int

	// Seconds the wave announcement banner stays visible.
	BannerTimer float64

	events TickEvents
	rng    *rand.Rand
	tick   int
}

// NewSim builds a fresh session around the given rng. The first wave
// spawns when the session starts, not at construction.
func NewSim(rng *rand.Rand) *Sim {
	arena := NewArena()
	return &Sim{
		Arena:   arena,
		Player:  NewPlayer(arena.PlayerSpawn()),
		Effects: NewEffectsManager(rng),
		phase:   PhaseMenu,
		rng:     rng,
	}
}

// Phase returns the current session phase.
func (s *Sim) Phase() Phase { return s.phase }

// Tick returns the number of simulation steps taken.
func (s *Sim) Tick() int { return s.tick }

// Events returns the counters for the most recent tick.
func (s *Sim) Events() TickEvents { return s.events }

// Snapshot copies the presentation-facing session state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Score:         s.score,
		Wave:          s.wave,
		PlayerHealth:  s.Player.Health,
		MaxHealth:     s.Player.MaxHealth,
		EnemiesKilled: s.kills,
		GameOver:      s.phase == PhaseOver,
		Victory:       s.victory,
	}
}

// Start begins the session: wave 1 spawns and the clock runs.
func (s *Sim) Start() {
	if s.phase != PhaseMenu {
		return
	}
	s.phase = PhaseRunning
	s.wave = 1
	s.spawnWave()
}

// TogglePause flips between running and paused.
func (s *Sim) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseRunning
	}
}

// Step advances the simulation one tick. dt is clamped to maxTickDelta
// so a long stall cannot teleport everything. Pipeline order is
// load-bearing: player, enemies, projectiles, effects, wave check,
// then end-of-tick compaction.
func (s *Sim) Step(dt float64, in InputState) {
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	s.events = TickEvents{}

	switch s.phase {
	case PhaseMenu:
		if in.FirePressed {
			s.Start()
		}
		return
	case PhasePaused:
		if in.PausePressed {
			s.TogglePause()
		}
		return
	case PhaseOver:
		return
	}

	if in.PausePressed {
		s.TogglePause()
		return
	}

	s.tick++
	if s.BannerTimer > 0 {
		s.BannerTimer -= dt
	}

	s.updatePlayer(dt, in)
	s.updateEnemies(dt)
	s.updateProjectiles(dt)
	s.Effects.Update(dt, s.Arena.Obstacles(), s.Arena)

	// Compaction: dead enemies and spent shells leave the rosters only
	// here, never mid-iteration.
	liveEnemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Alive {
			liveEnemies = append(liveEnemies, e)
		}
	}
	s.Enemies = liveEnemies

	liveProj := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Active {
			liveProj = append(liveProj, p)
		}
	}
	s.Projectiles = liveProj

	s.checkSession()
}

func (s *Sim) updatePlayer(dt float64, in InputState) {
	p := s.Player
	p.Update(dt, in)
	for _, w := range s.Arena.Walls() {
		ResolveUnitWall(&p.Unit, w)
	}
	ClampToBounds(&p.Unit, s.Arena)

	if p.Alive && in.Fire && p.CanFire() {
		s.fire(&p.Unit, true, 1.0)
		p.ResetFireCooldown(0)
	}
}

func (s *Sim) updateEnemies(dt float64) {
	walls := s.Arena.Walls()
	for _, e := range s.Enemies {
		fired := e.Update(dt, s.Player, walls, s.rng)
		for _, w := range walls {
			ResolveUnitWall(&e.Unit, w)
		}
		ClampToBounds(&e.Unit, s.Arena)
		if fired {
			s.fire(&e.Unit, false, e.MuzzleScale)
		}
	}

	// Separate overlapping tanks pairwise, half the overlap each.
	for i := 0; i < len(s.Enemies); i++ {
		a := s.Enemies[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < len(s.Enemies); j++ {
			b := s.Enemies[j]
			if b.Alive {
				ResolveUnitUnit(&a.Unit, &b.Unit)
			}
		}
		if s.Player.Alive {
			ResolveUnitUnit(&a.Unit, &s.Player.Unit)
		}
	}
}

// fire spawns a projectile from the unit's muzzle along its turret.
func (s *Sim) fire(u *Unit, friendly bool, muzzleScale float64) {
	s.Projectiles = append(s.Projectiles,
		NewProjectile(u.Muzzle(), u.TurretAngle, u.Damage, friendly))
	s.Effects.SpawnMuzzleFlash(u.Muzzle(), u.TurretAngle, muzzleScale)
	s.events.ShotsFired++
}

func (s *Sim) updateProjectiles(dt float64) {
	for _, p := range s.Projectiles {
		if !p.Active {
			continue
		}
		p.Update(dt)

		if p.OutOfBounds(s.Arena) {
			p.Active = false
			continue
		}

		if w, hit := s.projectileWallHit(p); hit {
			s.Effects.SpawnWallSpark(p.Pos, reflectAngle(p.Vel, w, p.Pos))
			s.events.WallImpacts++
			p.Active = false
			continue
		}

		if p.Friendly {
			s.resolvePlayerShot(p)
		} else {
			s.resolveEnemyShot(p)
		}
	}
}

func (s *Sim) projectileWallHit(p *Projectile) (Wall, bool) {
	for _, w := range s.Arena.Walls() {
		if CircleRectOverlap(p.Pos, p.Radius, w) {
			return w, true
		}
	}
	return Wall{}, false
}

// resolvePlayerShot applies a friendly shell to the first enemy it
// overlaps. Hitting a unit alerts it and every living ally within the
// alert radius to the player's position; a kill scores, explodes, and
// releases a fleeing bystander.
func (s *Sim) resolvePlayerShot(p *Projectile) {
	for _, e := range s.Enemies {
		d := p.Pos.Dist(e.Pos)
		if d >= p.Radius+e.Radius {
			continue
		}
		p.Active = false
		s.events.Hits++
		died := e.TakeDamage(p.Damage)
		s.Effects.SpawnHitEffect(p.Pos)

		e.AlertToPosition(s.Player.Pos)
		for _, ally := range s.Enemies {
			if ally != e && ally.Alive && ally.Pos.Dist(e.Pos) <= alertRadius {
				ally.AlertToPosition(s.Player.Pos)
			}
		}

		if died {
			s.score += e.ScoreValue
			s.kills++
			s.Effects.SpawnExplosion(e.Pos)
			s.Effects.SpawnBystander(e.Pos)
			s.events.Explosions++
		} else {
			s.score += hitScore
		}
		return
	}
}

// resolveEnemyShot applies a hostile shell to the player. Player death
// is immediate and terminal.
func (s *Sim) resolveEnemyShot(p *Projectile) {
	pl := s.Player
	if !pl.Alive {
		return
	}
	if p.Pos.Dist(pl.Pos) >= p.Radius+pl.Radius {
		return
	}
	p.Active = false
	s.events.Hits++
	s.Effects.SpawnHitEffect(p.Pos)
	if pl.TakeDamage(p.Damage) {
		s.Effects.SpawnExplosion(pl.Pos)
		s.events.Explosions++
	}
}

// checkSession evaluates defeat and wave completion after the entity
// updates have settled.
func (s *Sim) checkSession() {
	if !s.Player.Alive {
		s.phase = PhaseOver
		s.victory = false
		return
	}

	if len(s.Enemies) > 0 {
		return
	}

	if s.wave >= maxWaves {
		s.phase = PhaseOver
		s.victory = true
		return
	}

	// Next wave: full heal, a flat damage bump, fresh enemies.
	s.wave++
	s.Player.Heal(s.Player.MaxHealth)
	s.Player.Damage += waveDamageBonus
	s.spawnWave()
}

// spawnWave populates the current wave: count and stat scalar grow with
// the wave number, classes roll per slot.
func (s *Sim) spawnWave() {
	count := WaveEnemyCount(s.wave)
	difficulty := WaveDifficulty(s.wave)
	for slot := 0; slot < count; slot++ {
		class := RollEnemyClass(s.wave, slot, s.rng)
		sp := s.Arena.RandomEnemySpawn(s.rng)
		pos := sp.Pos.Add(Vec2{
			X: (s.rng.Float64() - 0.5) * 30,
			Y: (s.rng.Float64() - 0.5) * 30,
		})
		route := patrolRouteFor(s.Arena, s.rng)
		s.Enemies = append(s.Enemies, NewEnemy(pos, class, difficulty, route))
	}
	s.BannerTimer = waveBannerTime
}

// reflectAngle mirrors an incoming velocity off the wall face it
// struck, picking the face by per-axis overlap.
func reflectAngle(vel Vec2, w Wall, at Vec2) float64 {
	overlapLeft := at.X - w.X
	overlapRight := w.Right() - at.X
	overlapTop := at.Y - w.Y
	overlapBottom := w.Bottom() - at.Y

	minX := overlapLeft
	if overlapRight < minX {
		minX = overlapRight
	}
	minY := overlapTop
	if overlapBottom < minY {
		minY = overlapBottom
	}

	if minX < minY {
		return Vec2{X: -vel.X, Y: vel.Y}.Angle()
	}
	return Vec2{X: vel.X, Y: -vel.Y}.Angle()
}
