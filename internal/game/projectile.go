package game

// Projectile tuning.
const (
	projectileSpeed  = 480.0 // units per second
	projectileRadius = 4.0
	trailLength      = 6 // retained positions, rendering only
)

// Projectile is a straight-line shell. Velocity is fixed at spawn from
// the firer's aim angle; the shell dies on its first collision or on
// leaving the arena.
type Projectile struct {
	Pos      Vec2
	Vel      Vec2
	Damage   float64
	Radius   float64
	Friendly bool // true when fired by the player
	Active   bool

	// Recent positions for the trail. No gameplay effect.
	trail []Vec2
}

// NewProjectile spawns a shell at pos travelling along angle.
func NewProjectile(pos Vec2, angle float64, damage float64, friendly bool) *Projectile {
	return &Projectile{
		Pos:      pos,
		Vel:      FromAngle(angle).Scale(projectileSpeed),
		Damage:   damage,
		Radius:   projectileRadius,
		Friendly: friendly,
		Active:   true,
	}
}

// Update advances the shell and records the trail.
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	p.trail = append(p.trail, p.Pos)
	if len(p.trail) > trailLength {
		p.trail = p.trail[1:]
	}
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// OutOfBounds reports whether the shell has fully left the arena. The
// shell's own radius is the margin, so a shell at x = -5 with radius 4
// is out while one at x = -3 is not.
func (p *Projectile) OutOfBounds(arena *Arena) bool {
	return p.Pos.X < -p.Radius || p.Pos.X > arena.Width+p.Radius ||
		p.Pos.Y < -p.Radius || p.Pos.Y > arena.Height+p.Radius
}

// Trail returns the retained positions, oldest first.
func (p *Projectile) Trail() []Vec2 {
	return p.trail
}
