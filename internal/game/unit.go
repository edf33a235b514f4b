package game

// Unit holds the physical and combat attributes shared by the player
// and every AI tank. Behaviour lives in the Player/Enemy wrappers; a
// Unit is only mutated through its own methods or by its owner inside
// the orchestrator tick.
type Unit struct {
	Pos         Vec2
	Vel         Vec2
	BodyAngle   float64 // hull facing, radians
	TurretAngle float64 // turret facing, radians

	Health    float64
	MaxHealth float64
	Speed     float64 // nominal units per second
	FireRate  float64 // shots per second
	Cooldown  float64 // seconds until the next shot is allowed
	Damage    float64 // damage per projectile
	Radius    float64
	Alive     bool
}

// TakeDamage reduces health, clamping into [0, MaxHealth], and returns
// true only on the call that transitions the unit from alive to dead.
// Further damage on a dead unit clamps harmlessly and returns false.
func (u *Unit) TakeDamage(amount float64) bool {
	if !u.Alive {
		return false
	}
	u.Health -= amount
	if u.Health <= 0 {
		u.Health = 0
		u.Alive = false
		return true
	}
	return false
}

// Heal restores health up to MaxHealth. Dead units stay dead.
func (u *Unit) Heal(amount float64) {
	if !u.Alive {
		return
	}
	u.Health += amount
	if u.Health > u.MaxHealth {
		u.Health = u.MaxHealth
	}
}

// CanFire reports whether the fire cooldown has elapsed.
func (u *Unit) CanFire() bool {
	return u.Cooldown <= 0
}

// ResetFireCooldown restarts the cooldown at 1/FireRate plus jitter.
// AI units pass a small random jitter so a wave never fires in
// synchronized volleys; the player passes 0.
func (u *Unit) ResetFireCooldown(jitter float64) {
	u.Cooldown = 1.0/u.FireRate + jitter
}

// TickCooldown counts the fire cooldown down, clamped at zero.
func (u *Unit) TickCooldown(dt float64) {
	if u.Cooldown > 0 {
		u.Cooldown -= dt
		if u.Cooldown < 0 {
			u.Cooldown = 0
		}
	}
}

// Muzzle returns the point projectiles spawn from: the turret tip.
func (u *Unit) Muzzle() Vec2 {
	return u.Pos.Add(FromAngle(u.TurretAngle).Scale(u.Radius + 6))
}
