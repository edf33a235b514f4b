package game

import "math"

// Player tuning.
const (
	playerMaxHealth  = 100.0
	playerSpeed      = 180.0 // units per second
	playerFireRate   = 4.0   // shots per second
	playerBaseDamage = 25.0
	playerRadius     = 14.0

	// Visibility cone drawn around the turret. Presentation only; the
	// player has no vision model.
	playerViewConeHalf = 0.45 // radians
	playerViewConeLen  = 140.0
)

// Player is the human-controlled tank: the shared Unit plus a
// continuously updated aim point.
type Player struct {
	Unit
	Aim Vec2
}

// NewPlayer creates the player at the given spawn position.
func NewPlayer(pos Vec2) *Player {
	return &Player{
		Unit: Unit{
			Pos:       pos,
			BodyAngle: -math.Pi / 2, // face up the arena
			Health:    playerMaxHealth,
			MaxHealth: playerMaxHealth,
			Speed:     playerSpeed,
			FireRate:  playerFireRate,
			Damage:    playerBaseDamage,
			Radius:    playerRadius,
			Alive:     true,
		},
	}
}

// Update rebuilds velocity from the directional flags, moves, and points
// the turret at the aim point. The velocity is rebuilt from scratch each
// tick; holding two keys diagonally is rescaled down to exactly nominal
// speed so diagonals grant no speed bonus.
func (p *Player) Update(dt float64, in InputState) {
	if !p.Alive {
		return
	}

	p.Vel = Vec2{}
	if in.Forward {
		p.Vel.Y -= p.Speed
	}
	if in.Backward {
		p.Vel.Y += p.Speed
	}
	if in.StrafeLeft {
		p.Vel.X -= p.Speed
	}
	if in.StrafeRight {
		p.Vel.X += p.Speed
	}
	if l := p.Vel.Len(); l > p.Speed {
		p.Vel = p.Vel.Scale(p.Speed / l)
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	// Hull follows the movement direction, only while moving.
	if p.Vel.LenSq() > 0 {
		p.BodyAngle = p.Vel.Angle()
	}

	// Turret tracking is instantaneous: no smoothing on the player.
	p.Aim = Vec2{X: in.PointerX, Y: in.PointerY}
	p.TurretAngle = AngleBetween(p.Pos, p.Aim)

	p.TickCooldown(dt)
}
