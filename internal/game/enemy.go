package game

import (
	"image/color"
	"math"
	"math/rand"
)

// Base enemy tuning. Class presets and wave difficulty multiply these.
const (
	enemyBaseHealth   = 50.0
	enemyBaseSpeed    = 90.0 // units per second
	enemyBaseFireRate = 1.0  // shots per second
	enemyBaseDamage   = 10.0
	enemyBaseRadius   = 14.0

	enemyDetectRange = 300.0
	enemyAttackRange = 350.0
	enemyLoseRange   = 450.0

	// Alert model: being hit stamps an 8s memory of the shooter's
	// position and propagates it to allies within 200 units.
	alertDuration    = 8.0
	alertRadius      = 200.0
	alertCloseEnough = 30.0 // at the alerted position, start searching
	alertSearchTime  = 2.0  // seconds of searching before giving up

	patrolSpeedMul    = 0.6
	patrolArriveDist  = 20.0
	patrolWaitTime    = 1.5
	alertChaseMul     = 1.3
	retreatHealthFrac = 0.3

	// Per-tick Bernoulli fire chance while in attack state. Tick-rate
	// dependent; kept as-is.
	fireChanceAlerted = 0.7
	fireChanceCalm    = 0.5

	fireJitterMax = 0.2 // seconds added to the cooldown, breaks volleys

	turretSlewRate = 3.0 // radians per second
	bodySlewRate   = 4.0 // radians per second
	bodySlewMinVel = 1.0 // below this speed the hull does not turn
)

// EnemyState is the AI behaviour state.
type EnemyState int

const (
	StatePatrol EnemyState = iota
	StateChase
	StateAttack
	StateRetreat
)

func (s EnemyState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateRetreat:
		return "retreat"
	default:
		return "unknown"
	}
}

// EnemyClass selects a stat multiplier preset. Classes never change
// behaviour logic, only numbers and colours.
type EnemyClass int

const (
	ClassStandard EnemyClass = iota
	ClassFast
	ClassHeavy
	ClassBoss

	classCount
)

func (c EnemyClass) String() string {
	switch c {
	case ClassStandard:
		return "standard"
	case ClassFast:
		return "fast"
	case ClassHeavy:
		return "heavy"
	case ClassBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// classPreset is a pure multiplier table over the base stats plus
// cosmetic colours and a kill score.
type classPreset struct {
	healthMul   float64
	speedMul    float64
	fireRateMul float64
	sizeMul     float64
	damageMul   float64
	muzzleScale float64 // scales the muzzle flash burst
	score       int
	body        color.RGBA
	turret      color.RGBA
}

var classTable = [classCount]classPreset{
	ClassStandard: {
		healthMul: 1.0, speedMul: 1.0, fireRateMul: 1.0, sizeMul: 1.0,
		damageMul: 1.0, muzzleScale: 1.0, score: 100,
		body:   color.RGBA{R: 170, G: 60, B: 50, A: 255},
		turret: color.RGBA{R: 210, G: 90, B: 70, A: 255},
	},
	ClassFast: {
		healthMul: 0.7, speedMul: 1.8, fireRateMul: 1.2, sizeMul: 0.85,
		damageMul: 0.8, muzzleScale: 1.0, score: 150,
		body:   color.RGBA{R: 200, G: 140, B: 40, A: 255},
		turret: color.RGBA{R: 230, G: 180, B: 70, A: 255},
	},
	ClassHeavy: {
		healthMul: 2.2, speedMul: 0.6, fireRateMul: 0.8, sizeMul: 1.3,
		damageMul: 1.5, muzzleScale: 1.5, score: 250,
		body:   color.RGBA{R: 110, G: 60, B: 110, A: 255},
		turret: color.RGBA{R: 150, G: 90, B: 150, A: 255},
	},
	ClassBoss: {
		healthMul: 6.0, speedMul: 0.5, fireRateMul: 1.5, sizeMul: 1.8,
		damageMul: 2.0, muzzleScale: 2.0, score: 1000,
		body:   color.RGBA{R: 80, G: 20, B: 30, A: 255},
		turret: color.RGBA{R: 140, G: 30, B: 40, A: 255},
	},
}

// Enemy is an AI-controlled tank: the shared Unit plus a finite state
// machine, patrol route and alert memory.
type Enemy struct {
	Unit
	Class EnemyClass
	State EnemyState

	waypoints   []Vec2
	waypointIdx int
	waitTimer   float64 // seconds left standing at a waypoint

	DetectRange float64
	AttackRange float64
	LoseRange   float64

	hasTarget bool
	targetPos Vec2 // player position, refreshed while visible

	alertPos    Vec2
	alertTimer  float64 // countdown; > 0 means the alert is active
	searchTimer float64 // time spent searching at the alerted position

	MuzzleScale float64
	ScoreValue  int
}

// NewEnemy creates an enemy of the given class at pos. difficulty
// scales health and damage; waypoints define the patrol route.
func NewEnemy(pos Vec2, class EnemyClass, difficulty float64, waypoints []Vec2) *Enemy {
	p := classTable[class]
	e := &Enemy{
		Unit: Unit{
			Pos:       pos,
			Health:    enemyBaseHealth * p.healthMul * difficulty,
			MaxHealth: enemyBaseHealth * p.healthMul * difficulty,
			Speed:     enemyBaseSpeed * p.speedMul,
			FireRate:  enemyBaseFireRate * p.fireRateMul,
			Damage:    enemyBaseDamage * p.damageMul * difficulty,
			Radius:    enemyBaseRadius * p.sizeMul,
			Alive:     true,
		},
		Class:       class,
		State:       StatePatrol,
		waypoints:   waypoints,
		DetectRange: enemyDetectRange,
		AttackRange: enemyAttackRange,
		LoseRange:   enemyLoseRange,
		MuzzleScale: p.muzzleScale,
		ScoreValue:  p.score,
	}
	if len(waypoints) > 0 {
		e.BodyAngle = AngleBetween(pos, waypoints[0])
		e.TurretAngle = e.BodyAngle
	}
	return e
}

// Preset returns the cosmetic preset for the enemy's class.
func (e *Enemy) Preset() classPreset {
	return classTable[e.Class]
}

// Alerted reports whether the alert memory is still counting down.
func (e *Enemy) Alerted() bool {
	return e.alertTimer > 0
}

// AlertCountdown returns the seconds left on the alert memory.
func (e *Enemy) AlertCountdown() float64 {
	return e.alertTimer
}

// AlertToPosition is the asynchronous hit interrupt: it unconditionally
// overwrites the alert memory and forces the state to chase, whatever
// the unit was doing.
func (e *Enemy) AlertToPosition(pos Vec2) {
	if !e.Alive {
		return
	}
	e.alertPos = pos
	e.alertTimer = alertDuration
	e.searchTimer = 0
	e.State = StateChase
}

// effectiveTarget returns the position the enemy acts against: the
// direct target if one exists, otherwise the alerted position.
func (e *Enemy) effectiveTarget() (Vec2, bool) {
	if e.hasTarget {
		return e.targetPos, true
	}
	if e.alertTimer > 0 {
		return e.alertPos, true
	}
	return Vec2{}, false
}

// Update runs one tick of the state machine: senses the player,
// transitions state, moves, and decides whether to fire. It returns
// true when the enemy fires this tick; the orchestrator spawns the
// projectile.
func (e *Enemy) Update(dt float64, player *Player, walls []Wall, rng *rand.Rand) bool {
	if !e.Alive {
		return false
	}

	e.TickCooldown(dt)
	if e.alertTimer > 0 {
		e.alertTimer -= dt
		if e.alertTimer < 0 {
			e.alertTimer = 0
		}
	}

	e.sense(player, walls)
	e.transition(player, dt)

	fired := false
	switch e.State {
	case StatePatrol:
		e.patrol(dt)
	case StateChase:
		e.chase(dt)
	case StateAttack:
		fired = e.attack(dt, rng)
	case StateRetreat:
		e.retreat(dt)
	}

	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	// Hull turns toward the velocity at a capped rate, skipped while
	// effectively stationary.
	if e.Vel.Len() > bodySlewMinVel {
		e.BodyAngle = slewAngle(e.BodyAngle, e.Vel.Angle(), bodySlewRate*dt)
	}

	return fired
}

// sense refreshes the direct-target record from the player's position.
// A target is acquired within detection range with clear line of sight,
// and kept while visible up to lose range.
func (e *Enemy) sense(player *Player, walls []Wall) {
	if !player.Alive {
		e.hasTarget = false
		return
	}
	d := e.Pos.Dist(player.Pos)
	maxRange := e.DetectRange
	if e.hasTarget {
		maxRange = e.LoseRange
	}
	if d <= maxRange && HasLineOfSight(e.Pos, player.Pos, walls) {
		e.hasTarget = true
		e.targetPos = player.Pos
	} else {
		e.hasTarget = false
	}
}

// transition evaluates the state table once per tick, in priority
// order: direct target, then active alert, then patrol.
func (e *Enemy) transition(player *Player, dt float64) {
	// Retreat holds until the unit breaks contact; the retreat step
	// itself reverts to patrol past lose range.
	if e.State == StateRetreat {
		return
	}

	if e.hasTarget {
		d := e.Pos.Dist(e.targetPos)
		switch {
		case d <= e.AttackRange:
			e.State = StateAttack
		case d <= e.DetectRange:
			e.State = StateChase
		case d > e.LoseRange:
			e.hasTarget = false
			e.State = StatePatrol
		default:
			// Between detection and lose range: keep pursuing.
			e.State = StateChase
		}
		return
	}

	if e.alertTimer > 0 {
		if e.Pos.Dist(e.alertPos) > alertCloseEnough {
			e.State = StateChase
			return
		}
		// At the alerted position with nothing in sight: search in
		// place for a short while, then give up.
		e.searchTimer += dt
		if e.searchTimer >= alertSearchTime {
			e.alertTimer = 0
			e.searchTimer = 0
			e.State = StatePatrol
			return
		}
		e.State = StatePatrol
		return
	}

	e.State = StatePatrol
}

// patrol advances toward the current waypoint at reduced speed, halts
// briefly on arrival, then moves to the next waypoint, wrapping.
func (e *Enemy) patrol(dt float64) {
	e.Vel = Vec2{}
	if len(e.waypoints) == 0 {
		return
	}

	if e.waitTimer > 0 {
		e.waitTimer -= dt
		return
	}

	wp := e.waypoints[e.waypointIdx]
	if e.Pos.Dist(wp) < patrolArriveDist {
		e.waitTimer = patrolWaitTime
		e.waypointIdx = (e.waypointIdx + 1) % len(e.waypoints)
		return
	}

	dir := wp.Sub(e.Pos).Normalized()
	e.Vel = dir.Scale(e.Speed * patrolSpeedMul)
	e.TurretAngle = slewAngle(e.TurretAngle, dir.Angle(), turretSlewRate*dt)
}

// chase moves directly toward the effective target, faster while
// alerted, aiming continuously.
func (e *Enemy) chase(dt float64) {
	target, ok := e.effectiveTarget()
	if !ok {
		e.Vel = Vec2{}
		return
	}
	speed := e.Speed
	if e.alertTimer > 0 {
		speed = e.Speed * alertChaseMul
	}
	dir := target.Sub(e.Pos).Normalized()
	e.Vel = dir.Scale(speed)
	e.aimAt(target, dt)
}

// attack halts, aims, and fires on a per-tick chance once the cooldown
// allows it. Dropping under the retreat threshold flips to retreat.
func (e *Enemy) attack(dt float64, rng *rand.Rand) bool {
	e.Vel = Vec2{}

	target, ok := e.effectiveTarget()
	if !ok {
		return false
	}
	e.aimAt(target, dt)

	if e.Health < e.MaxHealth*retreatHealthFrac {
		e.State = StateRetreat
		return false
	}

	if !e.CanFire() {
		return false
	}
	chance := fireChanceCalm
	if e.alertTimer > 0 {
		chance = fireChanceAlerted
	}
	if rng.Float64() < chance {
		e.ResetFireCooldown(rng.Float64() * fireJitterMax)
		return true
	}
	return false
}

// retreat backs directly away from the effective target while keeping
// the turret on it, and reverts to patrol once contact is broken.
func (e *Enemy) retreat(dt float64) {
	target, ok := e.effectiveTarget()
	if !ok {
		e.State = StatePatrol
		e.Vel = Vec2{}
		return
	}

	if e.Pos.Dist(target) > e.LoseRange {
		e.hasTarget = false
		e.alertTimer = 0
		e.searchTimer = 0
		e.State = StatePatrol
		e.Vel = Vec2{}
		return
	}

	dir := e.Pos.Sub(target).Normalized()
	e.Vel = dir.Scale(e.Speed)
	e.aimAt(target, dt)
}

// aimAt slews the turret toward the target at the capped rate.
func (e *Enemy) aimAt(target Vec2, dt float64) {
	e.TurretAngle = slewAngle(e.TurretAngle, AngleBetween(e.Pos, target), turretSlewRate*dt)
}

// slewAngle rotates current toward target by at most maxStep radians.
// The angular error is normalized into (-pi, pi] first so the turret
// always takes the short way round.
func slewAngle(current, target, maxStep float64) float64 {
	diff := NormalizeAngle(target - current)
	if math.Abs(diff) <= maxStep {
		return target
	}
	if diff > 0 {
		return current + maxStep
	}
	return current - maxStep
}
