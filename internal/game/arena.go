package game

import "math/rand"

// Arena dimensions in logical units. The simulation always runs in this
// coordinate space; the renderer scales it to the physical surface.
const (
	arenaWidth  = 800.0
	arenaHeight = 560.0

	boundaryThickness = 20.0
)

// Wall is an immutable axis-aligned rectangle. Boundary walls form the
// arena edge; the rest are interior obstacles.
type Wall struct {
	X, Y, W, H float64
	Boundary   bool
}

// Right returns the x coordinate of the right edge.
func (w Wall) Right() float64 { return w.X + w.W }

// Bottom returns the y coordinate of the bottom edge.
func (w Wall) Bottom() float64 { return w.Y + w.H }

// Center returns the wall's midpoint.
func (w Wall) Center() Vec2 {
	return Vec2{X: w.X + w.W/2, Y: w.Y + w.H/2}
}

// SpawnPoint is a named position enemies can appear at.
type SpawnPoint struct {
	Name string
	Pos  Vec2
}

// Arena is the static battlefield: boundary walls, a fixed obstacle
// layout and spawn points. Built once per session, immutable after.
type Arena struct {
	Width  float64
	Height float64

	walls       []Wall
	playerSpawn Vec2
	enemySpawns []SpawnPoint
}

// NewArena builds the standard 800x560 arena.
func NewArena() *Arena {
	a := &Arena{
		Width:  arenaWidth,
		Height: arenaHeight,
	}

	t := boundaryThickness
	a.walls = []Wall{
		// Boundary walls close the rectangle; they extend outward so a
		// projectile cannot slip through a corner seam.
		{X: -t, Y: -t, W: arenaWidth + 2*t, H: t, Boundary: true},
		{X: -t, Y: arenaHeight, W: arenaWidth + 2*t, H: t, Boundary: true},
		{X: -t, Y: 0, W: t, H: arenaHeight, Boundary: true},
		{X: arenaWidth, Y: 0, W: t, H: arenaHeight, Boundary: true},

		// Interior obstacles: a central block, four corner pillars and
		// two lateral bars. Symmetric so neither side has a cover bias.
		{X: 360, Y: 240, W: 80, H: 80},
		{X: 120, Y: 100, W: 70, H: 40},
		{X: 610, Y: 100, W: 70, H: 40},
		{X: 120, Y: 420, W: 70, H: 40},
		{X: 610, Y: 420, W: 70, H: 40},
		{X: 250, Y: 60, W: 40, H: 110},
		{X: 510, Y: 390, W: 40, H: 110},
	}

	a.playerSpawn = Vec2{X: arenaWidth / 2, Y: arenaHeight - 70}
	a.enemySpawns = []SpawnPoint{
		{Name: "north", Pos: Vec2{X: arenaWidth / 2, Y: 50}},
		{Name: "north-west", Pos: Vec2{X: 60, Y: 50}},
		{Name: "north-east", Pos: Vec2{X: arenaWidth - 60, Y: 50}},
		{Name: "west", Pos: Vec2{X: 50, Y: arenaHeight / 2}},
		{Name: "east", Pos: Vec2{X: arenaWidth - 50, Y: arenaHeight / 2}},
	}
	return a
}

// Walls returns every wall, boundary and interior alike.
func (a *Arena) Walls() []Wall { return a.walls }

// Obstacles returns only the interior walls. Fleeing bystanders bounce
// off these; the boundary is handled by their despawn margin instead.
func (a *Arena) Obstacles() []Wall {
	var out []Wall
	for _, w := range a.walls {
		if !w.Boundary {
			out = append(out, w)
		}
	}
	return out
}

// PlayerSpawn returns the fixed player start position.
func (a *Arena) PlayerSpawn() Vec2 { return a.playerSpawn }

// EnemySpawns returns all named enemy spawn points.
func (a *Arena) EnemySpawns() []SpawnPoint { return a.enemySpawns }

// RandomEnemySpawn picks one enemy spawn point using the supplied rng.
func (a *Arena) RandomEnemySpawn(rng *rand.Rand) SpawnPoint {
	return a.enemySpawns[rng.Intn(len(a.enemySpawns))]
}

// Contains reports whether p lies inside the playable rectangle shrunk
// by margin on every side.
func (a *Arena) Contains(p Vec2, margin float64) bool {
	return p.X >= margin && p.X <= a.Width-margin &&
		p.Y >= margin && p.Y <= a.Height-margin
}
