package game

import "testing"

func TestArena_Layout(t *testing.T) {
	a := NewArena()
	if a.Width != 800 || a.Height != 560 {
		t.Fatalf("arena must be 800x560, got %vx%v", a.Width, a.Height)
	}

	var boundary int
	for _, w := range a.Walls() {
		if w.Boundary {
			boundary++
		}
	}
	if boundary != 4 {
		t.Fatalf("arena must have 4 boundary walls, got %d", boundary)
	}
	if got := len(a.Obstacles()); got != len(a.Walls())-4 {
		t.Fatalf("obstacles must exclude the boundary, got %d of %d",
			got, len(a.Walls()))
	}
}

func TestArena_SpawnsInsidePlayableArea(t *testing.T) {
	a := NewArena()
	if !a.Contains(a.PlayerSpawn(), playerRadius) {
		t.Fatalf("player spawn %v must sit inside the arena", a.PlayerSpawn())
	}
	if len(a.EnemySpawns()) == 0 {
		t.Fatal("arena must define enemy spawn points")
	}
	for _, sp := range a.EnemySpawns() {
		if !a.Contains(sp.Pos, enemyBaseRadius) {
			t.Fatalf("enemy spawn %q at %v must sit inside the arena", sp.Name, sp.Pos)
		}
	}
}

func TestArena_SpawnsClearOfObstacles(t *testing.T) {
	a := NewArena()
	for _, sp := range a.EnemySpawns() {
		for _, w := range a.Obstacles() {
			if CircleRectOverlap(sp.Pos, enemyBaseRadius, w) {
				t.Fatalf("enemy spawn %q overlaps an obstacle", sp.Name)
			}
		}
	}
	for _, w := range a.Obstacles() {
		if CircleRectOverlap(a.PlayerSpawn(), playerRadius, w) {
			t.Fatal("player spawn overlaps an obstacle")
		}
	}
}

func TestArena_RandomEnemySpawnIsMember(t *testing.T) {
	a := NewArena()
	rng := testRng()
	for i := 0; i < 20; i++ {
		sp := a.RandomEnemySpawn(rng)
		found := false
		for _, known := range a.EnemySpawns() {
			if known.Name == sp.Name && known.Pos == sp.Pos {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("random spawn %q is not a defined spawn point", sp.Name)
		}
	}
}

func TestWall_Geometry(t *testing.T) {
	w := Wall{X: 10, Y: 20, W: 30, H: 40}
	if w.Right() != 40 || w.Bottom() != 60 {
		t.Fatalf("edges: got right %v bottom %v", w.Right(), w.Bottom())
	}
	if w.Center() != (Vec2{X: 25, Y: 40}) {
		t.Fatalf("center: got %v", w.Center())
	}
}
