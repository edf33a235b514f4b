package game

import "math/rand"

// Wave escalation tuning.
const (
	enemiesPerWave   = 3 // wave 1 size; +2 per wave after
	maxWaves         = 5
	waveDamageBonus  = 5.0 // player damage increment per cleared wave
	waveBannerTime   = 2.5 // seconds the wave announcement stays up
	difficultyPerWav = 0.3

	bossBaseChance   = 0.15 // slot 0, wave 3
	bossChanceGrowth = 0.10 // per wave past 3
	heavyChance      = 0.20 // from wave 2
	fastChance       = 0.25
)

// WaveEnemyCount returns the number of enemies in the given wave.
func WaveEnemyCount(wave int) int {
	return enemiesPerWave + 2*(wave-1)
}

// WaveDifficulty returns the stat scalar applied to a wave's enemies.
func WaveDifficulty(wave int) float64 {
	return 1.0 + difficultyPerWav*float64(wave-1)
}

// RollEnemyClass picks the class for one wave slot. Only slot 0 can
// roll a boss, so a wave carries at most one; the boss chance opens at
// wave 3 and grows each wave after.
func RollEnemyClass(wave, slot int, rng *rand.Rand) EnemyClass {
	if slot == 0 && wave >= 3 {
		chance := bossBaseChance + bossChanceGrowth*float64(wave-3)
		if rng.Float64() < chance {
			return ClassBoss
		}
	}
	if wave >= 2 && rng.Float64() < heavyChance {
		return ClassHeavy
	}
	if rng.Float64() < fastChance {
		return ClassFast
	}
	return ClassStandard
}

// patrolRouteFor builds a small random patrol route, rejecting points
// that land inside a wall.
func patrolRouteFor(arena *Arena, rng *rand.Rand) []Vec2 {
	const margin = 60.0
	n := 3 + rng.Intn(2)
	route := make([]Vec2, 0, n)
	for len(route) < n {
		p := Vec2{
			X: margin + rng.Float64()*(arena.Width-2*margin),
			Y: margin + rng.Float64()*(arena.Height-2*margin),
		}
		blocked := false
		for _, w := range arena.Walls() {
			if CircleRectOverlap(p, enemyBaseRadius*2, w) {
				blocked = true
				break
			}
		}
		if !blocked {
			route = append(route, p)
		}
	}
	return route
}
