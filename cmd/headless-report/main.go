package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/Garsondee/Arena-Strike/internal/game"
)

// runStats summarizes one headless session.
type runStats struct {
	runIndex int
	seed     int64

	ticks      int
	finalWave  int
	score      int
	kills      int
	victory    bool
	shotsFired int
	hitsTaken  int
}

func main() {
	var runs int
	var maxTicks int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&maxTicks, "ticks", 18000, "tick cap per session (60/s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxTicks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, maxTicks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(i+1, seed, maxTicks)
		all = append(all, stats)
		printRun(stats)
	}

	printSummary(all)
}

// runSession plays one full session with the built-in autopilot.
func runSession(runIndex int, seed int64, maxTicks int) runStats {
	ts := game.NewTestSim(game.WithSeed(seed), game.Started())
	pilotRng := rand.New(rand.NewSource(seed + 1000)) // #nosec G404 -- deterministic autopilot

	stats := runStats{runIndex: runIndex, seed: seed}
	for tick := 0; tick < maxTicks; tick++ {
		in := autopilot(ts.Sim, pilotRng)
		ts.Sim.Step(ts.DT, in)

		ev := ts.Sim.Events()
		stats.shotsFired += ev.ShotsFired
		stats.hitsTaken += ev.Hits

		if ts.Sim.Phase() == game.PhaseOver {
			break
		}
	}

	snap := ts.Sim.Snapshot()
	stats.ticks = ts.Sim.Tick()
	stats.finalWave = snap.Wave
	stats.score = snap.Score
	stats.kills = snap.EnemiesKilled
	stats.victory = snap.Victory
	return stats
}

// autopilot is a crude stand-in player: it aims at the nearest enemy,
// holds fire, and jinks sideways at random so sessions are not over in
// seconds.
func autopilot(s *game.Sim, rng *rand.Rand) game.InputState {
	in := game.InputState{Fire: true}

	var nearest *game.Enemy
	best := 1e18
	for _, e := range s.Enemies {
		d := s.Player.Pos.DistSq(e.Pos)
		if d < best {
			best = d
			nearest = e
		}
	}
	if nearest != nil {
		in.PointerX = nearest.Pos.X
		in.PointerY = nearest.Pos.Y
	} else {
		in.PointerX = s.Player.Pos.X
		in.PointerY = s.Player.Pos.Y - 100
	}

	switch rng.Intn(5) {
	case 0:
		in.StrafeLeft = true
	case 1:
		in.StrafeRight = true
	case 2:
		in.Forward = true
	case 3:
		in.Backward = true
	}
	return in
}

func printRun(rs runStats) {
	outcome := "defeat"
	if rs.victory {
		outcome = "victory"
	}
	fmt.Printf("run %d seed=%d: %s after %d ticks, wave=%d score=%d kills=%d shots=%d hits=%d\n",
		rs.runIndex, rs.seed, outcome, rs.ticks, rs.finalWave, rs.score, rs.kills,
		rs.shotsFired, rs.hitsTaken)
}

// summarize aggregates the per-run stats.
func summarize(all []runStats) (victories int, avgWave, avgScore, avgKills float64) {
	if len(all) == 0 {
		return 0, 0, 0, 0
	}
	var waves, scores, kills int
	for _, rs := range all {
		if rs.victory {
			victories++
		}
		waves += rs.finalWave
		scores += rs.score
		kills += rs.kills
	}
	n := float64(len(all))
	return victories, float64(waves) / n, float64(scores) / n, float64(kills) / n
}

func printSummary(all []runStats) {
	victories, avgWave, avgScore, avgKills := summarize(all)
	fmt.Printf("\n=== Summary ===\n")
	fmt.Printf("victories: %d/%d\n", victories, len(all))
	fmt.Printf("avg wave reached: %.1f  avg score: %.0f  avg kills: %.1f\n",
		avgWave, avgScore, avgKills)
}
