package game

import "testing"

func TestHarness_Defaults(t *testing.T) {
	ts := NewTestSim()
	if ts.DT != 1.0/60.0 {
		t.Fatalf("default dt must be 1/60, got %v", ts.DT)
	}
	if ts.Sim.Phase() != PhaseMenu {
		t.Fatalf("unstarted harness must sit in the menu, got %s", ts.Sim.Phase())
	}
}

func TestHarness_StartedOption(t *testing.T) {
	ts := NewTestSim(WithSeed(5), Started())
	if ts.Sim.Phase() != PhaseRunning {
		t.Fatalf("Started must begin the session, got %s", ts.Sim.Phase())
	}
	if len(ts.Sim.Enemies) == 0 {
		t.Fatal("Started must spawn wave 1")
	}
}

func TestHarness_RunClearsEdgeFlags(t *testing.T) {
	ts := NewTestSim(WithSeed(5), Started())
	ts.Run(10, InputState{})
	// A pause press held across Run must toggle exactly once, not every
	// tick.
	ts.Run(4, InputState{PausePressed: true})
	if ts.Sim.Phase() != PhasePaused {
		t.Fatalf("held edge flag must toggle pause once, got %s", ts.Sim.Phase())
	}
}

func TestHarness_SameSeedReplaysExactly(t *testing.T) {
	script := InputState{
		Forward:  true,
		Fire:     true,
		PointerX: 400,
		PointerY: 50,
	}

	a := NewTestSim(WithSeed(42), Started())
	b := NewTestSim(WithSeed(42), Started())
	a.Run(600, script)
	b.Run(600, script)

	if a.Sim.Snapshot() != b.Sim.Snapshot() {
		t.Fatalf("same seed must replay identically:\n%+v\n%+v",
			a.Sim.Snapshot(), b.Sim.Snapshot())
	}
	if a.Sim.Player.Pos != b.Sim.Player.Pos {
		t.Fatalf("player positions diverged: %v vs %v",
			a.Sim.Player.Pos, b.Sim.Player.Pos)
	}
	if len(a.Sim.Enemies) != len(b.Sim.Enemies) {
		t.Fatalf("enemy rosters diverged: %d vs %d",
			len(a.Sim.Enemies), len(b.Sim.Enemies))
	}
	for i := range a.Sim.Enemies {
		if a.Sim.Enemies[i].Pos != b.Sim.Enemies[i].Pos {
			t.Fatalf("enemy %d positions diverged", i)
		}
	}
}

func TestHarness_RunScripted(t *testing.T) {
	ts := NewTestSim(WithSeed(7))
	ts.RunScripted([]InputState{
		{FirePressed: true}, // leaves the menu
		{Forward: true},
		{Forward: true},
	})
	if ts.Sim.Phase() != PhaseRunning {
		t.Fatalf("scripted fire press must start the session, got %s", ts.Sim.Phase())
	}
	if ts.Sim.Tick() != 2 {
		t.Fatalf("two running ticks expected, got %d", ts.Sim.Tick())
	}
}
