package game

import "math/rand"

// TestSim is a headless harness around Sim used by tests and the
// headless-report binary. It has no ebiten dependency and supports
// deterministic seeding, so runs replay exactly.
type TestSim struct {
	Sim *Sim
	DT  float64
}

// SimOption configures a TestSim during construction.
type SimOption func(*TestSim)

// WithSeed sets the rng seed for a deterministic run.
func WithSeed(seed int64) SimOption {
	return func(ts *TestSim) {
		ts.Sim = NewSim(rand.New(rand.NewSource(seed))) // #nosec G404 -- deterministic test runs
	}
}

// WithDT overrides the fixed per-tick delta (default 1/60 s).
func WithDT(dt float64) SimOption {
	return func(ts *TestSim) { ts.DT = dt }
}

// Started begins the session immediately, spawning wave 1.
func Started() SimOption {
	return func(ts *TestSim) { ts.Sim.Start() }
}

// NewTestSim builds a harness. Options apply in order; WithSeed should
// come first when combined with Started.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Sim: NewSim(rand.New(rand.NewSource(1))), // #nosec G404 -- deterministic test runs
		DT:  1.0 / 60.0,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Run steps the simulation n ticks with the same input snapshot.
func (ts *TestSim) Run(n int, in InputState) {
	for i := 0; i < n; i++ {
		ts.Sim.Step(ts.DT, in)
		// Edge flags only fire once.
		in.FirePressed = false
		in.PausePressed = false
	}
}

// RunScripted steps the simulation once per scripted snapshot.
func (ts *TestSim) RunScripted(states []InputState) {
	for _, in := range states {
		ts.Sim.Step(ts.DT, in)
	}
}
