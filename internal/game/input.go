package game

import "github.com/hajimehoshi/ebiten/v2"

// InputState is the polled snapshot the simulation consumes each tick.
// FirePressed and PausePressed are edge flags: true only on the tick
// the key or button went down, regardless of how long it is held.
type InputState struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	Fire        bool
	Pause       bool

	PointerX    float64 // logical arena coordinates
	PointerY    float64
	PointerDown bool

	FirePressed  bool
	PausePressed bool
}

// InputSource supplies one InputState per tick. The simulation pulls a
// snapshot instead of reacting to event callbacks, so tests can script
// input deterministically.
type InputSource interface {
	Poll() InputState
}

// keyboardMouse polls ebiten's keyboard and mouse. Pointer coordinates
// arrive in surface pixels; the owner converts them to arena units via
// the view scale before handing the snapshot to the simulation.
type keyboardMouse struct {
	prevFire  bool
	prevPause bool
}

// NewKeyboardMouseInput returns the standard WASD + mouse input source.
func NewKeyboardMouseInput() InputSource {
	return &keyboardMouse{}
}

func (k *keyboardMouse) Poll() InputState {
	mx, my := ebiten.CursorPosition()
	fire := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)
	pause := ebiten.IsKeyPressed(ebiten.KeyP) || ebiten.IsKeyPressed(ebiten.KeyEscape)

	st := InputState{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:        fire,
		Pause:       pause,
		PointerX:    float64(mx),
		PointerY:    float64(my),
		PointerDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),

		FirePressed:  fire && !k.prevFire,
		PausePressed: pause && !k.prevPause,
	}
	k.prevFire = fire
	k.prevPause = pause
	return st
}

// ScriptedInput replays a fixed sequence of snapshots, then repeats the
// last one. Used by tests and the headless runner.
type ScriptedInput struct {
	States []InputState
	idx    int
}

func (s *ScriptedInput) Poll() InputState {
	if len(s.States) == 0 {
		return InputState{}
	}
	st := s.States[s.idx]
	if s.idx < len(s.States)-1 {
		s.idx++
	}
	return st
}
