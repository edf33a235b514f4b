package game

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const soundSampleRate = beep.SampleRate(44100)

// SoundManager plays short procedurally generated effects through a
// shared mixer. Losing the output device is not an error: the manager
// simply stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	fireBuf      [][2]float64
	hitBuf       [][2]float64
	explosionBuf [][2]float64
}

// NewSoundManager creates the manager and pre-renders every effect.
func NewSoundManager() *SoundManager {
	sm := &SoundManager{mixer: &beep.Mixer{}}
	sm.fireBuf = renderFire()
	sm.hitBuf = renderHit()
	sm.explosionBuf = renderExplosion()
	return sm
}

// Initialize opens the speaker and attaches the mixer. Returns the
// speaker error; callers may ignore it to run silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup detaches every live streamer.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

func (sm *SoundManager) play(buf [][2]float64) {
	sm.mu.Lock()
	initialized := sm.initialized
	sm.mu.Unlock()
	if !initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(&sampleStreamer{samples: buf})
	speaker.Unlock()
}

// PlayFire plays the shot blip.
func (sm *SoundManager) PlayFire() { sm.play(sm.fireBuf) }

// PlayHit plays the impact tick.
func (sm *SoundManager) PlayHit() { sm.play(sm.hitBuf) }

// PlayExplosion plays the destruction rumble.
func (sm *SoundManager) PlayExplosion() { sm.play(sm.explosionBuf) }

// sampleStreamer streams a pre-rendered buffer once.
type sampleStreamer struct {
	samples [][2]float64
	pos     int
}

func (s *sampleStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}
	n := copy(out, s.samples[s.pos:])
	s.pos += n
	return n, true
}

func (s *sampleStreamer) Err() error { return nil }

// renderFire synthesizes a short downward frequency sweep.
func renderFire() [][2]float64 {
	const dur = 0.09
	n := int(float64(soundSampleRate) * dur)
	buf := make([][2]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(soundSampleRate)
		progress := t / dur
		freq := 320.0 - 200.0*progress
		env := (1 - progress) * 0.25
		v := math.Sin(2*math.Pi*freq*t) * env
		buf[i] = [2]float64{v, v}
	}
	return buf
}

// renderHit synthesizes a brief noise tick.
func renderHit() [][2]float64 {
	const dur = 0.05
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- deterministic waveform
	n := int(float64(soundSampleRate) * dur)
	buf := make([][2]float64, n)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		env := (1 - progress) * 0.2
		v := (rng.Float64()*2 - 1) * env
		buf[i] = [2]float64{v, v}
	}
	return buf
}

// renderExplosion synthesizes a low-pass filtered noise rumble.
func renderExplosion() [][2]float64 {
	const dur = 0.45
	rng := rand.New(rand.NewSource(2)) // #nosec G404 -- deterministic waveform
	n := int(float64(soundSampleRate) * dur)
	buf := make([][2]float64, n)
	prev := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		env := math.Pow(1-progress, 1.6) * 0.4
		// One-pole low pass over white noise keeps the rumble deep.
		prev = prev*0.92 + (rng.Float64()*2-1)*0.08
		v := prev * env * 8
		buf[i] = [2]float64{v, v}
	}
	return buf
}
