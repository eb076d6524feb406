package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/engine"
	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/system"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays the engine hum and explosion sounds
// It observes the explosion machine and consumes frames to track speed
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	engine      *EngineGenerator
	engineCtrl  *beep.Ctrl
	maxSpeed    float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(maxSpeed float64) *SoundManager {
	return &SoundManager{
		mixer:    &beep.Mixer{},
		engine:   NewEngineGenerator(sampleRate, parameter.EngineBaseFrequency),
		maxSpeed: maxSpeed,
	}
}

// Initialize sets up the audio system and starts the engine hum
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	sm.engineCtrl = &beep.Ctrl{Streamer: sm.engine, Paused: sm.muted}
	sm.mixer.Add(sm.engineCtrl)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.engineCtrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.engineCtrl.Paused = sm.muted
		speaker.Unlock()
	}
	log.Debug().Bool("muted", sm.muted).Msg("audio mute toggled")
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayExplosion plays one rumble
func (sm *SoundManager) PlayExplosion() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	seed := time.Now().UnixNano()
	streamer := beep.Take(rumbleSamples(sampleRate, parameter.ExplosionSoundDuration), NewRumbleGenerator(sampleRate, seed))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnExplode implements system.ExplosionObserver
func (sm *SoundManager) OnExplode(at core.Pose) {
	sm.PlayExplosion()
}

// OnRespawn implements system.ExplosionObserver
func (sm *SoundManager) OnRespawn(at core.Pose) {}

// Draw implements engine.FrameSink by retuning the hum to the current speed
func (sm *SoundManager) Draw(f engine.Frame) {
	ratio := 0.0
	if sm.maxSpeed > 0 {
		ratio = f.Speed / sm.maxSpeed
	}
	sm.engine.Frequency.Set(engineFrequency(ratio, parameter.EngineBaseFrequency, parameter.EngineFrequencySpan))

	// Hum drops out while the player is hidden
	if f.PlayerVisible {
		sm.engine.Volume.Set(0.08)
	} else {
		sm.engine.Volume.Set(0)
	}
}

var (
	_ system.ExplosionObserver = (*SoundManager)(nil)
	_ engine.FrameSink         = (*SoundManager)(nil)
)
