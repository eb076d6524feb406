package system

import (
	"github.com/lixenwraith/flanker/core"
)

// Phase is the explosion state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseExploding
)

// String names the phase for logs and telemetry
func (p Phase) String() string {
	if p == PhaseExploding {
		return "exploding"
	}
	return "idle"
}

// ExplosionObserver receives entry and exit notifications
type ExplosionObserver interface {
	OnExplode(at core.Pose)
	OnRespawn(at core.Pose)
}

// ExplosionConfig sets the growth curve and the respawn state
type ExplosionConfig struct {
	GrowthRate float64 // scale per second
	MaxScale   float64
	Respawn    core.FlightState
}

// Explosion is the Idle/Exploding machine; a single instance means one explosion at a time
type Explosion struct {
	cfg       ExplosionConfig
	phase     Phase
	scale     float64
	effect    core.Pose
	observers []ExplosionObserver
}

// NewExplosion creates an idle machine
func NewExplosion(cfg ExplosionConfig) *Explosion {
	return &Explosion{cfg: cfg}
}

// Observe registers an observer
func (e *Explosion) Observe(o ExplosionObserver) {
	e.observers = append(e.observers, o)
}

// Trigger starts an explosion at the player pose
// Returns false without side effects while one is already running
func (e *Explosion) Trigger(at core.Pose) bool {
	if e.phase == PhaseExploding {
		return false
	}

	e.phase = PhaseExploding
	e.scale = 0
	// The effect keeps the heading only
	e.effect = core.Pose{Pos: at.Pos, H: at.H}

	for _, o := range e.observers {
		o.OnExplode(e.effect)
	}
	return true
}

// Update grows the effect and, once full size, respawns the player into st
// Returns true on the frame the respawn happens
func (e *Explosion) Update(dt float64, st *core.FlightState) bool {
	if e.phase != PhaseExploding {
		return false
	}

	if e.scale < e.cfg.MaxScale {
		if dt > 0 {
			e.scale = min(e.scale+dt*e.cfg.GrowthRate, e.cfg.MaxScale)
		}
		return false
	}

	e.scale = 0
	e.phase = PhaseIdle
	*st = e.cfg.Respawn

	for _, o := range e.observers {
		o.OnRespawn(st.Pose)
	}
	return true
}

// Phase returns the current state
func (e *Explosion) Phase() Phase { return e.phase }

// Active reports whether flight updates are suspended
func (e *Explosion) Active() bool { return e.phase == PhaseExploding }

// Scale returns the effect scale, zero while idle
func (e *Explosion) Scale() float64 { return e.scale }

// EffectPose returns where the effect was placed
func (e *Explosion) EffectPose() core.Pose { return e.effect }

// PlayerVisible reports whether the aircraft should be drawn
func (e *Explosion) PlayerVisible() bool { return e.phase == PhaseIdle }
