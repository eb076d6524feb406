package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/flanker/config"
	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/input"
	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/physics"
	"github.com/lixenwraith/flanker/status"
	"github.com/lixenwraith/flanker/system"
	"github.com/lixenwraith/flanker/terrain"
)

// ContactProbe reports ground contacts below the player
type ContactProbe interface {
	Contacts(pose core.Pose) []terrain.Contact
}

// Frame is the read-only result of one Step, consumed by the renderer and telemetry
type Frame struct {
	Index         int64
	Time          float64
	Pose          core.Pose
	Speed         float64
	Camera        core.Pose
	Phase         system.Phase
	EffectScale   float64
	EffectPose    core.Pose
	PlayerVisible bool
	Boundary      physics.BoundaryStatus
	StatusText    string
	CollisionText string
	Contacts      int
	Input         input.State
}

// Game owns all per-frame state; Step is the only mutator and runs on one goroutine
type Game struct {
	model     physics.FlightModel
	bounds    physics.Bounds
	rig       physics.CameraRig
	probe     ContactProbe
	explosion *system.Explosion
	debounce  *status.Debouncer
	metrics   *status.Registry

	state      core.FlightState
	start      core.FlightState
	groundSnap float64
	debug      bool

	index     int64
	boundary  physics.BoundaryStatus
	camera    core.Pose
	collision string
}

// NewGame wires the flight systems from config; probe may be nil for a flat, contact-free world
func NewGame(cfg config.Config, probe ContactProbe, metrics *status.Registry) *Game {
	pos, hpr := cfg.Flight.Start()
	start := core.FlightState{
		Pose:  core.NewPose(pos, hpr),
		Speed: cfg.Flight.MaxSpeed / 2,
	}

	if metrics == nil {
		metrics = status.NewRegistry()
	}

	g := &Game{
		model:  physics.NewFlightModel(cfg.Flight.MaxSpeed, cfg.Policy.GravityDrift),
		bounds: physics.Bounds{Size: cfg.World.Size, MaxAltitude: cfg.World.MaxAltitude},
		rig: physics.CameraRig{
			Offset:   cfg.Camera.OffsetVec(),
			Stretch:  cfg.Camera.EffectiveStretch(),
			Hpr:      cfg.Camera.HprVec(),
			MaxSpeed: cfg.Flight.MaxSpeed,
		},
		probe: probe,
		explosion: system.NewExplosion(system.ExplosionConfig{
			GrowthRate: cfg.Explosion.GrowthRate,
			MaxScale:   cfg.Explosion.MaxScale,
			Respawn:    start,
		}),
		debounce:   status.NewDebouncer(parameter.StatusDebounceFrames),
		metrics:    metrics,
		state:      start,
		start:      start,
		groundSnap: cfg.Explosion.GroundSnap,
		debug:      cfg.Policy.Debug,
	}
	g.explosion.Observe(logObserver{metrics: metrics})
	g.camera = physics.CameraPose(g.state.Pose, g.state.Speed, g.rig)
	return g
}

// Step runs one frame: explosion or flight+boundary, then camera, then the collision probe
func (g *Game) Step(dt, frameTime float64, in input.State) Frame {
	g.index++
	g.metrics.Frames.Add(1)

	if g.explosion.Active() {
		g.explosion.Update(dt, &g.state)
	} else {
		g.state.Pose, g.state.Speed = g.model.Update(dt, in, g.state.Pose, g.state.Speed)
		g.state.Pose, g.boundary = physics.Clamp(g.state.Pose, g.bounds)
		if g.boundary == physics.BoundaryAtEdge {
			g.metrics.EdgeFrames.Add(1)
		}
		g.debounce.Observe(g.boundary == physics.BoundaryAtEdge)
	}

	g.camera = physics.CameraPose(g.state.Pose, g.state.Speed, g.rig)

	contacts := 0
	if g.probe != nil {
		hits := g.probe.Contacts(g.state.Pose)
		contacts = len(hits)
		if contacts > 0 {
			g.metrics.Contacts.Add(int64(contacts))
			if g.debug {
				g.collision = fmt.Sprintf("%s%.2f", parameter.CollisionLabelPrefix, frameTime)
			}
			if !g.explosion.Active() {
				g.state.Pose.Pos[2] = hits[0].Point[2] + g.groundSnap
				g.explosion.Trigger(g.state.Pose)
			}
		}
	}

	return g.frame(frameTime, in, contacts)
}

func (g *Game) frame(frameTime float64, in input.State, contacts int) Frame {
	return Frame{
		Index:         g.index,
		Time:          frameTime,
		Pose:          g.state.Pose,
		Speed:         g.state.Speed,
		Camera:        g.camera,
		Phase:         g.explosion.Phase(),
		EffectScale:   g.explosion.Scale(),
		EffectPose:    g.explosion.EffectPose(),
		PlayerVisible: g.explosion.PlayerVisible(),
		Boundary:      g.boundary,
		StatusText:    g.debounce.Text(),
		CollisionText: g.collision,
		Contacts:      contacts,
		Input:         in,
	}
}

// State returns a copy of the flight state
func (g *Game) State() core.FlightState { return g.state }

// Start returns the respawn state
func (g *Game) Start() core.FlightState { return g.start }

// Explosion exposes the state machine so front-ends can observe it
func (g *Game) Explosion() *system.Explosion { return g.explosion }

// Metrics returns the shared counters
func (g *Game) Metrics() *status.Registry { return g.metrics }

// Debug reports whether the collision label is enabled
func (g *Game) Debug() bool { return g.debug }

// Camera returns the last computed camera pose
func (g *Game) Camera() core.Pose { return g.camera }

// logObserver records explosions in the log and counters
type logObserver struct {
	metrics *status.Registry
}

func (o logObserver) OnExplode(at core.Pose) {
	o.metrics.Explosions.Add(1)
	log.Debug().Floats64("pos", vecSlice(at.Pos)).Float64("heading", at.H).Msg("player exploded")
}

func (o logObserver) OnRespawn(at core.Pose) {
	o.metrics.Respawns.Add(1)
	log.Debug().Floats64("pos", vecSlice(at.Pos)).Msg("player respawned")
}

func vecSlice(v mgl64.Vec3) []float64 {
	return []float64{v[0], v[1], v[2]}
}
