// Package config loads the flight, world and front-end settings from TOML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"

	"github.com/lixenwraith/flanker/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Chase camera modes
const (
	// CameraInterpolated pulls the camera back as speed rises
	CameraInterpolated = "interpolated"
	// CameraFixed keeps a constant offset
	CameraFixed = "fixed"
)

// Config is the full settings tree
type Config struct {
	Flight    Flight    `toml:"flight"`
	World     World     `toml:"world"`
	Camera    Camera    `toml:"camera"`
	Explosion Explosion `toml:"explosion"`
	Policy    Policy    `toml:"policy"`
	Terrain   Terrain   `toml:"terrain"`
	Input     Input     `toml:"input"`
	Render    Render    `toml:"render"`
	Telemetry Telemetry `toml:"telemetry"`
	Audio     Audio     `toml:"audio"`
}

// Flight holds the aircraft envelope and start pose
type Flight struct {
	MaxSpeed float64   `toml:"max_speed"`
	StartPos []float64 `toml:"start_pos"`
	StartHpr []float64 `toml:"start_hpr"`
}

// Start returns the configured start position and orientation
func (f Flight) Start() (pos, hpr mgl64.Vec3) {
	return vec3(f.StartPos), vec3(f.StartHpr)
}

// World bounds the playable box
type World struct {
	Size        float64 `toml:"size"`
	MaxAltitude float64 `toml:"max_altitude"`
	WaterLevel  float64 `toml:"water_level"`
}

// Camera configures the chase camera
type Camera struct {
	Mode    string    `toml:"mode"`
	Stretch float64   `toml:"stretch"`
	Offset  []float64 `toml:"offset"`
	Hpr     []float64 `toml:"hpr"`
}

// EffectiveStretch is the speed-dependent offset for the active mode
func (c Camera) EffectiveStretch() float64 {
	if c.Mode == CameraFixed {
		return 0
	}
	return c.Stretch
}

// OffsetVec returns the local-space offset
func (c Camera) OffsetVec() mgl64.Vec3 { return vec3(c.Offset) }

// HprVec returns the relative orientation
func (c Camera) HprVec() mgl64.Vec3 { return vec3(c.Hpr) }

// Explosion tunes the destruction effect
type Explosion struct {
	GrowthRate float64 `toml:"growth_rate"`
	MaxScale   float64 `toml:"max_scale"`
	GroundSnap float64 `toml:"ground_snap"`
}

// Policy selects between the two historical behaviours of the flight loop
type Policy struct {
	// GravityDrift applies the body-down drift after each forward step
	GravityDrift bool `toml:"gravity_drift"`
	// Debug shows the collision label
	Debug bool `toml:"debug"`
}

// Terrain names the asset and cache files
type Terrain struct {
	Heightfield string  `toml:"heightfield"`
	ColorMap    string  `toml:"color_map"`
	Cache       string  `toml:"cache"`
	HeightScale float64 `toml:"height_scale"`
}

// Input configures key handling
type Input struct {
	HoldWindowMs int                 `toml:"hold_window_ms"`
	Bindings     map[string][]string `toml:"bindings"`
}

// HoldWindow returns the key hold window as a duration
func (i Input) HoldWindow() time.Duration {
	return time.Duration(i.HoldWindowMs) * time.Millisecond
}

// Render configures the terminal view
type Render struct {
	CellsPerUnit float64 `toml:"cells_per_unit"`
	FogDensity   float64 `toml:"fog_density"`
}

// Telemetry configures the optional snapshot stream
type Telemetry struct {
	Addr  string `toml:"addr"`
	Every int    `toml:"every"`
}

// Audio toggles sound
type Audio struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Flight: Flight{
			MaxSpeed: parameter.MaxSpeed,
			StartPos: []float64{parameter.StartX, parameter.StartY, parameter.StartZ},
			StartHpr: []float64{parameter.StartHeading, parameter.StartPitch, parameter.StartRoll},
		},
		World: World{
			Size:        parameter.WorldSize,
			MaxAltitude: parameter.MaxAltitude,
			WaterLevel:  parameter.WaterLevel,
		},
		Camera: Camera{
			Mode:    CameraInterpolated,
			Stretch: parameter.CameraStretch,
			Offset:  []float64{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ},
			Hpr:     []float64{parameter.CameraHeading, parameter.CameraPitch, parameter.CameraRoll},
		},
		Explosion: Explosion{
			GrowthRate: parameter.ExplosionGrowthRate,
			MaxScale:   parameter.ExplosionMaxScale,
			GroundSnap: parameter.GroundSnap,
		},
		Policy: Policy{
			GravityDrift: true,
			Debug:        false,
		},
		Terrain: Terrain{
			Heightfield: parameter.DefaultHeightfieldPath,
			ColorMap:    parameter.DefaultColorMapPath,
			Cache:       parameter.DefaultTerrainCache,
			HeightScale: parameter.TerrainHeightScale,
		},
		Input: Input{
			HoldWindowMs: int(parameter.KeyHoldWindow / time.Millisecond),
		},
		Render: Render{
			CellsPerUnit: parameter.DefaultCellsPerUnit,
			FogDensity:   parameter.FogDensity,
		},
		Telemetry: Telemetry{
			Every: parameter.TelemetryEvery,
		},
		Audio: Audio{
			Enabled: true,
		},
	}
}

// Load reads a TOML file over the defaults, so omitted keys keep their stock values
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed reading config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed decoding config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg and validates the result
func Decode(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Encode marshals cfg as TOML
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate checks ranges and vector lengths
func (c Config) Validate() error {
	switch {
	case c.Flight.MaxSpeed <= 0:
		return fmt.Errorf("%w: flight.max_speed must be positive", ErrInvalid)
	case len(c.Flight.StartPos) != 3:
		return fmt.Errorf("%w: flight.start_pos needs 3 components", ErrInvalid)
	case len(c.Flight.StartHpr) != 3:
		return fmt.Errorf("%w: flight.start_hpr needs 3 components", ErrInvalid)
	case c.World.Size <= 0:
		return fmt.Errorf("%w: world.size must be positive", ErrInvalid)
	case c.World.MaxAltitude <= 0:
		return fmt.Errorf("%w: world.max_altitude must be positive", ErrInvalid)
	case c.Camera.Mode != CameraInterpolated && c.Camera.Mode != CameraFixed:
		return fmt.Errorf("%w: camera.mode %q", ErrInvalid, c.Camera.Mode)
	case len(c.Camera.Offset) != 3 || len(c.Camera.Hpr) != 3:
		return fmt.Errorf("%w: camera offset and hpr need 3 components", ErrInvalid)
	case c.Explosion.GrowthRate <= 0 || c.Explosion.MaxScale <= 0:
		return fmt.Errorf("%w: explosion rate and scale must be positive", ErrInvalid)
	case c.Terrain.HeightScale <= 0:
		return fmt.Errorf("%w: terrain.height_scale must be positive", ErrInvalid)
	case c.Input.HoldWindowMs <= 0:
		return fmt.Errorf("%w: input.hold_window_ms must be positive", ErrInvalid)
	case c.Render.CellsPerUnit <= 0:
		return fmt.Errorf("%w: render.cells_per_unit must be positive", ErrInvalid)
	case c.Telemetry.Every <= 0:
		return fmt.Errorf("%w: telemetry.every must be positive", ErrInvalid)
	}

	start := vec3(c.Flight.StartPos)
	if start[0] < 0 || start[0] > c.World.Size || start[1] < 0 || start[1] > c.World.Size {
		return fmt.Errorf("%w: start position outside the world", ErrInvalid)
	}
	return nil
}

func vec3(v []float64) mgl64.Vec3 {
	var out mgl64.Vec3
	copy(out[:], v)
	return out
}
