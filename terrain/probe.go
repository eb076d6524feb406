package terrain

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/vmath"
)

// Surface identifies what a contact hit
type Surface uint8

const (
	SurfaceGround Surface = iota
	SurfaceWater
)

// Contact is one collision entry: the surface point below the probe sphere
type Contact struct {
	Point   mgl64.Vec3
	Surface Surface
}

// Probe tests a sphere attached to the player against the terrain and the water plane
type Probe struct {
	Terrain    *Terrain
	WaterLevel float64
	Offset     mgl64.Vec3 // sphere centre in player-local space
	Radius     float64
}

// NewPlayerProbe builds the player's collision sphere, scaled from model to world units
func NewPlayerProbe(t *Terrain, waterLevel float64) *Probe {
	offset := mgl64.Vec3{parameter.ProbeOffsetX, parameter.ProbeOffsetY, parameter.ProbeOffsetZ}
	return &Probe{
		Terrain:    t,
		WaterLevel: waterLevel,
		Offset:     offset.Mul(parameter.PlayerScale),
		Radius:     parameter.ProbeRadius * parameter.PlayerScale,
	}
}

// Contacts returns every surface the sphere touches, ground before water
// Nothing is reported over the grid edge: the heightfield has no geometry there
func (p *Probe) Contacts(pose core.Pose) []Contact {
	c := pose.Pos.Add(vmath.LocalToWorld(pose.H, pose.P, pose.R, p.Offset))
	bottom := c[2] - p.Radius

	var out []Contact
	if p.Terrain != nil && p.Terrain.Contains(c[0], c[1]) {
		if h := p.Terrain.HeightAt(c[0], c[1]); bottom <= h {
			out = append(out, Contact{Point: mgl64.Vec3{c[0], c[1], h}, Surface: SurfaceGround})
		}
	}
	if bottom <= p.WaterLevel {
		out = append(out, Contact{Point: mgl64.Vec3{c[0], c[1], p.WaterLevel}, Surface: SurfaceWater})
	}
	return out
}
