package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/parameter"
)

func defaultRig() CameraRig {
	return CameraRig{
		Offset:   mgl64.Vec3{parameter.CameraOffsetX, parameter.CameraOffsetY, parameter.CameraOffsetZ},
		Stretch:  parameter.CameraStretch,
		Hpr:      mgl64.Vec3{parameter.CameraHeading, parameter.CameraPitch, parameter.CameraRoll},
		MaxSpeed: parameter.MaxSpeed,
	}
}

func TestCameraAtLevelPoseUsesOffset(t *testing.T) {
	rig := defaultRig()
	pose := core.Pose{Pos: mgl64.Vec3{100, 100, 50}}

	cam := CameraPose(pose, 0, rig)
	assert.InDelta(t, 100+parameter.CameraOffsetX, cam.X(), 1e-9)
	assert.InDelta(t, 100+parameter.CameraOffsetY, cam.Y(), 1e-9)
	assert.InDelta(t, 50+parameter.CameraOffsetZ, cam.Z(), 1e-9)

	assert.InDelta(t, parameter.CameraHeading, cam.H, 1e-6)
	assert.InDelta(t, parameter.CameraPitch, cam.P, 1e-6)
	assert.InDelta(t, parameter.CameraRoll, cam.R, 1e-6)
}

func TestCameraStretchesWithSpeed(t *testing.T) {
	rig := defaultRig()
	pose := core.Pose{Pos: mgl64.Vec3{100, 100, 50}}

	slow := CameraPose(pose, 0, rig)
	fast := CameraPose(pose, parameter.MaxSpeed, rig)
	assert.InDelta(t, parameter.CameraStretch, fast.X()-slow.X(), 1e-9)

	rig.Stretch = 0
	fixed := CameraPose(pose, parameter.MaxSpeed, rig)
	assert.InDelta(t, slow.X(), fixed.X(), 1e-9)
}

func TestCameraFollowsHeading(t *testing.T) {
	rig := CameraRig{Offset: mgl64.Vec3{10, 0, 0}, MaxSpeed: 100}
	pose := core.Pose{Pos: mgl64.Vec3{0, 0, 0}, H: 90}

	cam := CameraPose(pose, 0, rig)
	assert.InDelta(t, 0, cam.X(), 1e-9)
	assert.InDelta(t, 10, cam.Y(), 1e-9)
	assert.InDelta(t, 90, cam.H, 1e-9)
}
