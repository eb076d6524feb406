package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/vmath"
)

// CameraRig is the chase camera placement relative to the player frame
type CameraRig struct {
	Offset   mgl64.Vec3 // local-space offset at zero speed
	Stretch  float64    // added to Offset.X at full speed, zero for a fixed camera
	Hpr      mgl64.Vec3 // orientation relative to the player
	MaxSpeed float64
}

// CameraPose derives the camera pose from the player pose and speed ratio
func CameraPose(pose core.Pose, speed float64, rig CameraRig) core.Pose {
	ratio := 0.0
	if rig.MaxSpeed > 0 {
		ratio = speed / rig.MaxSpeed
	}

	local := rig.Offset
	local[0] += rig.Stretch * ratio

	body := vmath.RotationHPR(pose.H, pose.P, pose.R)
	rel := vmath.RotationHPR(rig.Hpr[0], rig.Hpr[1], rig.Hpr[2])
	h, p, r := vmath.DecomposeHPR(body.Mul3(rel))

	return core.Pose{
		Pos: pose.Pos.Add(body.Mul3x1(local)),
		H:   h,
		P:   p,
		R:   r,
	}
}
