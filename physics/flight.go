package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/input"
	"github.com/lixenwraith/flanker/parameter"
	"github.com/lixenwraith/flanker/vmath"
)

// FlightModel integrates the player pose from input flags
// Stateless apart from its parameters; speed and pose are passed in and returned
type FlightModel struct {
	MaxSpeed     float64
	GravityDrift bool
}

// NewFlightModel creates a model for the given throttle ceiling
func NewFlightModel(maxSpeed float64, gravityDrift bool) FlightModel {
	return FlightModel{MaxSpeed: maxSpeed, GravityDrift: gravityDrift}
}

// Update advances one frame: roll/climb, yaw/pitch, throttle, then translation
// Drift and the motion factors use the speed from before the throttle step
// Negative dt is treated as zero
func (m FlightModel) Update(dt float64, in input.State, pose core.Pose, speed float64) (core.Pose, float64) {
	if dt < 0 {
		dt = 0
	}

	scale := dt * speed
	climb := scale * parameter.ClimbFactor
	bank := scale * parameter.BankFactor
	forward := scale * parameter.ForwardFactor
	drift := (m.MaxSpeed - speed) / 100 * parameter.GravityDriftFactor * parameter.PlayerScale

	pose = m.rollAndClimb(in, pose, speed, climb)
	pose = m.yawAndPitch(in, pose, speed, bank)
	speed = m.throttle(in, speed)

	// Forward is the body -X axis for this airframe
	pose.Pos = pose.Pos.Add(vmath.LocalToWorld(pose.H, pose.P, pose.R, mgl64.Vec3{-forward, 0, 0}))

	if m.GravityDrift {
		pose.Pos = pose.Pos.Add(vmath.LocalToWorld(pose.H, pose.P, pose.R, mgl64.Vec3{0, 0, -drift}))
	}

	return pose, speed
}

// rollAndClimb changes altitude with roll; roll wraps smoothly at ±180
func (m FlightModel) rollAndClimb(in input.State, pose core.Pose, speed, climb float64) core.Pose {
	switch {
	case in.Climb && speed > 0:
		pose.Pos[2] += climb
		pose.R = vmath.WrapSmooth(pose.R+climb, parameter.AngleLimit)
	case in.Fall && speed > 0:
		pose.Pos[2] -= climb
		pose.R = vmath.WrapSmooth(pose.R-climb, parameter.AngleLimit)
	default:
		pose.R = vmath.ApproachZero(pose.R, climb+parameter.LevelReturnBias)
	}
	return pose
}

// yawAndPitch turns heading and banks pitch; pitch hard-resets at ±180
func (m FlightModel) yawAndPitch(in input.State, pose core.Pose, speed, bank float64) core.Pose {
	switch {
	case in.Left && speed > 0:
		pose.H = vmath.WrapSmooth(pose.H+bank, parameter.AngleLimit)
		pose.P = vmath.WrapHard(pose.P+bank, parameter.AngleLimit)
	case in.Right && speed > 0:
		pose.H = vmath.WrapSmooth(pose.H-bank, parameter.AngleLimit)
		pose.P = vmath.WrapHard(pose.P-bank, parameter.AngleLimit)
	default:
		pose.P = vmath.ApproachZero(pose.P, bank+parameter.LevelReturnBias)
	}
	return pose
}

// throttle applies a fixed per-frame step; accelerate wins when both are held
func (m FlightModel) throttle(in input.State, speed float64) float64 {
	switch {
	case in.Accelerate:
		speed += parameter.ThrottleStep
	case in.Decelerate:
		speed -= parameter.ThrottleStep
	}
	speed, _ = vmath.Clamp(speed, 0, m.MaxSpeed)
	return speed
}
