package core

import "github.com/go-gl/mathgl/mgl64"

// Pose is a world-space position with heading/pitch/roll in degrees
// Rotation order follows the scene convention: world = Rz(H) * Rx(P) * Ry(R) * local
type Pose struct {
	Pos mgl64.Vec3
	H   float64
	P   float64
	R   float64
}

// NewPose builds a pose from a position and an (H, P, R) triple
func NewPose(pos, hpr mgl64.Vec3) Pose {
	return Pose{Pos: pos, H: hpr[0], P: hpr[1], R: hpr[2]}
}

// HPR returns the orientation as a vector
func (p Pose) HPR() mgl64.Vec3 {
	return mgl64.Vec3{p.H, p.P, p.R}
}

// X, Y and Z are shorthands for the position components
func (p Pose) X() float64 { return p.Pos[0] }
func (p Pose) Y() float64 { return p.Pos[1] }
func (p Pose) Z() float64 { return p.Pos[2] }

// FlightState is the player's mutable kinematic state, owned by the frame loop
type FlightState struct {
	Pose  Pose
	Speed float64
}
