package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// gimbalEpsilon is the |cos(pitch)| below which heading and roll are no longer separable
const gimbalEpsilon = 1e-9

// RotationHPR returns the rotation matrix for heading/pitch/roll in degrees
// Heading turns about +Z, pitch about +X, roll about +Y, all right-handed
func RotationHPR(h, p, r float64) mgl64.Mat3 {
	rz := mgl64.Rotate3DZ(mgl64.DegToRad(h))
	rx := mgl64.Rotate3DX(mgl64.DegToRad(p))
	ry := mgl64.Rotate3DY(mgl64.DegToRad(r))
	return rz.Mul3(rx).Mul3(ry)
}

// DecomposeHPR extracts heading/pitch/roll in degrees from a rotation built by RotationHPR
// At gimbal lock roll is reported as zero and folded into heading
func DecomposeHPR(m mgl64.Mat3) (h, p, r float64) {
	sp := clampUnit(m.At(2, 1))
	p = math.Asin(sp)
	if math.Abs(math.Cos(p)) < gimbalEpsilon {
		h = math.Atan2(m.At(1, 0), m.At(0, 0))
		return mgl64.RadToDeg(h), mgl64.RadToDeg(p), 0
	}
	h = math.Atan2(-m.At(0, 1), m.At(1, 1))
	r = math.Atan2(-m.At(2, 0), m.At(2, 2))
	return mgl64.RadToDeg(h), mgl64.RadToDeg(p), mgl64.RadToDeg(r)
}

// LocalToWorld transforms a body-frame offset into a world displacement
func LocalToWorld(h, p, r float64, local mgl64.Vec3) mgl64.Vec3 {
	return RotationHPR(h, p, r).Mul3x1(local)
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
