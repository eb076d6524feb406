package parameter

// Flight envelope
const (
	// MaxSpeed is the throttle ceiling in world units
	MaxSpeed = 100.0

	// WorldSize is the X/Y extent of the playable box, [0, WorldSize]
	WorldSize = 1024.0

	// MaxAltitude is the altitude ceiling, kept below the camera far distance so the ground stays visible
	MaxAltitude = 600.0
)

// Start pose
const (
	StartX = 200.0
	StartY = 200.0
	StartZ = 35.0

	StartHeading = 225.0
	StartPitch   = 0.0
	StartRoll    = 0.0
)

// Flight model factors, all multiplied by dt*speed unless noted
const (
	// ClimbFactor scales altitude change and roll while climbing or falling
	ClimbFactor = 0.5

	// BankFactor scales heading and pitch change while turning
	BankFactor = 1.0

	// ForwardFactor scales forward displacement along the body -X axis
	ForwardFactor = 2.9

	// LevelReturnBias is added to the per-frame auto-level step so it completes at zero speed
	LevelReturnBias = 0.1

	// ThrottleStep is the per-frame speed change, not scaled by dt
	ThrottleStep = 1.0

	// GravityDriftFactor is the per-frame body-down drift at zero speed in model units, scaled by (MaxSpeed-speed)/100
	GravityDriftFactor = 2.0
)

// PlayerScale converts player model units to world units
// Applies to the gravity drift and the collision sphere
const PlayerScale = 0.2

// Angles
const (
	// AngleLimit bounds heading, pitch and roll to [-AngleLimit, AngleLimit)
	AngleLimit = 180.0
)
