package parameter

// Explosion effect
const (
	// ExplosionGrowthRate is the effect scale gained per second on each axis
	ExplosionGrowthRate = 40.0

	// ExplosionMaxScale ends the explosion and triggers respawn
	ExplosionMaxScale = 60.0

	// GroundSnap lifts the player above the contact surface before the effect is placed
	GroundSnap = 10.0
)

// Collision sphere in player model units, multiplied by PlayerScale when the probe is built
const (
	ProbeOffsetX = 0.0
	ProbeOffsetY = 1.5
	ProbeOffsetZ = -1.5
	ProbeRadius  = 1.5
)
