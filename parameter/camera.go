package parameter

// Chase camera offset in player-local space
const (
	CameraOffsetX = 19.6225
	CameraOffsetY = 3.8807
	CameraOffsetZ = 10.2779

	// CameraStretch is added to the X offset at full speed when the camera is interpolated
	CameraStretch = 10.0
)

// Chase camera orientation relative to the player frame, degrees
const (
	CameraHeading = 94.8996
	CameraPitch   = -12.6549
	CameraRoll    = 1.55508
)

// CameraFar is the view distance, the terminal view fades terrain towards it
const CameraFar = 600.0
