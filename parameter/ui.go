package parameter

// Status labels
const (
	StatusTextOK   = "STATUS: OK"
	StatusTextEdge = "STATUS: MAP END; TURN AROUND"

	// StatusDebounceFrames is the counter value the boundary label must exceed before it may change
	StatusDebounceFrames = 30

	// CollisionLabelPrefix precedes the frame time on the debug collision label
	CollisionLabelPrefix = "DEAD:"
)

// Terminal view
const (
	// DefaultCellsPerUnit is the horizontal zoom, world units per terminal column are its inverse
	DefaultCellsPerUnit = 0.25

	// CellAspect compensates for terminal cells being roughly twice as tall as wide
	CellAspect = 2.0

	// FogDensity is the exponential fog factor applied by distance from the camera
	FogDensity = 0.002

	// HUDRows is the number of reserved rows at the top of the screen
	HUDRows = 2
)
