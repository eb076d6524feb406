package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frame ticker interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after a stall (suspend, debugger) so a single frame cannot tunnel through terrain
	MaxFrameDelta = 250 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the frame loop
	EventChannelSize = 100
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report no key release, so a held key is inferred from autorepeat
	KeyHoldWindow = 500 * time.Millisecond
)
