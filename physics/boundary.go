package physics

import (
	"github.com/lixenwraith/flanker/core"
	"github.com/lixenwraith/flanker/vmath"
)

// BoundaryStatus reports whether the last clamp hit a horizontal world edge
type BoundaryStatus uint8

const (
	BoundaryClear BoundaryStatus = iota
	BoundaryAtEdge
)

// String names the status for logs and telemetry
func (s BoundaryStatus) String() string {
	if s == BoundaryAtEdge {
		return "at_edge"
	}
	return "clear"
}

// Bounds is the playable box: [0, Size] on X/Y and [0, MaxAltitude] on Z
type Bounds struct {
	Size        float64
	MaxAltitude float64
}

// Clamp restricts the pose to the bounds
// Only X/Y clamping reports an edge; the altitude floor and ceiling are silent
func Clamp(pose core.Pose, b Bounds) (core.Pose, BoundaryStatus) {
	pose.Pos[2], _ = vmath.Clamp(pose.Pos[2], 0, b.MaxAltitude)

	var hitX, hitY bool
	pose.Pos[0], hitX = vmath.Clamp(pose.Pos[0], 0, b.Size)
	pose.Pos[1], hitY = vmath.Clamp(pose.Pos[1], 0, b.Size)

	if hitX || hitY {
		return pose, BoundaryAtEdge
	}
	return pose, BoundaryClear
}
