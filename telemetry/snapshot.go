package telemetry

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/lixenwraith/flanker/engine"
	"github.com/lixenwraith/flanker/status"
)

// Snapshot is one streamed frame
type Snapshot struct {
	Frame    int64           `cbor:"frame"`
	Time     float64         `cbor:"time"`
	Pos      [3]float64      `cbor:"pos"`
	Hpr      [3]float64      `cbor:"hpr"`
	Speed    float64         `cbor:"speed"`
	Phase    string          `cbor:"phase"`
	Scale    float64         `cbor:"scale"`
	Boundary string          `cbor:"boundary"`
	Status   string          `cbor:"status"`
	Counters status.Counters `cbor:"counters"`
}

// NewSnapshot captures a frame and the current counters
func NewSnapshot(f engine.Frame, c status.Counters) Snapshot {
	return Snapshot{
		Frame:    f.Index,
		Time:     f.Time,
		Pos:      [3]float64{f.Pose.X(), f.Pose.Y(), f.Pose.Z()},
		Hpr:      [3]float64{f.Pose.H, f.Pose.P, f.Pose.R},
		Speed:    f.Speed,
		Phase:    f.Phase.String(),
		Scale:    f.EffectScale,
		Boundary: f.Boundary.String(),
		Status:   f.StatusText,
		Counters: c,
	}
}

// Marshal encodes the snapshot as CBOR
func (s Snapshot) Marshal() ([]byte, error) {
	return cbor.Marshal(s)
}
