package status

import "sync/atomic"

// Registry holds run counters written by the frame loop and read by the HUD and telemetry
// Writers touch atomics directly; readers may run on other goroutines
type Registry struct {
	Frames     atomic.Int64
	EdgeFrames atomic.Int64
	Contacts   atomic.Int64
	Explosions atomic.Int64
	Respawns   atomic.Int64
	FPS        AtomicFloat
}

// NewRegistry creates a zeroed Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Counters is a plain copy of the registry for encoding
type Counters struct {
	Frames     int64   `cbor:"frames"`
	EdgeFrames int64   `cbor:"edge_frames"`
	Contacts   int64   `cbor:"contacts"`
	Explosions int64   `cbor:"explosions"`
	Respawns   int64   `cbor:"respawns"`
	FPS        float64 `cbor:"fps"`
}

// Snapshot copies all counters
func (r *Registry) Snapshot() Counters {
	return Counters{
		Frames:     r.Frames.Load(),
		EdgeFrames: r.EdgeFrames.Load(),
		Contacts:   r.Contacts.Load(),
		Explosions: r.Explosions.Load(),
		Respawns:   r.Respawns.Load(),
		FPS:        r.FPS.Get(),
	}
}
