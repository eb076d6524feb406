package parameter

import "time"

// Telemetry stream
const (
	// TelemetryEvery publishes one snapshot every N frames
	TelemetryEvery = 4

	// TelemetrySubscriberBuffer is the per-subscriber snapshot queue, full queues drop frames
	TelemetrySubscriberBuffer = 32

	// TelemetryWriteTimeout bounds a single websocket write
	TelemetryWriteTimeout = 2 * time.Second
)
