package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ExplosionSoundDuration is the length of the explosion rumble
	ExplosionSoundDuration = 1500 * time.Millisecond

	// EngineBaseFrequency is the idle engine hum pitch, rising with speed
	EngineBaseFrequency = 55.0

	// EngineFrequencySpan is added to the hum pitch at full speed
	EngineFrequencySpan = 90.0
)
