package parameter

// Frame Loop Timing
const (
	// DefaultFPS is the frame callback rate used when no flag overrides it
	DefaultFPS = 60

	// MaxFPS caps the frame flag
	MaxFPS = 240

	// EventQueueSize is the buffer between the terminal poller and the host loop
	EventQueueSize = 100
)

// Rotation
const (
	// RotationEnabledDefault is the initial state of planet rotation
	// Only the Space key changes it
	RotationEnabledDefault = true
)

// Star Pulse
const (
	// StarOpacityBase and StarOpacityAmplitude give opacity = base + amp·sin(ms·rate)
	StarOpacityBase      = 0.5
	StarOpacityAmplitude = 0.5

	// StarPulseRate is radians per wall clock millisecond
	StarPulseRate = 0.001
)
