package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Hover chime, played when a different planet becomes highlighted
const (
	ChimeDuration = 120 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 80 * time.Millisecond

	// ChimeVolume is in beep's exponential units (0 = unity)
	ChimeVolume = -1.5

	// ChimeBaseFreq is the tone for the innermost planet, each further planet steps down
	ChimeBaseFreq = 880.0
	ChimeFreqStep = 0.92

	// MinChimeGap suppresses chimes while sweeping across several planets
	MinChimeGap = 60 * time.Millisecond
)
