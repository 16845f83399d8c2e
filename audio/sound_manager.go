package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/orrery/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Clock supplies the time used to space out chimes
type Clock interface {
	Now() time.Time
}

// SoundManager plays hover chimes through a single mixer on the system speaker
// Every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	clock       Clock
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	lastChime time.Time
	played    int
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager(clock Clock, muted bool) *SoundManager {
	return &SoundManager{
		clock: clock,
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayHover queues the chime for the planet at index
// Chimes closer together than MinChimeGap are dropped
func (sm *SoundManager) PlayHover(index int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	now := sm.clock.Now()
	if !sm.lastChime.IsZero() && now.Sub(sm.lastChime) < parameter.MinChimeGap {
		return
	}
	chime, err := NewChime(index, sampleRate)
	if err != nil {
		return
	}
	sm.lastChime = now
	sm.played++

	speaker.Lock()
	sm.mixer.Add(chime)
	speaker.Unlock()
}

// SetMuted silences or restores chimes
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether chimes are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Enabled reports whether the speaker is open and chimes are audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// Played returns the number of chimes queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}
