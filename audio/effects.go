package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/pkg/errors"

	"github.com/lixenwraith/orrery/parameter"
)

// envelope applies attack/release shaping to a stream and ends it after the total duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in a linear attack/release envelope lasting duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if rest := e.totalSamples - e.position; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// ChimeFrequency returns the hover tone for the planet at index, lower for outer planets
func ChimeFrequency(index int) float64 {
	return parameter.ChimeBaseFreq * math.Pow(parameter.ChimeFreqStep, float64(index))
}

// NewChime builds the short hover tone for the planet at index
func NewChime(index int, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, ChimeFrequency(index))
	if err != nil {
		return nil, errors.Wrapf(err, "chime tone for planet %d", index)
	}
	shaped := NewEnvelope(sine, parameter.ChimeDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: parameter.ChimeVolume}, nil
}
