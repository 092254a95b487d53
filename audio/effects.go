// Package audio synthesises the game's sound effects and plays them through
// the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect timings
const (
	absorbDuration = 120 * time.Millisecond
	absorbAttack   = 5 * time.Millisecond
	absorbRelease  = 90 * time.Millisecond

	roundNoteDuration = 90 * time.Millisecond
	roundNoteAttack   = 5 * time.Millisecond
	roundNoteRelease  = 60 * time.Millisecond

	gameOverDuration = 700 * time.Millisecond
	gameOverAttack   = 10 * time.Millisecond
	gameOverRelease  = 400 * time.Millisecond
)

// Absorb pitch range. Small objects chirp high, big ones thud low.
const (
	absorbMinRadius = 10.0
	absorbMaxRadius = 60.0
	absorbHighHz    = 1320.0
	absorbLowHz     = 330.0
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero is
// handled by muting.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// AbsorbPitch maps an absorbed object's radius to a frequency in Hz.
func AbsorbPitch(radius float32) float64 {
	r := math.Max(absorbMinRadius, math.Min(absorbMaxRadius, float64(radius)))
	t := (r - absorbMinRadius) / (absorbMaxRadius - absorbMinRadius)
	return absorbHighHz + t*(absorbLowHz-absorbHighHz)
}

// CreateAbsorbSound generates a short blip pitched by the absorbed radius.
func CreateAbsorbSound(rate beep.SampleRate, volume float64, radius float32) beep.Streamer {
	freq := AbsorbPitch(radius)
	fund := NewEnvelope(NewOscillator(freq, absorbDuration, WaveSine, rate), absorbDuration, absorbAttack, absorbRelease, rate)
	over := NewEnvelope(NewOscillator(freq*2, absorbDuration, WaveSine, rate), absorbDuration, absorbAttack, absorbRelease/2, rate)

	return newVolume(beep.Mix(newVolume(fund, 0.75), newVolume(over, 0.25)), volume)
}

// CreateRoundSound generates a rising three-note arpeggio for a cleared round.
func CreateRoundSound(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewOscillator(f, roundNoteDuration, WaveSquare, rate)
		parts[i] = NewEnvelope(osc, roundNoteDuration, roundNoteAttack, roundNoteRelease, rate)
	}
	return newVolume(beep.Seq(parts...), volume*0.5)
}

// CreateGameOverSound generates a low falling buzz with a noise burst.
func CreateGameOverSound(rate beep.SampleRate, volume float64) beep.Streamer {
	low := NewEnvelope(NewOscillator(110, gameOverDuration, WaveSaw, rate), gameOverDuration, gameOverAttack, gameOverRelease, rate)
	lower := NewEnvelope(NewOscillator(82.41, gameOverDuration, WaveSaw, rate), gameOverDuration, gameOverAttack, gameOverRelease, rate)
	noise := NewEnvelope(NewOscillator(0, gameOverDuration/4, WaveNoise, rate), gameOverDuration/4, gameOverAttack, gameOverDuration/8, rate)

	return newVolume(beep.Mix(newVolume(low, 0.5), newVolume(lower, 0.4), newVolume(noise, 0.2)), volume)
}

// GameOverDuration is how long the game-over sound plays.
func GameOverDuration() time.Duration {
	return gameOverDuration
}
