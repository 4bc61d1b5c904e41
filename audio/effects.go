package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/card-grove/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue shaping constants
const (
	hitDuration  = 120 * time.Millisecond
	hitAttack    = 5 * time.Millisecond
	hitRelease   = 80 * time.Millisecond
	deathDur     = 350 * time.Millisecond
	deathAttack  = 5 * time.Millisecond
	deathRelease = 300 * time.Millisecond
	chimeDur     = 180 * time.Millisecond
	chimeAttack  = 10 * time.Millisecond
	chimeRelease = 140 * time.Millisecond
	slotDuration = 90 * time.Millisecond
	slotAttack   = 5 * time.Millisecond
	slotRelease  = 60 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
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

// NewEnvelope shapes a streamer with a linear attack and release
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
			return i, false
		}

		var vol float64 = 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
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

// newVolume wraps a streamer in a volume effect
// math.Log2(0) is -Inf, so zero volume uses the silent flag
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// createHitSound is a short mid-range thud for a landed strike
func createHitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(220.0, hitDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, hitDuration, hitAttack, hitRelease, rate)
	return newVolume(shaped, 0.4)
}

// createDeathSound is a falling saw sweep layered over noise
func createDeathSound(rate beep.SampleRate) beep.Streamer {
	tone := NewOscillator(110.0, deathDur, WaveSaw, rate)
	toneShaped := NewEnvelope(tone, deathDur, deathAttack, deathRelease, rate)

	noise := NewOscillator(0, deathDur, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, deathDur, deathAttack, deathRelease, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.6),
		newVolume(noiseShaped, 0.2),
	)
	return newVolume(mixed, 0.5)
}

// createCompleteSound is a two-note rising chime for finished production
func createCompleteSound(rate beep.SampleRate) beep.Streamer {
	// A5 then E6
	n1 := NewOscillator(880.0, chimeDur, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, chimeDur, chimeAttack, chimeRelease, rate)

	n2 := NewOscillator(1318.51, chimeDur, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, chimeDur, chimeAttack, chimeRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.35)
}

// createSlotSound is a soft click for a card dropping into a tile slot
func createSlotSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660.0, slotDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, slotDuration, slotAttack, slotRelease, rate)
	return newVolume(shaped, 0.3)
}

// streamerFor maps a sound cue to a freshly built streamer, nil when
// the cue has no effect defined
func streamerFor(sound core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch sound {
	case core.SoundHit:
		return createHitSound(rate)
	case core.SoundDeath:
		return createDeathSound(rate)
	case core.SoundComplete:
		return createCompleteSound(rate)
	case core.SoundSlot:
		return createSlotSound(rate)
	default:
		return nil
	}
}
