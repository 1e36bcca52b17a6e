package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-snake/constants"
	"golang.org/x/exp/rand"
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
}

// NewOscillator creates an oscillator that stops after duration
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
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; sustain fills whatever attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; vol <= 0 is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func sampleRate(cfg *AudioConfig) beep.SampleRate {
	return beep.SampleRate(cfg.SampleRate)
}

// CreateEatSound generates a short rising blip, root then octave
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := sampleRate(cfg)
	half := constants.EatSoundDuration / 2

	root := NewOscillator(660.0, half, WaveSine, rate)
	rootShaped := NewEnvelope(root, half, constants.EatSoundAttack, constants.EatSoundAttack, rate)

	octave := NewOscillator(1320.0, half, WaveSine, rate)
	octaveShaped := NewEnvelope(octave, half, constants.EatSoundAttack, constants.EatSoundRelease/2, rate)

	return newVolume(beep.Seq(rootShaped, octaveShaped), cfg.EffectVolumes[SoundEat]*cfg.MasterVolume)
}

// CreateLoseSound generates a falling pair of low saw notes
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	rate := sampleRate(cfg)
	half := constants.LoseSoundDuration / 2

	high := NewOscillator(196.0, half, WaveSaw, rate)
	highShaped := NewEnvelope(high, half, constants.LoseSoundAttack, constants.LoseSoundAttack, rate)

	low := NewOscillator(98.0, half, WaveSaw, rate)
	lowShaped := NewEnvelope(low, half, constants.LoseSoundAttack, constants.LoseSoundRelease/2, rate)

	return newVolume(beep.Seq(highShaped, lowShaped), cfg.EffectVolumes[SoundLose]*cfg.MasterVolume)
}

// CreateBoostSound generates a noise swell
func CreateBoostSound(cfg *AudioConfig) beep.Streamer {
	rate := sampleRate(cfg)

	noise := NewOscillator(0, constants.BoostSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.BoostSoundDuration, constants.BoostSoundAttack, constants.BoostSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundBoost]*cfg.MasterVolume)
}

// CreateWinSound generates a two-note chime
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := sampleRate(cfg)

	// B5
	n1 := NewOscillator(987.77, constants.WinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.WinSoundNote1Duration, constants.WinSoundAttack, constants.WinSoundNote1Release, rate)

	// E6
	n2 := NewOscillator(1318.51, constants.WinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.WinSoundNote2Duration, constants.WinSoundAttack, constants.WinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[SoundWin]*cfg.MasterVolume)
}

// GetSoundEffect returns a fresh streamer for the sound, nil for an unknown type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundLose:
		return CreateLoseSound(cfg)
	case SoundBoost:
		return CreateBoostSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
