package constants

import "time"

// Audio Defaults
const (
	// DefaultSampleRate is the speaker sample rate in Hz
	DefaultSampleRate = 44100

	// DefaultMasterVolume is the master volume in [0, 1]
	DefaultMasterVolume = 0.5

	// SpeakerBufferDuration sizes the speaker buffer
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundDuration = 120 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 80 * time.Millisecond
)

// Lose Sound Timing
const (
	LoseSoundDuration = 400 * time.Millisecond
	LoseSoundAttack   = 10 * time.Millisecond
	LoseSoundRelease  = 250 * time.Millisecond
)

// Boost Sound Timing
const (
	BoostSoundDuration = 300 * time.Millisecond
	BoostSoundAttack   = 150 * time.Millisecond
	BoostSoundRelease  = 150 * time.Millisecond
)

// Win Sound Timing
const (
	WinSoundNote1Duration = 80 * time.Millisecond
	WinSoundNote2Duration = 280 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundNote1Release  = 40 * time.Millisecond
	WinSoundNote2Release  = 200 * time.Millisecond
)
