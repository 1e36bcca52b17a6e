package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/pkg/errors"
)

// Player turns game events into sound
type Player interface {
	PlayEvents(ev game.Events)
	Close()
}

// NopPlayer is used when audio is disabled or unavailable
type NopPlayer struct{}

func (NopPlayer) PlayEvents(game.Events) {}
func (NopPlayer) Close()                 {}

// SoundsFor lists the sounds a transition should trigger, in play order
// A win replaces the eat sound of the final food
func SoundsFor(ev game.Events) []SoundType {
	var sounds []SoundType
	switch {
	case ev.Has(game.EventWon):
		sounds = append(sounds, SoundWin)
	case ev.Has(game.EventAte):
		sounds = append(sounds, SoundEat)
	}
	if ev.Has(game.EventBoostStarted) {
		sounds = append(sounds, SoundBoost)
	}
	if ev.Has(game.EventLost) {
		sounds = append(sounds, SoundLose)
	}
	return sounds
}

// SoundManager plays effects through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return errors.Wrap(err, "validate audio config")
	}

	rate := sampleRate(sm.cfg)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return errors.Wrapf(err, "init speaker at %d Hz", sm.cfg.SampleRate)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues one effect; no-op before Initialize
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(soundType, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayEvents plays every sound the events call for
func (sm *SoundManager) PlayEvents(ev game.Events) {
	for _, s := range SoundsFor(ev) {
		sm.Play(s)
	}
}

// Close stops all sounds and releases the speaker
func (sm *SoundManager) Close() {
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
