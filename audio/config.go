package audio

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the configuration used when nothing overrides it
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundEat:   0.6,
			SoundLose:  0.8,
			SoundBoost: 0.5,
			SoundWin:   0.7,
		},
	}
}

// Validate clamps the master volume and rejects an unusable sample rate
func (c *AudioConfig) Validate() error {
	c.MasterVolume = min(max(c.MasterVolume, 0), 1)
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	return nil
}
