package audio

import (
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/pkg/errors"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Audio should be enabled by default")
	}
	if cfg.MasterVolume != constants.DefaultMasterVolume {
		t.Errorf("Expected master volume %f, got %f", constants.DefaultMasterVolume, cfg.MasterVolume)
	}
	if cfg.SampleRate != constants.DefaultSampleRate {
		t.Errorf("Expected sample rate %d, got %d", constants.DefaultSampleRate, cfg.SampleRate)
	}
	for st := SoundEat; st < soundTypeCount; st++ {
		if v := cfg.EffectVolumes[st]; v <= 0 || v > 1 {
			t.Errorf("Effect volume for %s out of range: %f", st, v)
		}
	}
}

func TestAudioConfigValidate(t *testing.T) {
	tests := []struct {
		name       string
		volume     float64
		rate       int
		wantVolume float64
		wantErr    error
	}{
		{"Valid", 0.3, 44100, 0.3, nil},
		{"Volume clamped high", 1.7, 44100, 1.0, nil},
		{"Volume clamped low", -0.2, 44100, 0.0, nil},
		{"Zero rate", 0.5, 0, 0.5, ErrInvalidSampleRate},
		{"Negative rate", 0.5, -1, 0.5, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAudioConfig()
			cfg.MasterVolume = tt.volume
			cfg.SampleRate = tt.rate

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if cfg.MasterVolume != tt.wantVolume {
				t.Errorf("MasterVolume = %f, want %f", cfg.MasterVolume, tt.wantVolume)
			}
		})
	}
}
