package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-snake.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.Audio.SampleRate != constants.DefaultSampleRate {
		t.Errorf("Expected sample rate %d, got %d", constants.DefaultSampleRate, cfg.Audio.SampleRate)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
seed = 42
debug = true
log_dir = "/tmp/snake-logs"

[audio]
enabled = false
master_volume = 0.25
sample_rate = 48000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{
		Seed:   42,
		Debug:  true,
		LogDir: "/tmp/snake-logs",
		Audio:  AudioConfig{Enabled: false, MasterVolume: 0.25, SampleRate: 48000},
	}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "seed = 7\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Seed)
	}
	if !cfg.Audio.Enabled || cfg.Audio.MasterVolume != constants.DefaultMasterVolume {
		t.Errorf("Audio defaults lost: %+v", cfg.Audio)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"Unknown key", "speed = 3\n", ErrUnknownKeys},
		{"Bad sample rate", "[audio]\nsample_rate = 0\n", audio.ErrInvalidSampleRate},
		{"Malformed", "seed = \n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "seed = 7\n[audio]\nenabled = true\nmaster_volume = 0.9\n")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "30")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected env seed 99, got %d", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected env to disable audio")
	}
	if cfg.Audio.MasterVolume != 0.3 {
		t.Errorf("Expected volume 0.3, got %f", cfg.Audio.MasterVolume)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantVolume float64
		wantSeed   uint64
	}{
		{"Empty", nil, constants.DefaultMasterVolume, 0},
		{"Volume clamped high", map[string]string{EnvMasterVolume: "150"}, 1.0, 0},
		{"Volume clamped low", map[string]string{EnvMasterVolume: "-20"}, 0.0, 0},
		{"Bad volume ignored", map[string]string{EnvMasterVolume: "loud"}, constants.DefaultMasterVolume, 0},
		{"Bad seed ignored", map[string]string{EnvSeed: "-1"}, constants.DefaultMasterVolume, 0},
		{"Seed", map[string]string{EnvSeed: "12345"}, constants.DefaultMasterVolume, 12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.applyEnv(func(key string) string { return tt.env[key] })

			if cfg.Audio.MasterVolume != tt.wantVolume {
				t.Errorf("MasterVolume = %f, want %f", cfg.Audio.MasterVolume, tt.wantVolume)
			}
			if cfg.Seed != tt.wantSeed {
				t.Errorf("Seed = %d, want %d", cfg.Seed, tt.wantSeed)
			}
		})
	}
}

func TestValidateClampsVolume(t *testing.T) {
	cfg := Default()
	cfg.Audio.MasterVolume = 3
	cfg.LogDir = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("Expected clamped volume 1, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.LogDir != DefaultLogDir {
		t.Errorf("Expected default log dir, got %q", cfg.LogDir)
	}
}

func TestAudioSettings(t *testing.T) {
	cfg := Default()
	cfg.Audio = AudioConfig{Enabled: false, MasterVolume: 0.4, SampleRate: 22050}

	got := cfg.AudioSettings()
	if got.Enabled || got.MasterVolume != 0.4 || got.SampleRate != 22050 {
		t.Errorf("AudioSettings() = %+v", got)
	}
	if got.EffectVolumes != audio.DefaultAudioConfig().EffectVolumes {
		t.Error("Effect volumes should come from the audio defaults")
	}
}
