// Package config merges defaults, an optional TOML file and environment overrides
package config

import (
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/pkg/errors"
)

// Environment overrides
const (
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME" // 0-100
	EnvSeed         = "VI_SNAKE_SEED"
)

// DefaultLogDir is relative to the working directory
const DefaultLogDir = "logs"

var ErrUnknownKeys = errors.New("unknown config keys")

// Config is the complete runtime configuration
type Config struct {
	Seed   uint64      `toml:"seed"` // 0 seeds from the clock
	Debug  bool        `toml:"debug"`
	LogDir string      `toml:"log_dir"`
	Audio  AudioConfig `toml:"audio"`
}

// AudioConfig is the file form of the audio settings
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0 - 1.0
	SampleRate   int     `toml:"sample_rate"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogDir: DefaultLogDir,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
		},
	}
}

// Load applies the file at path (if non-empty) and the environment over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "[LoadConfig] decode %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.Wrapf(ErrUnknownKeys, "[LoadConfig] %s: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[LoadConfig] validate")
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment; unparsable values are logged and ignored
func (c *Config) applyEnv(getenv func(string) string) {
	if enabled := getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvAudioEnabled, enabled, err)
		}
	}

	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvMasterVolume, volume, err)
		}
	}

	if seed := getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			c.Seed = val
		} else {
			log.Printf("config: ignoring %s=%q: %v", EnvSeed, seed, err)
		}
	}
}

// Validate clamps the volume and rejects values the game cannot run with
func (c *Config) Validate() error {
	settings := c.AudioSettings()
	if err := settings.Validate(); err != nil {
		return err
	}
	c.Audio.MasterVolume = settings.MasterVolume

	if c.LogDir == "" {
		c.LogDir = DefaultLogDir
	}
	return nil
}

// AudioSettings converts the file form into the audio package configuration
func (c *Config) AudioSettings() *audio.AudioConfig {
	settings := audio.DefaultAudioConfig()
	settings.Enabled = c.Audio.Enabled
	settings.MasterVolume = c.Audio.MasterVolume
	settings.SampleRate = c.Audio.SampleRate
	return settings
}
