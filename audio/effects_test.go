package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = max(peak, sample[0], -sample[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never finished")
	return 0, 0
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
		freq float64
	}{
		{"Sine", WaveSine, 440},
		{"Square", WaveSquare, 220},
		{"Saw", WaveSaw, 110},
		{"Noise", WaveNoise, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(tt.freq, 50*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples with ok=true, got %d ok=%v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d differs between channels", i)
				}
			}
		})
	}
}

// TestOscillatorSquareValues verifies square wave only produces the two rails
func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expected*2)
	n, _ := osc.Stream(samples)
	if n != expected {
		t.Errorf("Expected %d samples, got %d", expected, n)
	}

	n2, ok2 := osc.Stream(samples)
	if ok2 || n2 != 0 {
		t.Errorf("Expected finished oscillator, got n=%d ok=%v", n2, ok2)
	}
}

// TestEnvelopeShape verifies the attack starts silent and the release ends near zero
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(440, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}

	if samples[0][0] != 0 {
		t.Errorf("First attack sample should be silent, got %f", samples[0][0])
	}
	mid := n / 2
	if v := samples[mid][0]; v != 1.0 && v != -1.0 {
		t.Errorf("Sustain sample should be at full level, got %f", v)
	}
	last := samples[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("Last release sample should be near zero, got %f", last)
	}
}

func TestSoundEffectsFinish(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		sound   SoundType
		minimum time.Duration
	}{
		{SoundEat, 100 * time.Millisecond},
		{SoundLose, 350 * time.Millisecond},
		{SoundBoost, 250 * time.Millisecond},
		{SoundWin, 350 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, cfg)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			total, peak := drain(t, s)
			if total < rate.N(tt.minimum) {
				t.Errorf("Sound too short: %d samples", total)
			}
			if peak == 0 {
				t.Error("Sound was silent at default volume")
			}
			if peak > 1.0 {
				t.Errorf("Sound clipped with peak %f", peak)
			}
		})
	}
}

func TestGetSoundEffectInvalid(t *testing.T) {
	if s := GetSoundEffect(soundTypeCount, DefaultAudioConfig()); s != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

// TestZeroMasterVolumeIsSilent verifies a muted master produces only zeros
func TestZeroMasterVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	for st := SoundEat; st < soundTypeCount; st++ {
		_, peak := drain(t, GetSoundEffect(st, cfg))
		if peak != 0 {
			t.Errorf("%s: expected silence, got peak %f", st, peak)
		}
	}
}
