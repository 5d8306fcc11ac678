package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the total sample count
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440.0, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 200)
		n, ok := osc.Stream(samples)
		if !ok || n != 200 {
			t.Fatalf("wave %d: expected 200 samples ok, got %d %v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > 1.0 || samples[i][0] != samples[i][1] {
				t.Errorf("wave %d sample %d invalid: %v", wave, i, samples[i])
			}
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	if got := drain(osc); got != expected {
		t.Errorf("Expected %d samples, got %d", expected, got)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected exhausted oscillator, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(attack))
	n, ok := env.Stream(samples)
	if !ok {
		t.Fatal("Expected envelope to stream successfully")
	}

	first := math.Abs(samples[0][0])
	last := math.Abs(samples[n-1][0])
	if first >= last {
		t.Errorf("Expected attack to ramp up, first=%f last=%f", first, last)
	}
}

func TestSoundEffectsFinish(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		sound   SoundType
		minimum time.Duration
	}{
		{SoundEat, 100 * time.Millisecond},
		{SoundDeath, 300 * time.Millisecond},
		{SoundWin, 500 * time.Millisecond},
	}

	rate := beep.SampleRate(cfg.SampleRate)
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.sound, &cfg)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			if got := drain(s); got < rate.N(tt.minimum) {
				t.Errorf("Expected at least %d samples, got %d", rate.N(tt.minimum), got)
			}
		})
	}
}

func TestGetSoundEffectInvalid(t *testing.T) {
	cfg := DefaultConfig()
	if s := GetSoundEffect(soundTypeCount, &cfg); s != nil {
		t.Error("Expected nil for unknown sound type")
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected unknown name for out-of-range sound")
	}
}

func TestSilentVolume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	s := CreateEatSound(&cfg)
	samples := make([][2]float64, 256)
	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 || samples[i][1] != 0 {
			t.Fatalf("Expected silence at sample %d, got %v", i, samples[i])
		}
	}
}
