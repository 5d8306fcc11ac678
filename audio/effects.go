package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/wurm/constants"
)

// WaveType selects an oscillator wave shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveforms map a cycle position in [0, 1) to a sample in [-1, 1]
var waveforms = map[WaveType]func(phase float64, rng *rand.Rand) float64{
	WaveSine: func(phase float64, _ *rand.Rand) float64 {
		return math.Sin(2 * math.Pi * phase)
	},
	WaveSquare: func(phase float64, _ *rand.Rand) float64 {
		if phase < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw: func(phase float64, _ *rand.Rand) float64 {
		return 2*phase - 1
	},
	WaveNoise: func(_ float64, rng *rand.Rand) float64 {
		return 2*rng.Float64() - 1
	},
}

// oscillator is a fixed-length mono tone copied to both channels
type oscillator struct {
	shape     func(float64, *rand.Rand) float64
	step      float64 // phase advance per sample
	phase     float64
	remaining int
	rng       *rand.Rand
}

// NewOscillator creates a tone of the given wave shape lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape, ok := waveforms[wave]
	if !ok {
		shape = waveforms[WaveSine]
	}
	return &oscillator{
		shape:     shape,
		step:      freq / float64(rate),
		remaining: rate.N(duration),
		rng:       rand.New(rand.NewSource(int64(freq*1000) + int64(wave))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remaining <= 0 {
		return 0, false
	}

	n = min(len(samples), o.remaining)
	for i := 0; i < n; i++ {
		v := o.shape(o.phase, o.rng)
		samples[i] = [2]float64{v, v}
		_, o.phase = math.Modf(o.phase + o.step)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps gain up over attack, holds, then ramps down over release
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s and cuts it off after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

// gain returns the multiplier for sample position pos
func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left < e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return max(g, 0)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	left := e.total - e.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a short rising blip
func CreateEatSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	low := NewOscillator(660.0, constants.EatSoundDuration/2, WaveSquare, rate)
	high := NewOscillator(990.0, constants.EatSoundDuration/2, WaveSquare, rate)
	shaped := NewEnvelope(beep.Seq(low, high), constants.EatSoundDuration, constants.EatSoundAttack, constants.EatSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundEat)*0.5)
}

// CreateDeathSound generates a low saw buzz over noise
func CreateDeathSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewOscillator(90.0, constants.DeathSoundDuration, WaveSaw, rate)
	noise := NewOscillator(0, constants.DeathSoundDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(buzz, 0.7), newVolume(noise, 0.2))
	shaped := NewEnvelope(mixed, constants.DeathSoundDuration, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundDeath))
}

// CreateWinSound generates a three-note rising fanfare
func CreateWinSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	seq := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			continue
		}
		note := beep.Take(rate.N(constants.WinNoteDuration), tone)
		seq = append(seq, NewEnvelope(note, constants.WinNoteDuration, constants.WinNoteAttack, constants.WinNoteRelease, rate))
	}

	return newVolume(beep.Seq(seq...), cfg.effectVolume(SoundWin))
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	default:
		return nil
	}
}
