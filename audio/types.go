package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Fruit consumed
	SoundDeath                  // Head hit something fatal
	SoundWin                    // Board full
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundEat:   "eat",
	SoundDeath: "death",
	SoundWin:   "win",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Config controls audio output
type Config struct {
	Enabled       bool               `yaml:"enabled"`
	MasterVolume  float64            `yaml:"master_volume"`
	SampleRate    int                `yaml:"sample_rate"`
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

// DefaultConfig returns audio settings used when nothing else is configured
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[string]float64{
			"eat":   0.6,
			"death": 0.8,
			"win":   0.7,
		},
	}
}

// effectVolume returns the combined master and per-effect gain
func (c *Config) effectVolume(s SoundType) float64 {
	vol, ok := c.EffectVolumes[s.String()]
	if !ok {
		vol = 1.0
	}
	return vol * c.MasterVolume
}
