// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/wurm/audio"
	"github.com/lixenwraith/wurm/constants"
	"github.com/lixenwraith/wurm/fruit"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Fruit set names
const (
	FruitSetClassic = "classic"
	FruitSetReduced = "reduced"
)

// Config holds everything a component needs to know about the session.
// Width and Height come from the terminal, never from file.
type Config struct {
	Width  int `yaml:"-"`
	Height int `yaml:"-"`

	Palette    PaletteConfig `yaml:"palette"`
	FruitSet   string        `yaml:"fruit_set"`
	Fruits     []FruitConfig `yaml:"fruits"`
	LedgerPath string        `yaml:"ledger_path"`
	Audio      audio.Config  `yaml:"audio"`
}

// PaletteConfig holds hex colours
type PaletteConfig struct {
	CreatureFg string `yaml:"creature_fg"`
	CreatureBg string `yaml:"creature_bg"`
	AlertFg    string `yaml:"alert_fg"`
	AccentFg   string `yaml:"accent_fg"`
	BorderFg   string `yaml:"border_fg"`
	Background string `yaml:"background"`
}

// FruitConfig is one explicit fruit entry; overrides FruitSet when present
type FruitConfig struct {
	Glyph  string `yaml:"glyph"`
	Points int    `yaml:"points"`
}

// Palette is the resolved set of styles
type Palette struct {
	Creature tcell.Style
	Alert    tcell.Style
	Accent   tcell.Style
	Border   tcell.Style
	Base     tcell.Style
}

// Load reads embedded defaults, merges the optional user file at path, then
// applies environment overrides. An empty path uses defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults. Panics if they are broken.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// applyEnv overlays WURM_* environment variables
func (c *Config) applyEnv() {
	if enabled := os.Getenv("WURM_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// 0-100 mapped to 0.0-1.0
	if volume := os.Getenv("WURM_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if path := os.Getenv("WURM_LEDGER_PATH"); path != "" {
		c.LedgerPath = path
	}
}

// Validate checks the palette, fruit table and paths
func (c *Config) Validate() error {
	if _, err := c.Styles(); err != nil {
		return err
	}
	if _, err := c.FruitTable(); err != nil {
		return err
	}
	if c.LedgerPath == "" {
		return fmt.Errorf("ledger_path is empty")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// FruitTable resolves the configured fruit set
func (c *Config) FruitTable() (*fruit.Table, error) {
	if len(c.Fruits) > 0 {
		fruits := make([]fruit.Fruit, 0, len(c.Fruits))
		for _, f := range c.Fruits {
			r, size := utf8.DecodeRuneInString(f.Glyph)
			if r == utf8.RuneError || size != len(f.Glyph) {
				return nil, fmt.Errorf("fruit glyph %q must be a single character", f.Glyph)
			}
			fruits = append(fruits, fruit.Fruit{Glyph: r, Points: f.Points})
		}
		return fruit.NewTable(fruits)
	}

	switch c.FruitSet {
	case FruitSetClassic, "":
		return fruit.NewTable(fruit.Classic)
	case FruitSetReduced:
		return fruit.NewTable(fruit.Reduced)
	default:
		return nil, fmt.Errorf("unknown fruit_set %q", c.FruitSet)
	}
}

// Styles resolves the hex palette into tcell styles
func (c *Config) Styles() (Palette, error) {
	var p Palette

	bg, err := parseColor("background", c.Palette.Background)
	if err != nil {
		return p, err
	}
	creatureFg, err := parseColor("creature_fg", c.Palette.CreatureFg)
	if err != nil {
		return p, err
	}
	creatureBg, err := parseColor("creature_bg", c.Palette.CreatureBg)
	if err != nil {
		return p, err
	}
	alert, err := parseColor("alert_fg", c.Palette.AlertFg)
	if err != nil {
		return p, err
	}
	accent, err := parseColor("accent_fg", c.Palette.AccentFg)
	if err != nil {
		return p, err
	}
	border, err := parseColor("border_fg", c.Palette.BorderFg)
	if err != nil {
		return p, err
	}

	base := tcell.StyleDefault.Background(bg)
	p = Palette{
		Creature: tcell.StyleDefault.Foreground(creatureFg).Background(creatureBg),
		Alert:    base.Foreground(alert).Bold(true),
		Accent:   base.Foreground(accent),
		Border:   base.Foreground(border),
		Base:     base,
	}
	return p, nil
}

func parseColor(name, hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("palette %s: %w", name, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// WithScreen returns a copy sized to the terminal
func (c *Config) WithScreen(width, height int) *Config {
	out := *c
	out.Width = width
	out.Height = height
	return &out
}

// FitsScreen reports whether the configured size can hold the playfield
func (c *Config) FitsScreen() bool {
	return c.Width >= constants.MinWidth && c.Height >= constants.MinHeight
}
