// Package engine drives the game one tick at a time: it owns the logical
// grid, the creature, fruit placement and the high score ledger.
package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/lixenwraith/wurm/config"
	"github.com/lixenwraith/wurm/constants"
	"github.com/lixenwraith/wurm/core"
	"github.com/lixenwraith/wurm/fruit"
	"github.com/lixenwraith/wurm/input"
	"github.com/lixenwraith/wurm/ledger"
	"github.com/lixenwraith/wurm/render"
	"github.com/lixenwraith/wurm/wurm"
)

// ErrTooSmall is returned when the terminal cannot hold the playfield
var ErrTooSmall = errors.New("terminal too small")

// Sounds is the audio feedback the game emits
type Sounds interface {
	PlayEat()
	PlayDeath()
	PlayWin()
}

// FruitPlacer puts a fruit on a free cell, false when the board is full
type FruitPlacer interface {
	Place(s core.Surface) bool
}

type silence struct{}

func (silence) PlayEat()   {}
func (silence) PlayDeath() {}
func (silence) PlayWin()   {}

// Game holds all session state
type Game struct {
	cfg     *config.Config
	palette config.Palette
	fruits  *fruit.Table

	grid   *core.Grid
	placer FruitPlacer
	wurm   *wurm.Wurm
	ledger *ledger.Ledger
	sounds Sounds

	phase GamePhase

	// Banner state
	bannerText  string
	bannerTicks int

	// Last finished run
	lastScore int
	name      []rune

	frame uint64
}

// NewGame builds a session sized to cfg.Width x cfg.Height and shows the score table
func NewGame(cfg *config.Config, l *ledger.Ledger, rng *rand.Rand, sounds Sounds) (*Game, error) {
	if !cfg.FitsScreen() {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, cfg.Width, cfg.Height, constants.MinWidth, constants.MinHeight)
	}

	palette, err := cfg.Styles()
	if err != nil {
		return nil, err
	}
	fruits, err := cfg.FruitTable()
	if err != nil {
		return nil, err
	}
	if sounds == nil {
		sounds = silence{}
	}
	if l == nil {
		l = ledger.New()
	}

	g := &Game{
		cfg:     cfg,
		palette: palette,
		fruits:  fruits,
		grid:    core.NewGrid(cfg.Width, cfg.Height),
		placer:  fruit.NewPlacer(rng, fruits, palette.Accent),
		ledger:  l,
		sounds:  sounds,
		phase:   PhaseHighscores,
	}
	g.resetField()

	return g, nil
}

// SetPlacer replaces the fruit placer
func (g *Game) SetPlacer(p FruitPlacer) {
	g.placer = p
}

// Tick advances the session by one step given this tick's input
func (g *Game) Tick(in input.Intent) GamePhase {
	g.frame++

	switch g.phase {
	case PhaseHighscores:
		g.tickHighscores(in)
	case PhasePlaying:
		g.tickPlaying(in)
	case PhasePaused:
		g.tickPaused(in)
	case PhaseBanner:
		g.tickBanner(in)
	case PhaseNameEntry:
		g.tickNameEntry(in)
	}

	return g.phase
}

func (g *Game) tickHighscores(in input.Intent) {
	switch {
	case in.Type == input.IntentQuit || in.Type == input.IntentCancel:
		g.transition(PhaseQuit)
	case in.IsKey():
		g.transition(PhasePlaying)
	}
}

func (g *Game) tickPaused(in input.Intent) {
	switch {
	case in.Type == input.IntentQuit:
		g.transition(PhaseQuit)
	case in.IsKey():
		g.transition(PhasePlaying)
	}
}

func (g *Game) tickPlaying(in input.Intent) {
	switch in.Type {
	case input.IntentQuit, input.IntentCancel:
		g.transition(PhaseQuit)
		return
	case input.IntentPause:
		g.transition(PhasePaused)
		return
	}

	if dir, ok := in.Direction(); ok {
		g.wurm.Turn(dir)
	}

	g.wurm.Move()
	switch g.wurm.Draw(g.grid) {
	case wurm.Died:
		g.sounds.PlayDeath()
		g.endRun(constants.TextGameOver)
	case wurm.Ate:
		g.sounds.PlayEat()
		if !g.placer.Place(g.grid) {
			g.sounds.PlayWin()
			g.endRun(constants.TextWin)
		}
	}
}

func (g *Game) tickBanner(in input.Intent) {
	if in.Type == input.IntentQuit {
		g.transition(PhaseQuit)
		return
	}

	g.bannerTicks--
	if g.bannerTicks > 0 {
		return
	}

	if g.lastScore > 0 && g.ledger.IsHighscore(g.lastScore) {
		g.name = g.name[:0]
		g.transition(PhaseNameEntry)
		return
	}
	g.startNextRun()
}

func (g *Game) tickNameEntry(in input.Intent) {
	// Bound runes such as 'q' are typed, only Ctrl+C and Ctrl+Q quit
	if in.Type == input.IntentQuit && in.Rune == 0 {
		g.transition(PhaseQuit)
		return
	}

	switch in.Type {
	case input.IntentTextConfirm:
		g.commitName(string(g.name))
	case input.IntentCancel:
		g.commitName("")
	case input.IntentTextBackspace:
		if len(g.name) > 0 {
			g.name = g.name[:len(g.name)-1]
		}
	default:
		if in.Rune != 0 && len(g.name) < constants.LedgerNameLimit {
			g.name = append(g.name, in.Rune)
		}
	}
}

func (g *Game) commitName(name string) {
	g.ledger.Add(g.lastScore, name)
	log.Printf("engine: highscore %d recorded for %q", g.lastScore, ledger.CleanName(name))
	g.startNextRun()
}

// endRun freezes the finished creature and shows the banner
func (g *Game) endRun(text string) {
	g.lastScore = g.wurm.Score()
	g.bannerText = text
	g.bannerTicks = constants.BannerTicks
	log.Printf("engine: run ended (%s) score=%d frame=%d", text, g.lastScore, g.frame)
	g.transition(PhaseBanner)
}

// startNextRun redraws the field with a fresh creature behind the score table
func (g *Game) startNextRun() {
	g.resetField()
	g.transition(PhaseHighscores)
}

func (g *Game) transition(to GamePhase) {
	if !CanTransition(g.phase, to) {
		log.Printf("engine: invalid phase transition %s -> %s", g.phase, to)
		return
	}
	g.phase = to
}

// resetField clears the grid, draws the border, spawns a creature and seeds fruit
func (g *Game) resetField() {
	g.grid.Clear()
	g.drawBorder()

	g.wurm = wurm.New(g.fruits, wurm.Styles{Creature: g.palette.Creature, Score: g.palette.Accent})
	g.wurm.Draw(g.grid)

	for i := 0; i < constants.InitialFruitCount; i++ {
		if !g.placer.Place(g.grid) {
			break
		}
	}
}

func (g *Game) drawBorder() {
	w, h := g.grid.Width(), g.grid.Height()
	bottom := core.BottomBorderRow(h)
	style := g.palette.Border

	for _, y := range []int{constants.TopBorderRow, bottom} {
		g.grid.SetContent(0, y, constants.GlyphBorderCorner, style, core.KindBorder)
		for x := 1; x < w-1; x++ {
			g.grid.SetContent(x, y, constants.GlyphBorderHorizontal, style, core.KindBorder)
		}
		g.grid.SetContent(w-1, y, constants.GlyphBorderCorner, style, core.KindBorder)
	}
	for y := constants.TopBorderRow + 1; y < bottom; y++ {
		g.grid.SetContent(0, y, constants.GlyphBorderVertical, style, core.KindBorder)
		g.grid.SetContent(w-1, y, constants.GlyphBorderVertical, style, core.KindBorder)
	}
}

// Overlay returns the modal window for the current phase, nil while playing
func (g *Game) Overlay() *render.Window {
	switch g.phase {
	case PhaseHighscores:
		return render.HighscoreWindow(g.ledger.Entries(), g.palette)
	case PhasePaused:
		return render.PauseWindow(g.palette)
	case PhaseBanner:
		return render.BannerWindow(g.bannerText, g.palette.Alert)
	case PhaseNameEntry:
		return render.NamePromptWindow(g.lastScore, string(g.name), g.palette)
	default:
		return nil
	}
}

// Phase returns the current phase
func (g *Game) Phase() GamePhase {
	return g.phase
}

// Grid returns the logical playfield
func (g *Game) Grid() *core.Grid {
	return g.grid
}

// Wurm returns the live creature
func (g *Game) Wurm() *wurm.Wurm {
	return g.wurm
}

// Ledger returns the high score ledger
func (g *Game) Ledger() *ledger.Ledger {
	return g.ledger
}

// LastScore returns the score of the most recently finished run
func (g *Game) LastScore() int {
	return g.lastScore
}

// Palette returns the resolved styles
func (g *Game) Palette() config.Palette {
	return g.palette
}
