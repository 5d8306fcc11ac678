package fruit

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/wurm/constants"
	"github.com/lixenwraith/wurm/core"
)

// Placer drops reward glyphs onto free playfield cells
type Placer struct {
	rng   *rand.Rand
	table *Table
	style tcell.Style
}

// NewPlacer creates a placer drawing fruit from table with the given style
func NewPlacer(rng *rand.Rand, table *Table, style tcell.Style) *Placer {
	return &Placer{
		rng:   rng,
		table: table,
		style: style,
	}
}

// Place puts one random fruit on a free cell.
// Returns false only when no free playfield cell exists.
func (p *Placer) Place(s core.Surface) bool {
	area := core.Playfield(s.Width(), s.Height())
	if area.Cells() == 0 {
		return false
	}

	// First pick plus a bounded number of retries
	for attempt := 0; attempt <= constants.FruitPlacementRetries; attempt++ {
		x := area.X + p.rng.Intn(area.Width)
		y := area.Y + p.rng.Intn(area.Height)
		if p.tryPlace(s, x, y) {
			return true
		}
	}

	// Last resort: row-major scan from the top-left playable cell
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			if p.tryPlace(s, x, y) {
				return true
			}
		}
	}
	return false
}

func (p *Placer) tryPlace(s core.Surface, x, y int) bool {
	cell, ok := s.Cell(x, y)
	if !ok || !cell.Free() {
		return false
	}

	f := p.table.At(p.rng.Intn(p.table.Len()))
	return s.SetCell(x, y, core.Cell{Rune: f.Glyph, Style: p.style, Kind: core.KindFruit})
}
