package wurm

import (
	"github.com/lixenwraith/wurm/constants"
	"github.com/lixenwraith/wurm/core"
)

// Segment is one grid cell of the creature
type Segment struct {
	Pos   core.Point
	Dir   core.Direction
	Glyph rune
}

// Move advances the segment one step along its direction
func (s *Segment) Move() {
	s.Pos = s.Pos.Add(s.Dir)
}

// headGlyph maps a travel direction to the arrow drawn for the head
func headGlyph(d core.Direction) rune {
	switch d {
	case core.Up:
		return constants.GlyphHeadUp
	case core.Down:
		return constants.GlyphHeadDown
	case core.Left:
		return constants.GlyphHeadLeft
	default:
		return constants.GlyphHeadRight
	}
}
