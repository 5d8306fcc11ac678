package constants

// Creature glyphs
const (
	GlyphBody = 'O'
	GlyphTail = 'o'

	// Head arrows point back along the travel direction
	GlyphHeadUp    = 'v'
	GlyphHeadDown  = '^'
	GlyphHeadRight = '<'
	GlyphHeadLeft  = '>'
)

// Border glyphs
const (
	GlyphBorderHorizontal = '-'
	GlyphBorderVertical   = '|'
	GlyphBorderCorner     = '+'
)

// GlyphBlank is written over vacated cells
const GlyphBlank = ' '

// BadGlyphs lists every glyph that kills the head on contact
var BadGlyphs = []rune{
	GlyphBody, GlyphTail,
	GlyphHeadRight, GlyphHeadLeft, GlyphHeadDown, GlyphHeadUp,
	GlyphBorderHorizontal, GlyphBorderVertical, GlyphBorderCorner,
}

// IsBadGlyph reports whether r is fatal to the head
func IsBadGlyph(r rune) bool {
	for _, b := range BadGlyphs {
		if r == b {
			return true
		}
	}
	return false
}
