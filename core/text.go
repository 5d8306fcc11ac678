package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// PutString writes text starting at (x, y) as label cells, clipped to the surface.
// Returns the column after the last written rune.
func PutString(s Surface, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x, y, Cell{Rune: r, Style: style, Kind: KindLabel})
		x += w
	}
	return x
}

// CenterString writes text horizontally centred on row y
func CenterString(s Surface, y int, text string, style tcell.Style) int {
	x := CenterColumn(s.Width(), text)
	return PutString(s, x, y, text, style)
}

// CenterColumn returns the starting column that centres text in width
func CenterColumn(width int, text string) int {
	x := width/2 - runewidth.StringWidth(text)/2
	if x < 0 {
		x = 0
	}
	return x
}

// ClearRow blanks every cell of row y
func ClearRow(s Surface, y int) {
	for x := 0; x < s.Width(); x++ {
		s.SetCell(x, y, Blank)
	}
}
