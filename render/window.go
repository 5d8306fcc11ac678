package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/wurm/config"
	"github.com/lixenwraith/wurm/constants"
	"github.com/lixenwraith/wurm/ledger"
	"github.com/mattn/go-runewidth"
)

// Line is one row of window content
type Line struct {
	Text   string
	Style  tcell.Style
	Center bool
}

// Window is a boxed modal drawn centred on the screen
type Window struct {
	Title      string
	TitleStyle tcell.Style
	Lines      []Line
	Border     tcell.Style
	Fill       tcell.Style

	// Frameless windows draw only their lines, used for banners
	Frameless bool
}

// Size returns the outer dimensions of the window
func (w *Window) Size() (width, height int) {
	inner := runewidth.StringWidth(w.Title)
	for _, l := range w.Lines {
		inner = max(inner, runewidth.StringWidth(l.Text))
	}

	if w.Frameless {
		return inner, len(w.Lines)
	}

	height = len(w.Lines) + 2
	if w.Title != "" {
		height += 2 // title row and divider
	}
	return inner + 4, height
}

// Draw renders the window centred on screen
func (w *Window) Draw(screen tcell.Screen) {
	sw, sh := screen.Size()
	width, height := w.Size()
	x0 := sw/2 - width/2
	y0 := sh/2 - height/2

	if w.Frameless {
		for i, l := range w.Lines {
			x := sw/2 - runewidth.StringWidth(l.Text)/2
			putString(screen, x, y0+i, l.Text, l.Style)
		}
		return
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x0+x, y0+y, ' ', nil, w.Fill)
		}
	}
	drawBox(screen, x0, y0, width, height, w.Border)

	row := y0 + 1
	if w.Title != "" {
		putString(screen, x0+width/2-runewidth.StringWidth(w.Title)/2, row, w.Title, w.TitleStyle)
		row++
		screen.SetContent(x0, row, tcell.RuneLTee, nil, w.Border)
		for x := 1; x < width-1; x++ {
			screen.SetContent(x0+x, row, tcell.RuneHLine, nil, w.Border)
		}
		screen.SetContent(x0+width-1, row, tcell.RuneRTee, nil, w.Border)
		row++
	}

	for _, l := range w.Lines {
		x := x0 + 2
		if l.Center {
			x = x0 + width/2 - runewidth.StringWidth(l.Text)/2
		}
		putString(screen, x, row, l.Text, l.Style)
		row++
	}
}

func drawBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)

	for i := 1; i < w-1; i++ {
		screen.SetContent(x+i, y, tcell.RuneHLine, nil, style)
		screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for i := 1; i < h-1; i++ {
		screen.SetContent(x, y+i, tcell.RuneVLine, nil, style)
		screen.SetContent(x+w-1, y+i, tcell.RuneVLine, nil, style)
	}
}

func putString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// PauseWindow is the "press any key" box
func PauseWindow(p config.Palette) *Window {
	return &Window{
		Lines: []Line{
			{Text: constants.TextPaused, Style: p.Alert, Center: true},
			{Text: constants.TextPressAnyKey, Style: p.Accent},
		},
		Border: p.Border,
		Fill:   p.Base,
	}
}

// BannerWindow is a single frameless line such as the game over message
func BannerWindow(text string, style tcell.Style) *Window {
	return &Window{
		Lines:     []Line{{Text: text, Style: style, Center: true}},
		Frameless: true,
	}
}

// HighscoreWindow lists ledger entries, padded to the ledger capacity
func HighscoreWindow(entries []ledger.Entry, p config.Palette) *Window {
	lines := make([]Line, 0, constants.LedgerCapacity+2)
	for i := 0; i < constants.LedgerCapacity; i++ {
		name, points := "", "-"
		if i < len(entries) {
			name, points = entries[i].Name, fmt.Sprint(entries[i].Points)
		}
		text := fmt.Sprintf("%2d. %s %6s", i+1, runewidth.FillRight(name, constants.LedgerNameLimit), points)
		lines = append(lines, Line{Text: text, Style: p.Accent})
	}
	lines = append(lines, Line{}, Line{Text: constants.TextPressAnyKey, Style: p.Border, Center: true})

	return &Window{
		Title:      constants.TextHighscores,
		TitleStyle: p.Accent,
		Lines:      lines,
		Border:     p.Border,
		Fill:       p.Base,
	}
}

// NamePromptWindow collects the player's name after a qualifying run
func NamePromptWindow(score int, name string, p config.Palette) *Window {
	field := "> " + runewidth.FillRight(name+"_", constants.LedgerNameLimit+1)
	return &Window{
		Title:      constants.TextNamePrompt,
		TitleStyle: p.Alert,
		Lines: []Line{
			{Text: fmt.Sprintf(constants.ScoreFormat, score), Style: p.Accent, Center: true},
			{Text: field, Style: p.Accent, Center: true},
		},
		Border: p.Border,
		Fill:   p.Base,
	}
}
