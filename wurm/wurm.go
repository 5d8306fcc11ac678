// Package wurm implements the creature: movement, delayed growth and
// collision against the logical grid.
package wurm

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/wurm/constants"
	"github.com/lixenwraith/wurm/core"
	"github.com/lixenwraith/wurm/fruit"
)

// Outcome is the result of a draw step
type Outcome uint8

const (
	Nothing Outcome = iota
	Ate
	Died
)

func (o Outcome) String() string {
	switch o {
	case Ate:
		return "ate"
	case Died:
		return "died"
	default:
		return "nothing"
	}
}

// Styles holds the styles the creature renders with
type Styles struct {
	Creature tcell.Style
	Score    tcell.Style
}

// Wurm is the player-controlled creature.
// A Wurm that reported Died must be replaced, not reused.
type Wurm struct {
	head Segment
	body []Segment // head-to-tail order
	tail Segment

	pendingGrowth int

	prevTail    core.Point
	hasPrevTail bool

	fruits *fruit.Table
	styles Styles
}

// New creates a creature at the fixed starting position facing right
func New(fruits *fruit.Table, styles Styles) *Wurm {
	w := &Wurm{
		head: Segment{
			Pos:   core.Point{X: constants.StartHeadX, Y: constants.StartHeadY},
			Dir:   core.Right,
			Glyph: headGlyph(core.Right),
		},
		body:   make([]Segment, 0, constants.StartBodyCount*4),
		fruits: fruits,
		styles: styles,
	}

	for i := 1; i <= constants.StartBodyCount; i++ {
		w.body = append(w.body, Segment{
			Pos:   core.Point{X: constants.StartHeadX - i, Y: constants.StartHeadY},
			Dir:   core.Right,
			Glyph: constants.GlyphBody,
		})
	}

	w.tail = Segment{
		Pos:   core.Point{X: constants.StartHeadX - constants.StartBodyCount - 1, Y: constants.StartHeadY},
		Dir:   core.Right,
		Glyph: constants.GlyphTail,
	}

	return w
}

// Turn points the head in a new direction.
// A turn back onto the first body segment is ignored and reports false.
func (w *Wurm) Turn(d core.Direction) bool {
	if d.IsZero() {
		return false
	}
	if len(w.body) > 0 && w.head.Pos.Add(d) == w.body[0].Pos {
		return false
	}

	w.head.Dir = d
	w.head.Glyph = headGlyph(d)
	return true
}

// Move advances the creature one cell.
// Each body segment takes its predecessor's old cell. While growth is pending
// a new segment fills the cell vacated by the last body segment and the tail stays put.
func (w *Wurm) Move() {
	w.prevTail = w.tail.Pos
	w.hasPrevTail = true

	vacated, vacatedDir := w.head.Pos, w.head.Dir
	w.head.Move()

	for i := range w.body {
		seg := &w.body[i]
		vacated, seg.Pos = seg.Pos, vacated
		vacatedDir, seg.Dir = seg.Dir, vacatedDir
	}

	if w.pendingGrowth > 0 {
		w.body = append(w.body, Segment{Pos: vacated, Dir: vacatedDir, Glyph: constants.GlyphBody})
		w.pendingGrowth--
		return
	}

	w.tail.Pos = vacated
	w.tail.Dir = vacatedDir
}

// Draw checks the cell under the head, then renders the creature and score.
// On Died nothing is written so the last valid frame stays on screen.
func (w *Wurm) Draw(s core.Surface) Outcome {
	outcome := Nothing

	target, ok := s.Cell(w.head.Pos.X, w.head.Pos.Y)
	if !ok || target.Kind.Fatal() {
		return Died
	}
	if target.Kind == core.KindFruit {
		if pts, known := w.fruits.Points(target.Rune); known {
			w.pendingGrowth += pts
			outcome = Ate
		}
	}

	w.put(s, w.head, core.KindHead)
	for _, seg := range w.body {
		w.put(s, seg, core.KindBody)
	}
	if w.hasPrevTail {
		s.SetCell(w.prevTail.X, w.prevTail.Y, core.Blank)
	}
	w.put(s, w.tail, core.KindTail)

	scoreRow := core.ScoreRow(s.Height())
	core.ClearRow(s, scoreRow)
	core.CenterString(s, scoreRow, fmt.Sprintf(constants.ScoreFormat, w.Score()), w.styles.Score)

	return outcome
}

func (w *Wurm) put(s core.Surface, seg Segment, kind core.Kind) {
	s.SetCell(seg.Pos.X, seg.Pos.Y, core.Cell{Rune: seg.Glyph, Style: w.styles.Creature, Kind: kind})
}

// Score is derived from growth beyond the starting body
func (w *Wurm) Score() int {
	grown := len(w.body) - constants.StartBodyCount
	if grown < 0 {
		return 0
	}
	return constants.ScorePerSegment * grown
}

// Head returns the head position
func (w *Wurm) Head() core.Point {
	return w.head.Pos
}

// HeadGlyph returns the arrow currently drawn for the head
func (w *Wurm) HeadGlyph() rune {
	return w.head.Glyph
}

// Direction returns the head's travel direction
func (w *Wurm) Direction() core.Direction {
	return w.head.Dir
}

// Body returns the body positions in head-to-tail order
func (w *Wurm) Body() []core.Point {
	out := make([]core.Point, len(w.body))
	for i, seg := range w.body {
		out[i] = seg.Pos
	}
	return out
}

// Tail returns the tail position
func (w *Wurm) Tail() core.Point {
	return w.tail.Pos
}

// PendingGrowth returns the cells still owed to the body
func (w *Wurm) PendingGrowth() int {
	return w.pendingGrowth
}

// Length returns the visible length including head and tail
func (w *Wurm) Length() int {
	return len(w.body) + 2
}
