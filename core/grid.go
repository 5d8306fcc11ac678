package core

import "github.com/gdamore/tcell/v2"

// Kind classifies what occupies a grid cell
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBorder
	KindHead
	KindBody
	KindTail
	KindFruit
	KindLabel // HUD text outside the playfield
)

// Fatal reports whether a head entering a cell of this kind dies
func (k Kind) Fatal() bool {
	switch k {
	case KindBorder, KindHead, KindBody, KindTail:
		return true
	}
	return false
}

// Cell represents a single cell in the grid
type Cell struct {
	Rune  rune
	Style tcell.Style
	Kind  Kind
}

// Blank is the content of a free cell
var Blank = Cell{Rune: ' ', Style: tcell.StyleDefault, Kind: KindEmpty}

// Free reports whether nothing occupies the cell
func (c Cell) Free() bool {
	return c.Kind == KindEmpty
}

// Surface is the cell store the game logic reads and writes.
// Writes must be visible to subsequent reads immediately.
type Surface interface {
	Width() int
	Height() int
	Cell(x, y int) (Cell, bool)
	SetCell(x, y int, cell Cell) bool
}

// Grid is the logical playfield: a 2D array of cells with dirty tracking.
// The terminal is a projection of it; collision checks never read the terminal.
type Grid struct {
	width  int
	height int
	lines  [][]Cell
	dirty  map[Point]bool
}

// NewGrid creates a blank grid with the given dimensions
func NewGrid(width, height int) *Grid {
	lines := make([][]Cell, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			lines[y][x] = Blank
		}
	}

	return &Grid{
		width:  width,
		height: height,
		lines:  lines,
		dirty:  make(map[Point]bool),
	}
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Cell returns the cell at the given position
func (g *Grid) Cell(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.lines[y][x], true
}

// SetCell sets the cell at the given position and marks it as dirty
func (g *Grid) SetCell(x, y int, cell Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}

	g.lines[y][x] = cell
	g.dirty[Point{X: x, Y: y}] = true
	return true
}

// SetContent writes a rune of the given kind and style
func (g *Grid) SetContent(x, y int, r rune, style tcell.Style, kind Kind) bool {
	return g.SetCell(x, y, Cell{Rune: r, Style: style, Kind: kind})
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Clear blanks every cell and marks the whole grid dirty
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.lines[y][x] = Blank
		}
	}
	g.MarkAllDirty()
}

// DirtyRegions returns all dirty positions
func (g *Grid) DirtyRegions() []Point {
	regions := make([]Point, 0, len(g.dirty))
	for p := range g.dirty {
		regions = append(regions, p)
	}
	return regions
}

// ClearDirty clears all dirty flags
func (g *Grid) ClearDirty() {
	g.dirty = make(map[Point]bool)
}

// MarkAllDirty forces a full repaint on the next flush
func (g *Grid) MarkAllDirty() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.dirty[Point{X: x, Y: y}] = true
		}
	}
}

// CountKind returns how many cells hold the given kind
func (g *Grid) CountKind(kind Kind) int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.lines[y][x].Kind == kind {
				n++
			}
		}
	}
	return n
}
