package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/wurm/core"
)

// TerminalRenderer projects the logical grid onto the terminal and draws
// overlay windows above it. Overlays never touch the grid.
type TerminalRenderer struct {
	screen tcell.Screen
	grid   *core.Grid
	base   tcell.Style

	overlayShown bool
}

// NewTerminalRenderer creates a renderer for grid on screen
func NewTerminalRenderer(screen tcell.Screen, grid *core.Grid, base tcell.Style) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		grid:   grid,
		base:   base,
	}
}

// RenderFrame flushes changed grid cells, draws the overlay if any and shows the frame.
// While an overlay is up, or on the frame it goes away, the whole grid is repainted
// so a window that shrinks or changes never leaves stale cells behind.
// tcell only sends the cells that differ, so this costs nothing on the wire.
func (r *TerminalRenderer) RenderFrame(overlay *Window) {
	if r.overlayShown || overlay != nil {
		r.grid.MarkAllDirty()
	}

	r.flush()

	if overlay != nil {
		overlay.Draw(r.screen)
	}
	r.overlayShown = overlay != nil

	r.screen.Show()
}

// Repaint clears the terminal and redraws every grid cell, used after resize
func (r *TerminalRenderer) Repaint() {
	r.screen.SetStyle(r.base)
	r.screen.Clear()
	r.grid.MarkAllDirty()
	r.overlayShown = true
}

// flush copies dirty grid cells to the screen
func (r *TerminalRenderer) flush() {
	for _, p := range r.grid.DirtyRegions() {
		cell, ok := r.grid.Cell(p.X, p.Y)
		if !ok {
			continue
		}
		style := cell.Style
		if cell.Free() {
			style = r.base
		}
		r.screen.SetContent(p.X, p.Y, cell.Rune, nil, style)
	}
	r.grid.ClearDirty()
}
