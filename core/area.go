package core

import "github.com/lixenwraith/wurm/constants"

// Area represents a rectangular region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether (x, y) lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Cells returns the number of cells in the area
func (a Area) Cells() int {
	if a.Width <= 0 || a.Height <= 0 {
		return 0
	}
	return a.Width * a.Height
}

// Playfield returns the playable area inside the border of a width x height screen
func Playfield(width, height int) Area {
	return Area{
		X:      1,
		Y:      constants.TopBorderRow + 1,
		Width:  width - 2,
		Height: height - constants.BottomBorderInset - 1,
	}
}

// BottomBorderRow returns the row of the lower border
func BottomBorderRow(height int) int {
	return height - constants.BottomBorderInset
}

// ScoreRow returns the row the score label is drawn on
func ScoreRow(height int) int {
	return height - constants.ScoreLineInset
}
