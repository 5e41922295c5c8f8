package render

import "github.com/lixenwraith/term-snake/constant"

// Layout places the board inside the terminal
type Layout struct {
	// Screen origin of the top-left border cell
	X, Y int

	// Full size in terminal cells, border and HUD included
	Width, Height int

	gridW, gridH int
}

// NewLayout centers a gridW x gridH board with its HUD in a screenW x screenH terminal
func NewLayout(screenW, screenH, gridW, gridH int) Layout {
	w := (gridW + 2*constant.BorderOffset) * constant.CellColumns
	h := gridH + 2*constant.BorderOffset + constant.HUDRows

	x := (screenW - w) / 2
	y := (screenH - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Layout{X: x, Y: y + constant.HUDRows, Width: w, Height: h, gridW: gridW, gridH: gridH}
}

// Fits reports whether the whole board is visible
func (l Layout) Fits(screenW, screenH int) bool {
	return l.Width <= screenW && l.Height <= screenH
}

// CellOrigin returns the screen position of the left column of grid cell (col, row)
func (l Layout) CellOrigin(col, row int) (int, int) {
	return l.X + (col+constant.BorderOffset)*constant.CellColumns, l.Y + row + constant.BorderOffset
}

// HUDY returns the first HUD row
func (l Layout) HUDY() int {
	return l.Y - constant.HUDRows
}

// CenterY returns the middle row of the board
func (l Layout) CenterY() int {
	return l.Y + (l.gridH+2*constant.BorderOffset)/2
}
