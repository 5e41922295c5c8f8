package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s from (x, y) and returns the column after the last glyph
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawCentered writes text centered on column cx
func drawCentered(s tcell.Screen, cx, y int, text string, style tcell.Style) {
	x := cx - runewidth.StringWidth(text)/2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, style)
}

// drawRight writes text ending at column right (exclusive)
func drawRight(s tcell.Screen, right, y int, text string, style tcell.Style) {
	drawText(s, right-runewidth.StringWidth(text), y, text, style)
}

func fillRect(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}
