package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/engine"
)

// drawCell paints grid cell (col, row) with a solid background; col/row may be -1 or size for the border
func (r *TerminalRenderer) drawCell(col, row int, bg tcell.Color) {
	x, y := r.layout.CellOrigin(col, row)
	style := tcell.StyleDefault.Background(bg)
	for i := 0; i < constant.CellColumns; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawBoard renders border, checkerboard, items and snake
func (r *TerminalRenderer) drawBoard(s *engine.State) {
	for row := -constant.BorderOffset; row < s.Height+constant.BorderOffset; row++ {
		for col := -constant.BorderOffset; col < s.Width+constant.BorderOffset; col++ {
			switch {
			case col < 0 || row < 0 || col >= s.Width || row >= s.Height:
				r.drawCell(col, row, RgbBorder)
			case (col+row)%2 == 0:
				r.drawCell(col, row, RgbCheckerDark)
			default:
				r.drawCell(col, row, RgbBackground)
			}
		}
	}

	for _, it := range s.Items {
		r.drawCell(it.Cell.Col, it.Cell.Row, ItemColor(it.Kind))
	}

	// Body first so the head wins on overlapping cells
	for i := len(s.Snake) - 1; i >= 1; i-- {
		c := s.Snake[i]
		r.drawCell(c.Col, c.Row, RgbSnakeBody)
	}
	if len(s.Snake) > 0 {
		h := s.Snake[0]
		r.drawCell(h.Col, h.Row, RgbSnakeHead)
	}
}
