package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/engine"
)

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	layout Layout
}

// NewTerminalRenderer creates a renderer sized to the screen's current dimensions
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize records new terminal dimensions; the layout is recomputed on the next frame
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Layout returns the layout used for the last frame
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(ss *engine.Session) {
	s := ss.State
	r.layout = NewLayout(r.width, r.height, s.Width, s.Height)

	r.screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	r.screen.Clear()

	if !r.layout.Fits(r.width, r.height) {
		r.drawTooSmall()
		r.screen.Show()
		return
	}

	switch ss.Screen {
	case engine.ScreenModeSelect:
		r.drawModeSelect(ss)
	case engine.ScreenInstructions:
		r.drawInstructions(ss)
	case engine.ScreenPlaying:
		r.drawHUD(s)
		r.drawBoard(s)
		switch {
		case s.GameOver:
			r.drawGameOver(s)
		case s.Resuming:
			r.drawResume(s)
		case s.UserPaused:
			r.drawPause()
		}
	}

	r.screen.Show()
}
