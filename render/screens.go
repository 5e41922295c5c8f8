package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

var modeLabels = [core.GameModeCount]string{
	core.ModeRegular:     "Regular",
	core.ModeAccelerated: "Accelerated",
}

// instructionRows lists item kinds in legend order
var instructionRows = []struct {
	kind core.ItemKind
	text string
}{
	{core.ItemPlain, "Red (82%): +1 point, grow"},
	{core.ItemPoison, "Brown (10%): reverse, no eating for 10s"},
	{core.ItemBoost, "Orange (4%): +2 points, pass through self 10s"},
	{core.ItemSuperBoost, "Yellow (1%): Orange plus pass through walls"},
	{core.ItemTeleport, "Purple (3%): teleport to a random cell"},
}

func (r *TerminalRenderer) centerX() int {
	return r.layout.X + r.layout.Width/2
}

// drawModeSelect renders the mode menu with the cursor on ss.Selection
func (r *TerminalRenderer) drawModeSelect(ss *engine.Session) {
	base := tcell.StyleDefault.Background(RgbBackground)
	cx := r.centerX()
	y := r.layout.CenterY() - 5

	drawCentered(r.screen, cx, y, "SNAKE GAME", base.Foreground(RgbTitle).Bold(true))
	drawCentered(r.screen, cx, y+2, "Select Game Mode", base.Foreground(RgbText))

	for i := core.GameMode(0); i < core.GameModeCount; i++ {
		row := y + 4 + int(i)*2
		style := base.Foreground(RgbTextDim)
		if i == ss.Selection {
			style = base.Foreground(RgbSelected).Bold(true)
			label := modeLabels[i]
			lx := cx - len(label)/2
			r.screen.SetContent(lx-2, row, constant.GlyphArrow, nil, style)
		}
		drawCentered(r.screen, cx, row, modeLabels[i], style)
	}

	drawCentered(r.screen, cx, y+9, "Use UP/DOWN or W/S to select", base.Foreground(RgbTextDim))
	drawCentered(r.screen, cx, y+10, "SPACE or ENTER to confirm", base.Foreground(RgbTextDim))
}

// drawInstructions renders the item legend and controls for the chosen mode
func (r *TerminalRenderer) drawInstructions(ss *engine.Session) {
	base := tcell.StyleDefault.Background(RgbBackground)
	cx := r.centerX()
	x := r.layout.X + 2
	y := r.layout.Y

	drawCentered(r.screen, cx, y, fmt.Sprintf("%s MODE", modeLabels[ss.State.Mode()]), base.Foreground(RgbTitle).Bold(true))

	y += 2
	drawText(r.screen, x, y, "APPLE TYPES", base.Foreground(RgbText).Bold(true))
	for i, row := range instructionRows {
		ry := y + 1 + i
		r.screen.SetContent(x, ry, constant.GlyphBlock, nil, base.Foreground(ItemColor(row.kind)))
		r.screen.SetContent(x+1, ry, constant.GlyphBlock, nil, base.Foreground(ItemColor(row.kind)))
		drawText(r.screen, x+3, ry, row.text, base.Foreground(RgbTextDim))
	}

	y += len(instructionRows) + 2
	drawText(r.screen, x, y, "CONTROLS", base.Foreground(RgbText).Bold(true))
	controls := []string{
		"Arrows or WASD: steer",
		"P: pause    Q: end game",
		"M: menu     Ctrl+S: mute",
	}
	for i, line := range controls {
		drawText(r.screen, x, y+1+i, line, base.Foreground(RgbTextDim))
	}
	if ss.State.Preset.Despawns {
		drawText(r.screen, x, y+len(controls)+1, "Apples vanish after 13-18s", base.Foreground(RgbPoison))
	}

	drawCentered(r.screen, cx, r.layout.Y+r.layout.Height-constant.HUDRows-1, "Press SPACE or ENTER to start", base.Foreground(RgbSelected))
}

// drawPause overlays the pause banner on the board
func (r *TerminalRenderer) drawPause() {
	base := tcell.StyleDefault.Background(RgbOverlay)
	cx := r.centerX()
	cy := r.layout.CenterY()
	r.drawBanner(cy-1, 3)
	drawCentered(r.screen, cx, cy-1, "PAUSED", base.Foreground(RgbTitle).Bold(true))
	drawCentered(r.screen, cx, cy+1, "Press P to resume (or Q to quit)", base.Foreground(RgbText))
}

// drawResume overlays the countdown shown during the resume grace window
func (r *TerminalRenderer) drawResume(s *engine.State) {
	base := tcell.StyleDefault.Background(RgbOverlay)
	cy := r.layout.CenterY()
	r.drawBanner(cy, 1)
	drawCentered(r.screen, r.centerX(), cy, fmt.Sprintf("Resuming in %d...", countdown(s.ResumeTimer)), base.Foreground(RgbText).Bold(true))
}

// drawGameOver renders the final tally and hints
func (r *TerminalRenderer) drawGameOver(s *engine.State) {
	base := tcell.StyleDefault.Background(RgbOverlay)
	cx := r.centerX()
	cy := r.layout.CenterY()
	r.drawBanner(cy-4, 9)

	drawCentered(r.screen, cx, cy-4, "GAME OVER", base.Foreground(RgbPlain).Bold(true))
	drawCentered(r.screen, cx, cy-2, fmt.Sprintf("Final Score: %d", s.Score), base.Foreground(RgbText))
	drawCentered(r.screen, cx, cy-1, fmt.Sprintf("High Score: %d", s.BestScore()), base.Foreground(RgbTitle))
	drawCentered(r.screen, cx, cy+1, "Press R or SPACE to restart", base.Foreground(RgbTextDim))
	drawCentered(r.screen, cx, cy+2, "Press M to return to menu", base.Foreground(RgbTextDim))
	drawCentered(r.screen, cx, cy+3, "Press ESC to exit or Q to quit", base.Foreground(RgbTextDim))
}

// drawBanner darkens rows [y, y+h) across the board interior
func (r *TerminalRenderer) drawBanner(y, h int) {
	inset := constant.BorderOffset * constant.CellColumns
	fillRect(r.screen, r.layout.X+inset, y, r.layout.Width-2*inset, h, tcell.StyleDefault.Background(RgbOverlay))
}

// drawTooSmall replaces the frame when the terminal cannot fit the board
func (r *TerminalRenderer) drawTooSmall() {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbPoison)
	msg := fmt.Sprintf("Terminal too small: need %dx%d", r.layout.Width, r.layout.Height)
	drawCentered(r.screen, r.width/2, r.height/2, msg, style)
}
