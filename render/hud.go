package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

// effectLabels orders the HUD countdowns
var effectLabels = []struct {
	effect core.Effect
	label  string
}{
	{core.EffectCannotConsume, "Poisoned"},
	{core.EffectSelfImmunity, "Resistance"},
	{core.EffectWallPass, "Resistance II"},
}

// drawHUD renders the score line and the status countdowns above the board
func (r *TerminalRenderer) drawHUD(s *engine.State) {
	y := r.layout.HUDY()
	left := r.layout.X
	right := r.layout.X + r.layout.Width
	base := tcell.StyleDefault.Background(RgbBackground)

	drawText(r.screen, left, y, fmt.Sprintf("Score: %d", s.Score), base.Foreground(RgbText))
	drawRight(r.screen, right, y, fmt.Sprintf("High: %d", s.BestScore()), base.Foreground(RgbTextDim))

	x := left
	for _, el := range effectLabels {
		if !s.Effects.Active(el.effect) {
			continue
		}
		text := fmt.Sprintf("%s: %d", el.label, countdown(s.Effects.Remaining(el.effect)))
		x = drawText(r.screen, x, y+1, text, base.Foreground(EffectColor(el.effect))) + 2
	}
}

// countdown rounds remaining seconds up for display
func countdown(sec float64) int {
	return int(math.Ceil(sec))
}
