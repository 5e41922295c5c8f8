package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/core"
)

// Board
var (
	RgbBackground  = tcell.NewRGBColor(0, 0, 0)
	RgbCheckerDark = tcell.NewRGBColor(18, 18, 18)
	RgbBorder      = tcell.NewRGBColor(255, 255, 255)
	RgbSnakeBody   = tcell.NewRGBColor(50, 150, 50)
	RgbSnakeHead   = tcell.NewRGBColor(25, 100, 25)
)

// Items
var (
	RgbPlain      = tcell.NewRGBColor(230, 41, 55)
	RgbPoison     = tcell.NewRGBColor(181, 126, 107)
	RgbBoost      = tcell.NewRGBColor(255, 165, 0)
	RgbSuperBoost = tcell.NewRGBColor(255, 255, 0)
	RgbTeleport   = tcell.NewRGBColor(186, 85, 211)
)

// Text
var (
	RgbText     = tcell.NewRGBColor(255, 255, 255)
	RgbTextDim  = tcell.NewRGBColor(200, 200, 200)
	RgbTitle    = tcell.NewRGBColor(253, 249, 0)
	RgbSelected = tcell.NewRGBColor(0, 228, 48)
	RgbOverlay  = tcell.NewRGBColor(10, 10, 10)
)

// ItemColor returns the board colour of an item kind
func ItemColor(k core.ItemKind) tcell.Color {
	switch k {
	case core.ItemPoison:
		return RgbPoison
	case core.ItemBoost:
		return RgbBoost
	case core.ItemSuperBoost:
		return RgbSuperBoost
	case core.ItemTeleport:
		return RgbTeleport
	default:
		return RgbPlain
	}
}

// EffectColor returns the HUD colour of a status countdown
func EffectColor(e core.Effect) tcell.Color {
	switch e {
	case core.EffectCannotConsume:
		return RgbPoison
	case core.EffectSelfImmunity:
		return RgbBoost
	case core.EffectWallPass:
		return RgbSuperBoost
	default:
		return RgbTextDim
	}
}
