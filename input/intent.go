package input

import "github.com/lixenwraith/term-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, Q on game over
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// Menu and instructions
	IntentMenuMove   // Up/Down, W/S on mode select
	IntentMenuSelect // 1/2 on mode select
	IntentConfirm    // Enter/Space on mode select
	IntentStart      // Enter/Space on instructions

	// Playing
	IntentSteer     // Arrows, WASD
	IntentPause     // P
	IntentForceOver // Q while alive
	IntentRestart   // R/Space on game over
	IntentMenu      // M
)

// Intent is a parsed key press resolved against the current screen
type Intent struct {
	Type  IntentType
	Dir   core.Direction // IntentSteer
	Delta int            // IntentMenuMove
	Mode  core.GameMode  // IntentMenuSelect
}

var intentNames = map[IntentType]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentToggleMute: "toggle_mute",
	IntentResize:     "resize",
	IntentMenuMove:   "menu_move",
	IntentMenuSelect: "menu_select",
	IntentConfirm:    "confirm",
	IntentStart:      "start",
	IntentSteer:      "steer",
	IntentPause:      "pause",
	IntentForceOver:  "force_over",
	IntentRestart:    "restart",
	IntentMenu:       "menu",
}

func (t IntentType) String() string {
	if n, ok := intentNames[t]; ok {
		return n
	}
	return "unknown"
}
