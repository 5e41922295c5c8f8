package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/core"
)

// Context selects the binding set for the screen on display
type Context uint8

const (
	ContextMenu Context = iota
	ContextInstructions
	ContextPlaying
	ContextGameOver
	contextCount
)

// KeyTable maps keys to intents per context
// Global bindings are checked first and apply on every screen
type KeyTable struct {
	GlobalKeys map[tcell.Key]Intent
	Keys       [contextCount]map[tcell.Key]Intent
	Runes      [contextCount]map[rune]Intent
}

func steer(d core.Direction) Intent { return Intent{Type: IntentSteer, Dir: d} }

func menuMove(delta int) Intent { return Intent{Type: IntentMenuMove, Delta: delta} }

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	quit := Intent{Type: IntentQuit}
	restart := Intent{Type: IntentRestart}
	menu := Intent{Type: IntentMenu}
	pause := Intent{Type: IntentPause}

	playingRunes := map[rune]Intent{
		'w': steer(core.DirUp),
		's': steer(core.DirDown),
		'a': steer(core.DirLeft),
		'd': steer(core.DirRight),
		'p': pause,
		'q': {Type: IntentForceOver},
		'm': menu,
	}

	return &KeyTable{
		GlobalKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  quit,
			tcell.KeyEscape: quit,
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
		},

		Keys: [contextCount]map[tcell.Key]Intent{
			ContextMenu: {
				tcell.KeyUp:    menuMove(-1),
				tcell.KeyDown:  menuMove(1),
				tcell.KeyEnter: {Type: IntentConfirm},
			},
			ContextInstructions: {
				tcell.KeyEnter: {Type: IntentStart},
			},
			ContextPlaying: {
				tcell.KeyUp:    steer(core.DirUp),
				tcell.KeyDown:  steer(core.DirDown),
				tcell.KeyLeft:  steer(core.DirLeft),
				tcell.KeyRight: steer(core.DirRight),
			},
			ContextGameOver: {
				tcell.KeyEnter: restart,
			},
		},

		Runes: [contextCount]map[rune]Intent{
			ContextMenu: {
				'w': menuMove(-1),
				's': menuMove(1),
				'k': menuMove(-1),
				'j': menuMove(1),
				' ': {Type: IntentConfirm},
				'1': {Type: IntentMenuSelect, Mode: core.ModeRegular},
				'2': {Type: IntentMenuSelect, Mode: core.ModeAccelerated},
				'q': quit,
			},
			ContextInstructions: {
				' ': {Type: IntentStart},
				'm': menu,
				'q': quit,
			},
			ContextPlaying: playingRunes,
			ContextGameOver: {
				'r': restart,
				' ': restart,
				'm': menu,
				'q': quit,
			},
		},
	}
}
