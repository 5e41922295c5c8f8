package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/engine"
)

// Machine parses terminal events into intents
// Stateless across keys: every binding is a single press
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// ContextFor returns the binding context for the session's current screen
func ContextFor(ss *engine.Session) Context {
	switch ss.Screen {
	case engine.ScreenModeSelect:
		return ContextMenu
	case engine.ScreenInstructions:
		return ContextInstructions
	default:
		if ss.State.GameOver {
			return ContextGameOver
		}
		return ContextPlaying
	}
}

// Process converts a polled tcell event
func (m *Machine) Process(ev tcell.Event, ctx Context) Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.Resolve(e, ctx)
	default:
		return Intent{}
	}
}

// Resolve looks up a key press; runes are case-insensitive
func (m *Machine) Resolve(ev *tcell.EventKey, ctx Context) Intent {
	if in, ok := m.keyTable.GlobalKeys[ev.Key()]; ok {
		return in
	}
	if ctx >= contextCount {
		return Intent{}
	}
	if ev.Key() == tcell.KeyRune {
		return m.keyTable.Runes[ctx][unicode.ToLower(ev.Rune())]
	}
	return m.keyTable.Keys[ctx][ev.Key()]
}

// Apply performs a session-level intent; returns false for intents the caller owns
// (quit, mute, resize, none)
func Apply(ss *engine.Session, in Intent) bool {
	switch in.Type {
	case IntentMenuMove:
		ss.MoveSelection(in.Delta)
	case IntentMenuSelect:
		ss.SelectMode(in.Mode)
	case IntentConfirm:
		ss.ConfirmSelection()
	case IntentStart:
		ss.Start()
	case IntentSteer:
		ss.Steer(in.Dir)
	case IntentPause:
		ss.TogglePause()
	case IntentForceOver:
		ss.ForceGameOver()
	case IntentRestart:
		ss.Restart()
	case IntentMenu:
		ss.ReturnToMenu()
	default:
		return false
	}
	return true
}
