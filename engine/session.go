package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/event"
)

// Screen is the top-level presentation phase
type Screen int

const (
	ScreenModeSelect Screen = iota
	ScreenInstructions
	ScreenPlaying
)

func (s Screen) String() string {
	switch s {
	case ScreenModeSelect:
		return "mode_select"
	case ScreenInstructions:
		return "instructions"
	case ScreenPlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Session is the input-facing controller over one State
// Every reset keeps the per-mode best scores held in State.Best
type Session struct {
	ID        string
	Screen    Screen
	Selection core.GameMode
	State     *State

	engine *Engine
}

// NewSession starts at the mode selection screen on a width x height board
func NewSession(engine *Engine, width, height int) *Session {
	return &Session{
		Screen:    ScreenModeSelect,
		Selection: core.ModeRegular,
		State:     NewState(core.ModeRegular, width, height),
		engine:    engine,
	}
}

// Engine returns the engine driving this session
func (ss *Session) Engine() *Engine {
	return ss.engine
}

// Playing reports whether a round is on screen
func (ss *Session) Playing() bool {
	return ss.Screen == ScreenPlaying
}

// MoveSelection shifts the menu cursor by delta, wrapping around the mode list
func (ss *Session) MoveSelection(delta int) {
	if ss.Screen != ScreenModeSelect {
		return
	}
	n := int(core.GameModeCount)
	ss.Selection = core.GameMode(((int(ss.Selection)+delta)%n + n) % n)
}

// ConfirmSelection chooses the mode under the cursor
func (ss *Session) ConfirmSelection() {
	ss.SelectMode(ss.Selection)
}

// SelectMode fixes the mode for the next rounds and shows the instructions
func (ss *Session) SelectMode(m core.GameMode) {
	if ss.Screen == ScreenPlaying || m >= core.GameModeCount {
		return
	}
	ss.Selection = m
	ss.State.Preset = Preset(m)
	ss.Screen = ScreenInstructions
}

// ShowInstructions switches to the instruction screen from the menu
func (ss *Session) ShowInstructions() {
	if ss.Screen == ScreenModeSelect {
		ss.SelectMode(ss.Selection)
	}
}

// Start begins a round from the instruction screen
func (ss *Session) Start() {
	if ss.Screen != ScreenInstructions {
		return
	}
	ss.begin()
}

// Steer queues a direction; returns whether it was accepted
func (ss *Session) Steer(d core.Direction) bool {
	s := ss.State
	if ss.Screen != ScreenPlaying || s.GameOver || s.Paused() {
		return false
	}
	return s.Queue.Enqueue(d, s.Dir)
}

// TogglePause cycles running -> paused -> resuming; pausing again during the countdown re-pauses
func (ss *Session) TogglePause() {
	s := ss.State
	if ss.Screen != ScreenPlaying || s.GameOver {
		return
	}
	q := ss.engine.Events()

	switch {
	case s.UserPaused:
		s.UserPaused = false
		s.Resuming = true
		s.ResumeTimer = constant.ResumeGraceDuration
		s.resumePulse = 0
		q.Emit(event.EventResumeStarted, &event.ResumePulsePayload{Remaining: s.ResumeTimer}, s.Frame)
	case s.Resuming:
		s.Resuming = false
		s.ResumeTimer = 0
		s.resumePulse = 0
		s.UserPaused = true
		q.Emit(event.EventPaused, nil, s.Frame)
	default:
		s.UserPaused = true
		q.Emit(event.EventPaused, nil, s.Frame)
	}
}

// Restart begins a fresh round in the same mode
func (ss *Session) Restart() {
	if ss.Screen != ScreenPlaying {
		return
	}
	ss.begin()
}

// ReturnToMenu abandons the round and shows mode selection
func (ss *Session) ReturnToMenu() {
	ss.engine.Reset(ss.State)
	ss.Screen = ScreenModeSelect
	ss.Selection = ss.State.Mode()
}

// ForceGameOver ends the running round as a quit
func (ss *Session) ForceGameOver() {
	if ss.Screen != ScreenPlaying {
		return
	}
	ss.engine.ForceEnd(ss.State, core.CauseQuit)
}

// Tick advances the round by dt seconds; other screens are static
func (ss *Session) Tick(dt float64) {
	if ss.Screen != ScreenPlaying {
		return
	}
	ss.engine.Advance(ss.State, dt)
}

func (ss *Session) begin() {
	ss.engine.Reset(ss.State)
	ss.ID = uuid.NewString()
	ss.Screen = ScreenPlaying
	ss.engine.Events().Emit(event.EventSessionStart, &event.SessionPayload{
		Mode:      ss.State.Mode(),
		SessionID: ss.ID,
	}, ss.State.Frame)
}
