package engine

import (
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/event"
)

func newTestSession() *Session {
	return NewSession(NewEngine(NewFastRand(12), nil), 10, 10)
}

func TestSessionFlow(t *testing.T) {
	ss := newTestSession()
	if ss.Screen != ScreenModeSelect {
		t.Fatalf("Expected mode select, got %v", ss.Screen)
	}

	ss.MoveSelection(1)
	if ss.Selection != core.ModeAccelerated {
		t.Errorf("Expected accelerated selected, got %v", ss.Selection)
	}
	ss.MoveSelection(1)
	if ss.Selection != core.ModeRegular {
		t.Errorf("Expected selection to wrap to regular, got %v", ss.Selection)
	}
	ss.MoveSelection(-1)

	ss.ConfirmSelection()
	if ss.Screen != ScreenInstructions || ss.State.Mode() != core.ModeAccelerated {
		t.Fatalf("Expected accelerated instructions, got %v %v", ss.Screen, ss.State.Mode())
	}

	ss.Start()
	if !ss.Playing() {
		t.Fatalf("Expected playing, got %v", ss.Screen)
	}
	if _, err := uuid.Parse(ss.ID); err != nil {
		t.Errorf("Expected uuid session id, got %q: %v", ss.ID, err)
	}
	if len(ss.State.Items) != constant.AcceleratedInitialItems {
		t.Errorf("Expected %d seeded items, got %d", constant.AcceleratedInitialItems, len(ss.State.Items))
	}

	starts := eventsOf(ss.Engine().Events(), event.EventSessionStart)
	if len(starts) != 1 {
		t.Fatalf("Expected session start event, got %d", len(starts))
	}
	if p := starts[0].Payload.(*event.SessionPayload); p.SessionID != ss.ID || p.Mode != core.ModeAccelerated {
		t.Errorf("Unexpected session payload %+v", p)
	}
}

func TestSessionSteer(t *testing.T) {
	ss := newTestSession()
	if ss.Steer(core.DirUp) {
		t.Error("Expected steering ignored on the menu")
	}

	ss.SelectMode(core.ModeRegular)
	ss.Start()
	if !ss.Steer(core.DirUp) {
		t.Error("Expected steering accepted while playing")
	}

	ss.TogglePause()
	if ss.Steer(core.DirLeft) {
		t.Error("Expected steering ignored while paused")
	}
}

func TestSessionPauseCycle(t *testing.T) {
	ss := newTestSession()
	ss.SelectMode(core.ModeRegular)
	ss.Start()
	q := ss.Engine().Events()
	q.Consume()

	ss.TogglePause()
	if !ss.State.UserPaused {
		t.Fatal("Expected paused")
	}
	ss.TogglePause()
	if ss.State.UserPaused || !ss.State.Resuming || ss.State.ResumeTimer != constant.ResumeGraceDuration {
		t.Fatalf("Expected resume grace, got paused=%v resuming=%v timer=%v",
			ss.State.UserPaused, ss.State.Resuming, ss.State.ResumeTimer)
	}

	// Pausing during the countdown pauses again
	ss.TogglePause()
	if !ss.State.UserPaused || ss.State.Resuming {
		t.Errorf("Expected re-pause, got paused=%v resuming=%v", ss.State.UserPaused, ss.State.Resuming)
	}

	evs := q.Consume()
	want := []event.EventType{event.EventPaused, event.EventResumeStarted, event.EventPaused}
	if len(evs) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(evs))
	}
	for i, ev := range evs {
		if ev.Type != want[i] {
			t.Errorf("Expected event %d to be %v, got %v", i, want[i], ev.Type)
		}
	}
}

func TestSessionForceGameOverAndRestart(t *testing.T) {
	ss := newTestSession()
	ss.SelectMode(core.ModeRegular)
	ss.Start()
	firstID := ss.ID
	ss.State.Score = 6

	ss.ForceGameOver()
	if !ss.State.GameOver || ss.State.Cause != core.CauseQuit {
		t.Fatalf("Expected quit game over, got over=%v cause=%v", ss.State.GameOver, ss.State.Cause)
	}
	if ss.State.Best[core.ModeRegular] != 6 {
		t.Errorf("Expected best 6, got %d", ss.State.Best[core.ModeRegular])
	}

	ss.TogglePause()
	if ss.State.UserPaused {
		t.Error("Expected pause ignored on game over")
	}

	ss.Restart()
	if ss.State.GameOver || ss.State.Score != 0 {
		t.Errorf("Expected fresh round, got over=%v score=%d", ss.State.GameOver, ss.State.Score)
	}
	if ss.State.BestScore() != 6 {
		t.Errorf("Expected best kept across restart, got %d", ss.State.BestScore())
	}
	if ss.ID == firstID {
		t.Error("Expected new session id on restart")
	}
}

func TestSessionReturnToMenuKeepsBestPerMode(t *testing.T) {
	ss := newTestSession()
	ss.SelectMode(core.ModeRegular)
	ss.Start()
	ss.State.Score = 4
	ss.ForceGameOver()

	ss.ReturnToMenu()
	if ss.Screen != ScreenModeSelect {
		t.Fatalf("Expected menu, got %v", ss.Screen)
	}

	ss.SelectMode(core.ModeAccelerated)
	ss.Start()
	if ss.State.BestScore() != 0 {
		t.Errorf("Expected separate accelerated best, got %d", ss.State.BestScore())
	}
	if ss.State.Best[core.ModeRegular] != 4 {
		t.Errorf("Expected regular best kept, got %d", ss.State.Best[core.ModeRegular])
	}
}

func TestSessionTickOnlyWhilePlaying(t *testing.T) {
	ss := newTestSession()
	ss.Tick(1)
	if ss.State.GameTime != 0 {
		t.Errorf("Expected menu to be static, got time %v", ss.State.GameTime)
	}

	ss.SelectMode(core.ModeRegular)
	ss.Start()
	ss.Tick(0.1)
	if ss.State.GameTime != 0.1 {
		t.Errorf("Expected time 0.1, got %v", ss.State.GameTime)
	}
}
