package audio

import (
	"testing"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/event"
)

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(st core.SoundType) bool {
	p.played = append(p.played, st)
	return true
}
func (p *recordingPlayer) ToggleMute() bool { return false }
func (p *recordingPlayer) IsMuted() bool    { return false }
func (p *recordingPlayer) IsRunning() bool  { return true }

func eaten(kind core.ItemKind, applied bool) event.GameEvent {
	return event.GameEvent{Type: event.EventItemEaten, Payload: &event.ItemEatenPayload{Kind: kind, Applied: applied}}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want core.SoundType
		ok   bool
	}{
		{"plain", eaten(core.ItemPlain, true), core.SoundApple, true},
		{"plain debuffed", eaten(core.ItemPlain, false), 0, false},
		{"poison", eaten(core.ItemPoison, true), core.SoundPoison, true},
		{"boost", eaten(core.ItemBoost, true), core.SoundGolden, true},
		{"super boost", eaten(core.ItemSuperBoost, true), core.SoundGolden, true},
		{"teleport", eaten(core.ItemTeleport, true), core.SoundPurple, true},
		{"teleport debuffed", eaten(core.ItemTeleport, false), 0, false},
		{"debuff pulse", event.GameEvent{Type: event.EventDebuffPulse}, core.SoundPoison, true},
		{"resume pulse", event.GameEvent{Type: event.EventResumePulse}, core.SoundPause, true},
		{"game over", event.GameEvent{Type: event.EventGameOver}, core.SoundGameOver, true},
		{"spawn", event.GameEvent{Type: event.EventItemSpawned}, 0, false},
		{"bad payload", event.GameEvent{Type: event.EventItemEaten, Payload: "x"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

func TestCueHandlerRouting(t *testing.T) {
	q := event.NewEventQueue()
	router := event.NewRouter[struct{}](q)
	player := &recordingPlayer{}
	router.Register(NewCueHandler[struct{}](player))

	q.Push(eaten(core.ItemPlain, true))
	q.Push(event.GameEvent{Type: event.EventItemSpawned})
	q.Push(event.GameEvent{Type: event.EventGameOver})

	if n := router.DispatchAll(struct{}{}); n != 3 {
		t.Errorf("Expected 3 dispatched, got %d", n)
	}
	want := []core.SoundType{core.SoundApple, core.SoundGameOver}
	if len(player.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, player.played)
	}
	for i := range want {
		if player.played[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, player.played[i])
		}
	}
}

func TestCueHandlerNilPlayer(t *testing.T) {
	h := NewCueHandler[struct{}](nil)
	h.HandleEvent(struct{}{}, event.GameEvent{Type: event.EventGameOver})
}
