package audio

import (
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/event"
)

// CueHandler turns simulation notifications into sound cues
// T is the router context, unused here
type CueHandler[T any] struct {
	player Player
}

// NewCueHandler creates a handler playing through p; nil p disables playback
func NewCueHandler[T any](p Player) *CueHandler[T] {
	return &CueHandler[T]{player: p}
}

func (h *CueHandler[T]) HandleEvent(_ T, ev event.GameEvent) {
	if h.player == nil {
		return
	}
	if st, ok := CueFor(ev); ok {
		h.player.Play(st)
	}
}

func (h *CueHandler[T]) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventItemEaten,
		event.EventDebuffPulse,
		event.EventResumePulse,
		event.EventGameOver,
	}
}

// CueFor maps an event to its sound; debuffed no-op consumptions are silent
func CueFor(ev event.GameEvent) (core.SoundType, bool) {
	switch ev.Type {
	case event.EventItemEaten:
		p, ok := ev.Payload.(*event.ItemEatenPayload)
		if !ok || !p.Applied {
			return 0, false
		}
		switch p.Kind {
		case core.ItemPlain:
			return core.SoundApple, true
		case core.ItemPoison:
			return core.SoundPoison, true
		case core.ItemBoost, core.ItemSuperBoost:
			return core.SoundGolden, true
		case core.ItemTeleport:
			return core.SoundPurple, true
		}
	case event.EventDebuffPulse:
		return core.SoundPoison, true
	case event.EventResumePulse:
		return core.SoundPause, true
	case event.EventGameOver:
		return core.SoundGameOver, true
	}
	return 0, false
}
