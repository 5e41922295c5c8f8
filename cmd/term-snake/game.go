package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/network"
	"github.com/lixenwraith/term-snake/render"
)

// game owns everything the loop goroutine touches
type game struct {
	screen   tcell.Screen
	session  *engine.Session
	machine  *input.Machine
	renderer *render.TerminalRenderer
	router   *event.Router[*engine.Session]
	clock    *engine.FrameClock
	tp       engine.TimeProvider

	// Optional outer surfaces, nil when disabled
	sound      audio.Player
	spectators *network.Service
}

func newGame(screen tcell.Screen, session *engine.Session, tp engine.TimeProvider, sound audio.Player, spectators *network.Service) *game {
	g := &game{
		screen:     screen,
		session:    session,
		machine:    input.NewMachine(),
		renderer:   render.NewTerminalRenderer(screen),
		router:     event.NewRouter[*engine.Session](session.Engine().Events()),
		clock:      engine.NewFrameClock(tp, constant.MaxFrameDelta),
		tp:         tp,
		sound:      sound,
		spectators: spectators,
	}

	g.router.Tap(g.logEvent)
	if sound != nil {
		g.router.Register(audio.NewCueHandler[*engine.Session](sound))
	}
	if spectators != nil {
		g.router.Tap(spectators.PublishEvent)
	}
	return g
}

// handleEvent applies one terminal event; returns false when the player quits
func (g *game) handleEvent(ev tcell.Event) bool {
	in := g.machine.Process(ev, input.ContextFor(g.session))
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		if g.sound != nil {
			log.Printf("audio muted: %v", g.sound.ToggleMute())
		}
	case input.IntentResize:
		w, h := g.screen.Size()
		g.renderer.Resize(w, h)
		g.screen.Sync()
	default:
		input.Apply(g.session, in)
	}

	// Input can emit notifications (pause, session start); route them before the next frame
	g.router.DispatchAll(g.session)
	return true
}

// frame advances the simulation by wall time, dispatches notifications and draws
func (g *game) frame() {
	g.session.Tick(g.clock.Delta())
	g.router.DispatchAll(g.session)

	if g.spectators != nil {
		g.spectators.PublishSnapshot(g.session, g.tp.Now())
	}
	g.renderer.RenderFrame(g.session)
}

func (g *game) logEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventDebuffPulse, event.EventResumePulse:
		return
	}
	log.Printf("[%s] %s frame=%d %+v", g.session.ID, ev.Type, ev.Frame, ev.Payload)
}
