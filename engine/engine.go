package engine

import (
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/event"
)

// Engine owns the tick transition over a State
// Not goroutine-safe: call only from the game loop
type Engine struct {
	rng     Random
	queue   *event.EventQueue
	spawner *Spawner
}

// NewEngine creates an engine drawing from rng and emitting into queue
// A nil queue gets a private one, reachable through Events
func NewEngine(rng Random, queue *event.EventQueue) *Engine {
	if queue == nil {
		queue = event.NewEventQueue()
	}
	return &Engine{
		rng:     rng,
		queue:   queue,
		spawner: NewSpawner(rng, queue),
	}
}

// Events returns the notification queue
func (e *Engine) Events() *event.EventQueue {
	return e.queue
}

// Spawner returns the item spawner sharing the engine's random source
func (e *Engine) Spawner() *Spawner {
	return e.spawner
}

// Reset reinitializes s for a new round of its mode, keeping per-mode best scores
func (e *Engine) Reset(s *State) {
	best := s.Best
	*s = State{
		Preset: s.Preset,
		Width:  s.Width,
		Height: s.Height,
		Best:   best,
	}
	s.bestAtStart = s.BestScore()
	s.Snake = []core.Cell{{Col: e.rng.Intn(s.Width), Row: e.rng.Intn(s.Height)}}
	e.spawner.Seed(s)
}

// Advance moves the simulation forward by dt seconds
func (e *Engine) Advance(s *State, dt float64) {
	if dt <= 0 || s.GameOver || s.UserPaused {
		return
	}
	if s.Resuming {
		e.advanceResume(s, dt)
		return
	}

	s.Frame++
	s.GameTime += dt

	e.decayEffects(s, dt)

	if s.Preset.Despawns {
		e.spawner.Sweep(s)
	}

	if s.Effects.Active(core.EffectMoveFreeze) {
		return
	}

	s.MoveAccum += dt
	if s.MoveAccum < s.Preset.MoveInterval {
		return
	}
	s.MoveAccum = 0

	e.drainQueue(s)
	if s.Dir.IsZero() {
		return
	}
	e.step(s)
}

// advanceResume counts down the post-unpause grace window with a pulse every second
// The tick on which the window closes stays frozen
func (e *Engine) advanceResume(s *State, dt float64) {
	s.ResumeTimer -= dt
	s.resumePulse -= dt
	if s.resumePulse <= 0 && s.ResumeTimer > 0 {
		e.queue.Emit(event.EventResumePulse, &event.ResumePulsePayload{Remaining: s.ResumeTimer}, s.Frame)
		s.resumePulse = constant.CuePulseInterval
	}
	if s.ResumeTimer <= 0 {
		s.Resuming = false
		s.ResumeTimer = 0
		s.resumePulse = 0
		e.queue.Emit(event.EventResumed, nil, s.Frame)
	}
}

func (e *Engine) decayEffects(s *State, dt float64) {
	freezeExpired := false
	s.Effects.Decay(dt, func(eff core.Effect) {
		if eff == core.EffectMoveFreeze {
			freezeExpired = true
		}
		e.queue.Emit(event.EventEffectExpired, &event.EffectPayload{Effect: eff}, s.Frame)
	})

	if s.Effects.Active(core.EffectCannotConsume) {
		s.debuffPulse -= dt
		if s.debuffPulse <= 0 {
			e.queue.Emit(event.EventDebuffPulse, nil, s.Frame)
			s.debuffPulse = constant.CuePulseInterval
		}
	} else {
		s.debuffPulse = 0
	}

	// Poison consumption spawns its replacement once the snake can move again
	if freezeExpired && s.pendingReplenish {
		s.pendingReplenish = false
		e.spawner.Replenish(s)
	}
}

func (e *Engine) drainQueue(s *State) {
	d, ok := s.Queue.Pop()
	if !ok || d.Reverses(s.Dir) {
		return
	}
	s.Dir = d
}

// step performs one grid move in the current direction
func (e *Engine) step(s *State) {
	head := s.Head().Add(s.Dir)

	if !head.InBounds(s.Width, s.Height) {
		if !s.Effects.Active(core.EffectWallPass) {
			e.endGame(s, core.CauseWall)
			return
		}
		head = head.Wrap(s.Width, s.Height)
	}

	if !s.Effects.Active(core.EffectSelfImmunity) && s.OnSnake(head) {
		s.pushHead(head)
		e.endGame(s, core.CauseSelf)
		return
	}

	idx := s.ItemIndexAt(head)
	s.pushHead(head)
	if idx < 0 {
		s.dropTail()
		return
	}
	e.consume(s, s.removeItem(idx))
}

func (e *Engine) endGame(s *State, cause core.DeathCause) {
	s.GameOver = true
	s.Cause = cause
	s.recordHighScore()
	e.queue.Emit(event.EventGameOver, &event.GameOverPayload{
		Cause:   cause,
		Score:   s.Score,
		Best:    s.BestScore(),
		NewBest: s.Score > s.bestAtStart,
	}, s.Frame)
}

// ForceEnd terminates the round immediately with cause
func (e *Engine) ForceEnd(s *State, cause core.DeathCause) {
	if s.GameOver {
		return
	}
	e.endGame(s, cause)
}

func (e *Engine) startEffect(s *State, eff core.Effect, d float64) {
	s.Effects.Start(eff, d)
	e.queue.Emit(event.EventEffectStarted, &event.EffectPayload{Effect: eff, Duration: d}, s.Frame)
}
