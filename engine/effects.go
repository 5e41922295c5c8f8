package engine

import (
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/event"
)

// consume resolves an eaten item; the new head is already inserted
func (e *Engine) consume(s *State, it Item) {
	debuffed := s.Effects.Active(core.EffectCannotConsume)
	applied := true

	switch it.Kind {
	case core.ItemPoison:
		e.applyPoison(s)

	case core.ItemTeleport:
		if debuffed {
			s.dropTail()
			applied = false
		} else {
			applied = e.applyTeleport(s)
		}

	case core.ItemBoost, core.ItemSuperBoost:
		s.Score += constant.BoostScore
		s.recordHighScore()
		s.growTail()
		e.startEffect(s, core.EffectSelfImmunity, constant.SelfImmunityDuration)
		if it.Kind == core.ItemSuperBoost {
			e.startEffect(s, core.EffectWallPass, constant.WallPassDuration)
		}

	default:
		if debuffed {
			s.dropTail()
			applied = false
		} else {
			s.Score += constant.PlainScore
			s.recordHighScore()
			s.growTail()
		}
	}

	e.queue.Emit(event.EventItemEaten, &event.ItemEatenPayload{Kind: it.Kind, Cell: it.Cell, Applied: applied}, s.Frame)

	if it.Kind == core.ItemPoison {
		s.pendingReplenish = true
		return
	}
	e.spawner.Replenish(s)
}

// applyPoison freezes the snake and turns it around in place
// Reduction: reverse the body including the new head, then drop the last cell
func (e *Engine) applyPoison(s *State) {
	e.startEffect(s, core.EffectMoveFreeze, constant.MoveFreezeDuration)
	s.Queue.Clear()

	s.reverseSnake()
	s.dropTail()
	s.Dir = s.Dir.Opposite()

	e.startEffect(s, core.EffectCannotConsume, constant.CannotConsumeDuration)
	s.debuffPulse = constant.CuePulseInterval
}

// applyTeleport relocates the snake to a random free cell facing a random direction
// Returns false when the board has no free cell; the move then acts as a plain step
func (e *Engine) applyTeleport(s *State) bool {
	from := s.Head()
	s.Snake = s.Snake[1:]
	length := len(s.Snake)

	to, ok := e.spawner.RandomFreeCell(s)
	if !ok {
		s.pushHead(from)
		s.dropTail()
		return false
	}
	dir := core.Cardinals[e.rng.Intn(len(core.Cardinals))]

	body := make([]core.Cell, length)
	for i := range body {
		body[i] = core.Cell{Col: to.Col - dir.DX*i, Row: to.Row - dir.DY*i}.Clamp(s.Width, s.Height)
	}
	s.Snake = body

	s.Queue.Clear()
	s.Dir = core.DirNone
	s.MoveAccum = 0

	e.queue.Emit(event.EventTeleported, &event.TeleportPayload{From: from, To: to, Direction: dir}, s.Frame)
	return true
}
