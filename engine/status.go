package engine

import "github.com/lixenwraith/term-snake/core"

// Timer is one status countdown
type Timer struct {
	Active    bool
	Remaining float64
}

// StatusEffects holds the four independent status timers
type StatusEffects struct {
	timers [core.EffectCount]Timer
}

// Start arms e for d seconds, replacing any remaining time
func (s *StatusEffects) Start(e core.Effect, d float64) {
	s.timers[e] = Timer{Active: true, Remaining: d}
}

// Active reports whether e is running
func (s *StatusEffects) Active(e core.Effect) bool {
	return s.timers[e].Active
}

// Remaining returns seconds left on e, zero when inactive
func (s *StatusEffects) Remaining(e core.Effect) float64 {
	return s.timers[e].Remaining
}

// Timer returns a copy of e's timer
func (s *StatusEffects) Timer(e core.Effect) Timer {
	return s.timers[e]
}

// Decay advances all active timers by dt and calls expired for each one that reached zero
func (s *StatusEffects) Decay(dt float64, expired func(core.Effect)) {
	for e := core.Effect(0); e < core.EffectCount; e++ {
		t := &s.timers[e]
		if !t.Active {
			continue
		}
		t.Remaining -= dt
		if t.Remaining <= 0 {
			t.Active = false
			t.Remaining = 0
			if expired != nil {
				expired(e)
			}
		}
	}
}

// Clear stops every timer
func (s *StatusEffects) Clear() {
	s.timers = [core.EffectCount]Timer{}
}
