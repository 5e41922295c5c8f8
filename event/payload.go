package event

import "github.com/lixenwraith/term-snake/core"

// ItemEatenPayload describes a consumption; Applied is false for debuffed no-ops
type ItemEatenPayload struct {
	Kind    core.ItemKind
	Cell    core.Cell
	Applied bool
}

// ItemPayload identifies an item entering or leaving the board
type ItemPayload struct {
	Kind core.ItemKind
	Cell core.Cell
}

// GameOverPayload carries the final tally
type GameOverPayload struct {
	Cause   core.DeathCause
	Score   int
	Best    int
	NewBest bool
}

// EffectPayload names a status timer; Duration is zero on expiry
type EffectPayload struct {
	Effect   core.Effect
	Duration float64
}

// TeleportPayload records the jump
type TeleportPayload struct {
	From      core.Cell
	To        core.Cell
	Direction core.Direction
}

// ResumePulsePayload carries the countdown seconds left
type ResumePulsePayload struct {
	Remaining float64
}

// SessionPayload identifies a new session
type SessionPayload struct {
	Mode      core.GameMode
	SessionID string
}
