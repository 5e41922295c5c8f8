package event

// EventType represents the type of game event
type EventType int

const (
	// EventItemEaten signals the head landed on an item
	// Trigger: Engine item dispatch
	// Consumer: AudioHandler, spectator feed | Payload: *ItemEatenPayload
	EventItemEaten EventType = iota

	// EventItemSpawned signals a new item on the board
	// Trigger: Spawner | Payload: *ItemPayload
	EventItemSpawned

	// EventItemDespawned signals an accelerated-mode item timing out
	// Trigger: Spawner despawn sweep | Payload: *ItemPayload
	EventItemDespawned

	// EventGameOver signals a terminal collision or forced end
	// Trigger: Engine wall/self check, Session.ForceGameOver
	// Consumer: AudioHandler | Payload: *GameOverPayload
	EventGameOver

	// EventEffectStarted signals a status timer (re)armed
	// Trigger: Engine item dispatch | Payload: *EffectPayload
	EventEffectStarted

	// EventEffectExpired signals a status timer reaching zero
	// Trigger: Engine status decay | Payload: *EffectPayload
	EventEffectExpired

	// EventTeleported signals the snake was rebuilt at a random cell
	// Trigger: Engine teleport dispatch | Payload: *TeleportPayload
	EventTeleported

	// EventDebuffPulse repeats once per second while the poison debuff lasts
	// Consumer: AudioHandler | Payload: nil
	EventDebuffPulse

	// EventResumePulse repeats once per second during the resume countdown
	// Consumer: AudioHandler | Payload: *ResumePulsePayload
	EventResumePulse

	// EventPaused signals the player paused
	// Trigger: Session.TogglePause | Payload: nil
	EventPaused

	// EventResumeStarted signals the resume countdown began
	// Trigger: Session.TogglePause | Payload: nil
	EventResumeStarted

	// EventResumed signals the countdown ended and play continues
	// Trigger: Engine resume countdown | Payload: nil
	EventResumed

	// EventSessionStart signals a fresh State for a mode
	// Trigger: Session.SelectMode, Session.Restart | Payload: *SessionPayload
	EventSessionStart

	EventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64 // Engine tick that produced the event
}
