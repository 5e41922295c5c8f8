package core

// DeathCause records why a session ended
type DeathCause uint8

const (
	CauseWall DeathCause = iota
	CauseSelf
	CauseQuit // Player forced the game-over screen
)

func (c DeathCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseQuit:
		return "quit"
	default:
		return "unknown"
	}
}
