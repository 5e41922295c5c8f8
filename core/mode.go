package core

import "fmt"

// GameMode selects a preset for a whole session
type GameMode uint8

const (
	ModeRegular GameMode = iota
	ModeAccelerated
	GameModeCount
)

func (m GameMode) String() string {
	switch m {
	case ModeRegular:
		return "regular"
	case ModeAccelerated:
		return "accelerated"
	default:
		return "unknown"
	}
}

// ParseGameMode maps a flag value to a mode
func ParseGameMode(s string) (GameMode, error) {
	switch s {
	case "regular", "r":
		return ModeRegular, nil
	case "accelerated", "fast", "a":
		return ModeAccelerated, nil
	default:
		return 0, fmt.Errorf("unknown game mode %q", s)
	}
}
