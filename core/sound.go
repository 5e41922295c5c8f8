package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundApple    SoundType = iota // Plain item eaten
	SoundPoison                    // Poison eaten and debuff pulses
	SoundGolden                    // Boost or SuperBoost eaten
	SoundPurple                    // Teleport
	SoundGameOver                  // Collision
	SoundPause                     // Resume countdown pulses
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundApple:    "apple",
	SoundPoison:   "poison",
	SoundGolden:   "golden",
	SoundPurple:   "purple",
	SoundGameOver: "gameover",
	SoundPause:    "pause",
}

func (s SoundType) String() string {
	if s >= 0 && s < SoundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
