package audio

import (
	"errors"

	"github.com/lixenwraith/term-snake/core"
)

// Player is the minimal audio interface used by the game loop
type Player interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio: speaker not initialized")
	ErrUnknownSound   = errors.New("audio: unknown sound type")
)
